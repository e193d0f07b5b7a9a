package service

import (
	"yatube/internal/model"
	"yatube/internal/repository/mysql"

	"gorm.io/gorm"
)

type FollowService struct {
	repo     *mysql.FollowRepository
	userRepo *mysql.UserRepository
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{
		repo:     &mysql.FollowRepository{DB: db},
		userRepo: &mysql.UserRepository{DB: db},
	}
}

// Follow creates the edge from userID to the named author. Following
// yourself is silently skipped; following twice leaves one edge. The
// target must exist.
func (s *FollowService) Follow(userID uint64, username string) (*model.User, error) {
	author, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if userID == author.ID {
		return author, nil
	}
	if err := s.repo.Follow(userID, author.ID); err != nil {
		return nil, err
	}
	return author, nil
}

// Unfollow drops the edge if present.
func (s *FollowService) Unfollow(userID uint64, username string) (*model.User, error) {
	author, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Unfollow(userID, author.ID); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *FollowService) IsFollowing(userID, authorID uint64) (bool, error) {
	return s.repo.IsFollowing(userID, authorID)
}
