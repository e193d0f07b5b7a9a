package mysql

import (
	"yatube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	DB *gorm.DB
}

// Follow creates the (user, author) edge if it does not exist yet.
// Repeated calls leave exactly one row.
func (r *FollowRepository) Follow(userID, authorID uint64) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "author_id"}},
		DoNothing: true,
	}).Create(&model.Follow{UserID: userID, AuthorID: authorID}).Error
}

// Unfollow removes the edge. Removing a missing edge is a no-op.
func (r *FollowRepository) Unfollow(userID, authorID uint64) error {
	return r.DB.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.Follow{}).Error
}

func (r *FollowRepository) IsFollowing(userID, authorID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}
