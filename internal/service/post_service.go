package service

import (
	"errors"

	"yatube/internal/form"
	"yatube/internal/model"
	"yatube/internal/repository/mysql"

	"gorm.io/gorm"
)

// Outcome tags the result of a mutation: applied to the store, denied
// by an authorization check, or rejected by validation.
type Outcome int

const (
	Applied Outcome = iota
	Denied
	Rejected
)

type MutationResult struct {
	Outcome Outcome
	Errors  map[string]string
	Post    *model.Post
}

type PostService struct {
	repo        *mysql.PostRepository
	groupRepo   *mysql.GroupRepository
	commentRepo *mysql.CommentRepository
	followRepo  *mysql.FollowRepository
	userRepo    *mysql.UserRepository
	pageSize    int
}

func NewPostService(db *gorm.DB, pageSize int) *PostService {
	return &PostService{
		repo:        &mysql.PostRepository{DB: db},
		groupRepo:   &mysql.GroupRepository{DB: db},
		commentRepo: &mysql.CommentRepository{DB: db},
		followRepo:  &mysql.FollowRepository{DB: db},
		userRepo:    &mysql.UserRepository{DB: db},
		pageSize:    pageSize,
	}
}

// Index is the landing list: every post, newest first.
func (s *PostService) Index(requestedPage string) (Page, error) {
	total, err := s.repo.CountAll()
	if err != nil {
		return Page{}, err
	}
	number, numPages, offset := resolvePage(requestedPage, total, s.pageSize)
	items, err := s.repo.ListPage(offset, s.pageSize)
	if err != nil {
		return Page{}, err
	}
	return Page{Items: items, Number: number, NumPages: numPages, Total: total}, nil
}

// GroupPosts lists one group's posts. Unknown slug surfaces as
// gorm.ErrRecordNotFound.
func (s *PostService) GroupPosts(slug, requestedPage string) (*model.Group, Page, error) {
	group, err := s.groupRepo.FindBySlug(slug)
	if err != nil {
		return nil, Page{}, err
	}
	total, err := s.repo.CountByGroup(group.ID)
	if err != nil {
		return nil, Page{}, err
	}
	number, numPages, offset := resolvePage(requestedPage, total, s.pageSize)
	items, err := s.repo.ListByGroupPage(group.ID, offset, s.pageSize)
	if err != nil {
		return nil, Page{}, err
	}
	return group, Page{Items: items, Number: number, NumPages: numPages, Total: total}, nil
}

// Profile lists an author's posts plus their total count and whether
// currentUserID follows them (false when anonymous or self).
func (s *PostService) Profile(username, requestedPage string, currentUserID uint64) (*model.User, Page, bool, error) {
	author, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, Page{}, false, err
	}
	total, err := s.repo.CountByAuthor(author.ID)
	if err != nil {
		return nil, Page{}, false, err
	}
	number, numPages, offset := resolvePage(requestedPage, total, s.pageSize)
	items, err := s.repo.ListByAuthorPage(author.ID, offset, s.pageSize)
	if err != nil {
		return nil, Page{}, false, err
	}
	following := false
	if currentUserID != 0 && currentUserID != author.ID {
		following, err = s.followRepo.IsFollowing(currentUserID, author.ID)
		if err != nil {
			return nil, Page{}, false, err
		}
	}
	page := Page{Items: items, Number: number, NumPages: numPages, Total: total}
	return author, page, following, nil
}

// Detail fetches one post with its comments and the author's total
// post count.
func (s *PostService) Detail(postID uint64) (*model.Post, []model.Comment, int64, error) {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return nil, nil, 0, err
	}
	comments, err := s.commentRepo.ListByPost(post.ID)
	if err != nil {
		return nil, nil, 0, err
	}
	postAmount, err := s.repo.CountByAuthor(post.AuthorID)
	if err != nil {
		return nil, nil, 0, err
	}
	return post, comments, postAmount, nil
}

// Feed lists posts authored by anyone userID follows.
func (s *PostService) Feed(userID uint64, requestedPage string) (Page, error) {
	total, err := s.repo.CountFeed(userID)
	if err != nil {
		return Page{}, err
	}
	number, numPages, offset := resolvePage(requestedPage, total, s.pageSize)
	items, err := s.repo.ListFeedPage(userID, offset, s.pageSize)
	if err != nil {
		return Page{}, err
	}
	return Page{Items: items, Number: number, NumPages: numPages, Total: total}, nil
}

// Author resolves a user id, for redirecting to the author's profile.
func (s *PostService) Author(id uint64) (*model.User, error) {
	return s.userRepo.FindByID(id)
}

// Groups returns every group, for the create/edit form selector.
func (s *PostService) Groups() ([]model.Group, error) {
	return s.groupRepo.List()
}

// Create persists a new post authored by userID. The form is already
// shape-valid; only the group reference can still be rejected here.
func (s *PostService) Create(userID uint64, f form.PostForm, imagePath string) (MutationResult, error) {
	if f.Group != nil {
		if _, err := s.groupRepo.FindByID(*f.Group); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return MutationResult{Outcome: Rejected, Errors: map[string]string{"group": "Выберите существующую группу."}}, nil
			}
			return MutationResult{}, err
		}
	}
	post := &model.Post{
		Text:     f.Text,
		AuthorID: userID,
		GroupID:  f.Group,
		Image:    imagePath,
	}
	if err := s.repo.Create(post); err != nil {
		return MutationResult{}, err
	}
	return MutationResult{Outcome: Applied, Post: post}, nil
}

// Edit updates a post in place. A non-author gets Denied and nothing
// is written; the author keeps their authorship either way. An empty
// imagePath leaves the stored image untouched, and the group is only
// rewritten when the field was part of the submission.
func (s *PostService) Edit(userID, postID uint64, f form.PostForm, imagePath string, groupSubmitted bool) (MutationResult, error) {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return MutationResult{}, err
	}
	if post.AuthorID != userID {
		return MutationResult{Outcome: Denied, Post: post}, nil
	}
	if f.Group != nil {
		if _, err := s.groupRepo.FindByID(*f.Group); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return MutationResult{Outcome: Rejected, Errors: map[string]string{"group": "Выберите существующую группу."}, Post: post}, nil
			}
			return MutationResult{}, err
		}
	}
	post.Text = f.Text
	if groupSubmitted {
		post.GroupID = f.Group
	}
	if imagePath != "" {
		post.Image = imagePath
	}
	if err := s.repo.Update(post); err != nil {
		return MutationResult{}, err
	}
	return MutationResult{Outcome: Applied, Post: post}, nil
}

// AddComment creates a comment under postID. The post must exist.
func (s *PostService) AddComment(userID, postID uint64, f form.CommentForm) error {
	if _, err := s.repo.FindByID(postID); err != nil {
		return err
	}
	return s.commentRepo.Create(&model.Comment{
		Text:     f.Text,
		AuthorID: userID,
		PostID:   postID,
	})
}
