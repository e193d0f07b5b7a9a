package mysql

import (
	"yatube/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("Author").Preload("Group").First(&post, id).Error
	return &post, err
}

// Update persists the mutable fields of a post in place. AuthorID is
// never touched.
func (r *PostRepository) Update(post *model.Post) error {
	return r.DB.Model(post).Select("text", "group_id", "image").
		Updates(map[string]any{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
}

func (r *PostRepository) CountAll() (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Count(&n).Error
	return n, err
}

func (r *PostRepository) ListPage(offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.newestFirst().Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByGroup(groupID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Where("group_id = ?", groupID).Count(&n).Error
	return n, err
}

func (r *PostRepository) ListByGroupPage(groupID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.newestFirst().Where("group_id = ?", groupID).
		Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByAuthor(authorID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Where("author_id = ?", authorID).Count(&n).Error
	return n, err
}

func (r *PostRepository) ListByAuthorPage(authorID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.newestFirst().Where("author_id = ?", authorID).
		Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) CountFeed(userID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).
		Where("author_id IN (?)", r.followedAuthors(userID)).
		Count(&n).Error
	return n, err
}

// ListFeedPage returns posts authored by anyone userID follows.
func (r *PostRepository) ListFeedPage(userID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.newestFirst().
		Where("author_id IN (?)", r.followedAuthors(userID)).
		Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) followedAuthors(userID uint64) *gorm.DB {
	return r.DB.Model(&model.Follow{}).Select("author_id").Where("user_id = ?", userID)
}

func (r *PostRepository) newestFirst() *gorm.DB {
	return r.DB.Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC")
}
