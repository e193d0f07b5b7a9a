package service

import (
	"fmt"
	"testing"

	"yatube/internal/form"
	"yatube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexPaginates(t *testing.T) {
	db := testDB(t)
	author := createUser(t, db, "leo")
	for i := 0; i < 16; i++ {
		require.NoError(t, db.Create(&model.Post{Text: fmt.Sprintf("post %d", i), AuthorID: author.ID}).Error)
	}
	svc := NewPostService(db, 10)

	page, err := svc.Index("")
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 2, page.NumPages)

	page, err = svc.Index("2")
	require.NoError(t, err)
	assert.Len(t, page.Items, 6)
	assert.Equal(t, 2, page.Number)
}

func TestCreateRejectsUnknownGroup(t *testing.T) {
	db := testDB(t)
	author := createUser(t, db, "leo")
	svc := NewPostService(db, 10)

	missing := uint64(999)
	res, err := svc.Create(author.ID, form.PostForm{Text: "hi", Group: &missing}, "")
	require.NoError(t, err)
	assert.Equal(t, Rejected, res.Outcome)
	assert.Contains(t, res.Errors, "group")

	var count int64
	require.NoError(t, db.Model(&model.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEditByNonAuthorIsDenied(t *testing.T) {
	db := testDB(t)
	author := createUser(t, db, "leo")
	other := createUser(t, db, "mia")
	svc := NewPostService(db, 10)

	res, err := svc.Create(author.ID, form.PostForm{Text: "original"}, "")
	require.NoError(t, err)
	require.Equal(t, Applied, res.Outcome)

	res, err = svc.Edit(other.ID, res.Post.ID, form.PostForm{Text: "hijacked"}, "", true)
	require.NoError(t, err)
	assert.Equal(t, Denied, res.Outcome)

	var stored model.Post
	require.NoError(t, db.First(&stored, res.Post.ID).Error)
	assert.Equal(t, "original", stored.Text)
	assert.Equal(t, author.ID, stored.AuthorID)
}

func TestEditKeepsAuthorAndRewritesText(t *testing.T) {
	db := testDB(t)
	author := createUser(t, db, "leo")
	group := createGroup(t, db, "cats")
	svc := NewPostService(db, 10)

	res, err := svc.Create(author.ID, form.PostForm{Text: "before", Group: &group.ID}, "")
	require.NoError(t, err)

	res, err = svc.Edit(author.ID, res.Post.ID, form.PostForm{Text: "after"}, "", true)
	require.NoError(t, err)
	assert.Equal(t, Applied, res.Outcome)

	var stored model.Post
	require.NoError(t, db.First(&stored, res.Post.ID).Error)
	assert.Equal(t, "after", stored.Text)
	assert.Equal(t, author.ID, stored.AuthorID)
	assert.Nil(t, stored.GroupID)
}

func TestEditWithoutGroupFieldKeepsGroup(t *testing.T) {
	db := testDB(t)
	author := createUser(t, db, "leo")
	group := createGroup(t, db, "cats")
	svc := NewPostService(db, 10)

	res, err := svc.Create(author.ID, form.PostForm{Text: "before", Group: &group.ID}, "")
	require.NoError(t, err)

	res, err = svc.Edit(author.ID, res.Post.ID, form.PostForm{Text: "after"}, "", false)
	require.NoError(t, err)
	assert.Equal(t, Applied, res.Outcome)

	var stored model.Post
	require.NoError(t, db.First(&stored, res.Post.ID).Error)
	require.NotNil(t, stored.GroupID)
	assert.Equal(t, group.ID, *stored.GroupID)
}

func TestEditKeepsImageWhenNoneUploaded(t *testing.T) {
	db := testDB(t)
	author := createUser(t, db, "leo")
	svc := NewPostService(db, 10)

	res, err := svc.Create(author.ID, form.PostForm{Text: "before"}, "/images/cat.png")
	require.NoError(t, err)

	res, err = svc.Edit(author.ID, res.Post.ID, form.PostForm{Text: "after"}, "", true)
	require.NoError(t, err)
	require.Equal(t, Applied, res.Outcome)

	var stored model.Post
	require.NoError(t, db.First(&stored, res.Post.ID).Error)
	assert.Equal(t, "/images/cat.png", stored.Image)
}

func TestGroupPostsDoesNotLeakOtherGroups(t *testing.T) {
	db := testDB(t)
	author := createUser(t, db, "leo")
	cats := createGroup(t, db, "cats")
	dogs := createGroup(t, db, "dogs")
	svc := NewPostService(db, 10)

	_, err := svc.Create(author.ID, form.PostForm{Text: "meow", Group: &cats.ID}, "")
	require.NoError(t, err)
	_, err = svc.Create(author.ID, form.PostForm{Text: "woof", Group: &dogs.ID}, "")
	require.NoError(t, err)

	group, page, err := svc.GroupPosts("cats", "")
	require.NoError(t, err)
	assert.Equal(t, cats.ID, group.ID)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "meow", page.Items[0].Text)
}

func TestAddCommentRequiresExistingPost(t *testing.T) {
	db := testDB(t)
	user := createUser(t, db, "leo")
	svc := NewPostService(db, 10)

	err := svc.AddComment(user.ID, 42, form.CommentForm{Text: "hello"})
	assert.Error(t, err)

	res, err := svc.Create(user.ID, form.PostForm{Text: "post"}, "")
	require.NoError(t, err)
	require.NoError(t, svc.AddComment(user.ID, res.Post.ID, form.CommentForm{Text: "hello"}))

	var count int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
