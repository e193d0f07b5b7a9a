package mysql

import (
	"fmt"
	"testing"
	"time"

	"yatube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createPost(t *testing.T, db *gorm.DB, authorID uint64, text string, groupID *uint64) *model.Post {
	t.Helper()
	p := &model.Post{Text: text, AuthorID: authorID, GroupID: groupID}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestListPageNewestFirst(t *testing.T) {
	db := testDB(t)
	repo := &PostRepository{DB: db}
	author := createUser(t, db, "writer")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		p := &model.Post{
			Text:      fmt.Sprintf("post %d", i),
			AuthorID:  author.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(p).Error)
	}

	list, err := repo.ListPage(0, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "post 2", list[0].Text)
	assert.Equal(t, "post 0", list[2].Text)
	assert.Equal(t, "writer", list[0].Author.Username)
}

func TestListByGroupPageFilters(t *testing.T) {
	db := testDB(t)
	repo := &PostRepository{DB: db}
	author := createUser(t, db, "writer")

	cats := &model.Group{Title: "Котики", Slug: "cats"}
	travel := &model.Group{Title: "Путешествия", Slug: "travel"}
	require.NoError(t, db.Create(cats).Error)
	require.NoError(t, db.Create(travel).Error)

	createPost(t, db, author.ID, "про котиков", &cats.ID)
	createPost(t, db, author.ID, "про горы", &travel.ID)
	createPost(t, db, author.ID, "без группы", nil)

	list, err := repo.ListByGroupPage(cats.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "про котиков", list[0].Text)

	n, err := repo.CountByGroup(cats.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestFeedContainsOnlyFollowedAuthors(t *testing.T) {
	db := testDB(t)
	repo := &PostRepository{DB: db}
	followRepo := &FollowRepository{DB: db}

	reader := createUser(t, db, "reader")
	followed := createUser(t, db, "followed")
	stranger := createUser(t, db, "stranger")

	createPost(t, db, followed.ID, "от любимого автора", nil)
	createPost(t, db, stranger.ID, "чужой пост", nil)

	require.NoError(t, followRepo.Follow(reader.ID, followed.ID))

	feed, err := repo.ListFeedPage(reader.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "от любимого автора", feed[0].Text)

	// Unfollow empties the feed at the next query.
	require.NoError(t, followRepo.Unfollow(reader.ID, followed.ID))
	feed, err = repo.ListFeedPage(reader.ID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestUpdateNeverTouchesAuthor(t *testing.T) {
	db := testDB(t)
	repo := &PostRepository{DB: db}
	author := createUser(t, db, "writer")
	post := createPost(t, db, author.ID, "первая версия", nil)

	post.Text = "вторая версия"
	require.NoError(t, repo.Update(post))

	got, err := repo.FindByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "вторая версия", got.Text)
	assert.Equal(t, author.ID, got.AuthorID)
}
