package service

import (
	"testing"

	"yatube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowSelfIsSkipped(t *testing.T) {
	db := testDB(t)
	leo := createUser(t, db, "leo")
	svc := NewFollowService(db)

	author, err := svc.Follow(leo.ID, "leo")
	require.NoError(t, err)
	assert.Equal(t, leo.ID, author.ID)

	var count int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFollowUnknownAuthor(t *testing.T) {
	db := testDB(t)
	leo := createUser(t, db, "leo")
	svc := NewFollowService(db)

	_, err := svc.Follow(leo.ID, "nobody")
	assert.Error(t, err)
}

func TestFollowThenIsFollowing(t *testing.T) {
	db := testDB(t)
	leo := createUser(t, db, "leo")
	mia := createUser(t, db, "mia")
	svc := NewFollowService(db)

	_, err := svc.Follow(leo.ID, "mia")
	require.NoError(t, err)

	following, err := svc.IsFollowing(leo.ID, mia.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// Not symmetric.
	following, err = svc.IsFollowing(mia.ID, leo.ID)
	require.NoError(t, err)
	assert.False(t, following)

	_, err = svc.Unfollow(leo.ID, "mia")
	require.NoError(t, err)
	following, err = svc.IsFollowing(leo.ID, mia.ID)
	require.NoError(t, err)
	assert.False(t, following)
}
