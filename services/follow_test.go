package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/models"
)

func TestFollowRejectsSelf(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	user := newTestUser(t, db, "solo")

	_, err := svc.Follow(user.ID, user.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)

	// Nothing reaches storage
	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFollowPairIsUnique(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	reader := newTestUser(t, db, "reader")
	author := newTestUser(t, db, "author")

	edge, err := svc.Follow(reader.ID, author.ID)
	require.NoError(t, err)
	require.NotZero(t, edge.ID)

	_, err = svc.Follow(reader.ID, author.ID)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", reader.ID, author.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// The reverse direction is a distinct edge
	_, err = svc.Follow(author.ID, reader.ID)
	require.NoError(t, err)
}

func TestFollowUnknownUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	user := newTestUser(t, db, "known")

	_, err := svc.Follow(user.ID, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.Follow(9999, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUnfollow(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	reader := newTestUser(t, db, "reader")
	author := newTestUser(t, db, "author")

	_, err := svc.Follow(reader.ID, author.ID)
	require.NoError(t, err)

	following, err := svc.IsFollowing(reader.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, following)

	require.NoError(t, svc.Unfollow(reader.ID, author.ID))

	following, err = svc.IsFollowing(reader.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, following)

	assert.ErrorIs(t, svc.Unfollow(reader.ID, author.ID), ErrNotFollowing)
}

func TestFollowingAndFollowers(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	reader := newTestUser(t, db, "reader")
	zoe := newTestUser(t, db, "zoe")
	amir := newTestUser(t, db, "amir")

	_, err := svc.Follow(reader.ID, zoe.ID)
	require.NoError(t, err)
	_, err = svc.Follow(reader.ID, amir.ID)
	require.NoError(t, err)
	_, err = svc.Follow(zoe.ID, amir.ID)
	require.NoError(t, err)

	following, err := svc.Following(reader.ID)
	require.NoError(t, err)
	require.Len(t, following, 2)
	assert.Equal(t, "amir", following[0].Username)
	assert.Equal(t, "zoe", following[1].Username)

	followers, err := svc.Followers(amir.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	assert.Equal(t, "reader", followers[0].Username)
	assert.Equal(t, "zoe", followers[1].Username)

	followers, err = svc.Followers(reader.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}
