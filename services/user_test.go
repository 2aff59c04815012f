package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/models"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("ann", "ann@example.com", "secret1", "127.0.0.1")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	got, err := svc.Authenticate("ann", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate("ann", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate("nobody", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("  ", "a@b.com", "secret1", "")
	assert.ErrorIs(t, err, ErrUsernameRequired)

	_, err = svc.Register("ann", "a@b.com", "short", "")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = svc.Register("ann", "a@b.com", "secret1", "")
	require.NoError(t, err)
	_, err = svc.Register("ann", "other@b.com", "secret2", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestGetOrCreateOAuth(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	// Local account already holds the username; the OAuth one gets a suffix
	_, err := svc.Register("octo", "local@example.com", "secret1", "")
	require.NoError(t, err)

	created, err := svc.GetOrCreateOAuth("github", "42", "octo", "octo@example.com", "https://avatars.example/42")
	require.NoError(t, err)
	assert.Equal(t, "octo-1", created.Username)
	assert.Equal(t, "github", created.Provider)

	// Second login with the same identity resolves to the same account
	again, err := svc.GetOrCreateOAuth("github", "42", "octo", "octo@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("ann", "ann@example.com", "secret1", "")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, "  hello  ", " https://img.example/a.png ")
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.Bio)
	assert.Equal(t, "https://img.example/a.png", updated.AvatarURL)

	_, err = svc.UpdateProfile(9999, "x", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	posts := NewPostService(db)
	comments := NewCommentService(db)
	follows := NewFollowService(db)

	victim := newTestUser(t, db, "victim")
	other := newTestUser(t, db, "other")

	victimPost, err := posts.Create(victim.ID, "victim's post", nil, "")
	require.NoError(t, err)
	otherPost, err := posts.Create(other.ID, "other's post", nil, "")
	require.NoError(t, err)

	// Comment by other under the victim's post goes away with the post;
	// the victim's comment under the surviving post goes away with the account.
	_, err = comments.Create(victimPost.ID, other.ID, "on victim's post")
	require.NoError(t, err)
	_, err = comments.Create(otherPost.ID, victim.ID, "victim elsewhere")
	require.NoError(t, err)
	keeper, err := comments.Create(otherPost.ID, other.ID, "other on own post")
	require.NoError(t, err)

	_, err = follows.Follow(victim.ID, other.ID)
	require.NoError(t, err)
	_, err = follows.Follow(other.ID, victim.ID)
	require.NoError(t, err)

	require.NoError(t, users.Delete(victim.ID))

	_, err = users.GetByID(victim.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	var postCount int64
	require.NoError(t, db.Model(&models.Post{}).Where("author_id = ?", victim.ID).Count(&postCount).Error)
	assert.Zero(t, postCount)

	var remaining []models.Comment
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, keeper.ID, remaining[0].ID)

	var edgeCount int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("user_id = ? OR author_id = ?", victim.ID, victim.ID).
		Count(&edgeCount).Error)
	assert.Zero(t, edgeCount)

	// The other account and its post are untouched
	_, err = users.GetByID(other.ID)
	require.NoError(t, err)
	_, err = posts.Get(otherPost.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, users.Delete(victim.ID), ErrUserNotFound)
}
