package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/models"
)

func TestCommentCreateValidation(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db)
	svc := NewCommentService(db)
	author := newTestUser(t, db, "gus")

	post, err := posts.Create(author.ID, "a post", nil, "")
	require.NoError(t, err)

	_, err = svc.Create(post.ID, author.ID, "   ")
	assert.ErrorIs(t, err, ErrCommentRequired)

	_, err = svc.Create(post.ID, 0, "hi")
	assert.ErrorIs(t, err, ErrAuthorRequired)

	_, err = svc.Create(9999, author.ID, "hi")
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = svc.Create(post.ID, 9999, "hi")
	assert.ErrorIs(t, err, ErrUserNotFound)

	comment, err := svc.Create(post.ID, author.ID, "  trimmed  ")
	require.NoError(t, err)
	assert.Equal(t, "trimmed", comment.Text)
	assert.Equal(t, "gus", comment.Author.Username)
}

func TestCommentLengthBound(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db)
	svc := NewCommentService(db)
	author := newTestUser(t, db, "hana")

	post, err := posts.Create(author.ID, "a post", nil, "")
	require.NoError(t, err)

	atLimit := strings.Repeat("x", models.MaxCommentLength)
	comment, err := svc.Create(post.ID, author.ID, atLimit)
	require.NoError(t, err)
	assert.Len(t, []rune(comment.Text), models.MaxCommentLength)

	_, err = svc.Create(post.ID, author.ID, atLimit+"x")
	assert.ErrorIs(t, err, ErrCommentTooLong)

	// Multibyte text counts in runes, not bytes
	wide := strings.Repeat("Ж", models.MaxCommentLength)
	_, err = svc.Create(post.ID, author.ID, wide)
	require.NoError(t, err)
	_, err = svc.Create(post.ID, author.ID, wide+"Ж")
	assert.ErrorIs(t, err, ErrCommentTooLong)
}

func TestCommentListOldestFirst(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db)
	svc := NewCommentService(db)
	author := newTestUser(t, db, "iris")

	post, err := posts.Create(author.ID, "a post", nil, "")
	require.NoError(t, err)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		c := models.Comment{PostID: post.ID, AuthorID: author.ID, Text: text,
			CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, db.Create(&c).Error)
	}

	listed, err := svc.ListByPost(post.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "first", listed[0].Text)
	assert.Equal(t, "second", listed[1].Text)
	assert.Equal(t, "third", listed[2].Text)
}

func TestCommentDelete(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db)
	svc := NewCommentService(db)
	author := newTestUser(t, db, "jack")

	post, err := posts.Create(author.ID, "a post", nil, "")
	require.NoError(t, err)
	comment, err := svc.Create(post.ID, author.ID, "bye")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(comment.ID))
	_, err = svc.Get(comment.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
	assert.ErrorIs(t, svc.Delete(comment.ID), ErrCommentNotFound)
}
