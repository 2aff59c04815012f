package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/models"
)

func TestContactCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	_, err := svc.Create("", "a@b.com", "hi", "body")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(strings.Repeat("n", 101), "a@b.com", "hi", "body")
	assert.ErrorIs(t, err, ErrNameTooLong)

	_, err = svc.Create("Ann", "a@b.com", "", "body")
	assert.ErrorIs(t, err, ErrSubjectRequired)

	_, err = svc.Create("Ann", "a@b.com", strings.Repeat("s", 101), "body")
	assert.ErrorIs(t, err, ErrSubjectTooLong)

	_, err = svc.Create("Ann", "a@b.com", "hi", "   ")
	assert.ErrorIs(t, err, ErrBodyRequired)

	for _, email := range []string{"", "not-an-email", "a@", "@b.com", "Ann <a@b.com>", "a b@c.com"} {
		_, err = svc.Create("Ann", email, "hi", "body")
		assert.ErrorIs(t, err, ErrEmailInvalid, "email %q should be rejected", email)
	}

	// Failed creates leave nothing behind
	var count int64
	require.NoError(t, db.Model(&models.Contact{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestContactCreateAndAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	contact, err := svc.Create("  Ann  ", "ann@example.com", "Question", "How do I post?")
	require.NoError(t, err)
	assert.Equal(t, "Ann", contact.Name)
	assert.False(t, contact.IsAnswered)

	_, err = svc.Create("Ben", "ben@example.com", "Other", "Another question")
	require.NoError(t, err)

	all, err := svc.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	answered, err := svc.MarkAnswered(contact.ID)
	require.NoError(t, err)
	assert.True(t, answered.IsAnswered)

	open, err := svc.List(true)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "Ben", open[0].Name)

	_, err = svc.MarkAnswered(9999)
	assert.ErrorIs(t, err, ErrContactNotFound)
}
