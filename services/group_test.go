package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/models"
)

func TestGroupCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)

	_, err := svc.Create("", "books", "d")
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.Create("Books", "", "d")
	assert.ErrorIs(t, err, ErrSlugRequired)

	_, err = svc.Create("Books", "Bad Slug!", "d")
	assert.ErrorIs(t, err, ErrSlugInvalid)
}

func TestGroupSlugUnique(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)

	first, err := svc.Create("Books", "books", "about books")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	_, err = svc.Create("More Books", "books", "another")
	assert.ErrorIs(t, err, ErrSlugTaken)

	var count int64
	require.NoError(t, db.Model(&models.Group{}).Where("slug = ?", "books").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGroupGetAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)

	newTestGroup(t, db, "Zebra", "zebra")
	newTestGroup(t, db, "Apples", "apples")

	got, err := svc.GetBySlug("apples")
	require.NoError(t, err)
	assert.Equal(t, "Apples", got.Title)
	assert.Equal(t, "Apples", got.String())

	_, err = svc.GetBySlug("missing")
	assert.ErrorIs(t, err, ErrGroupNotFound)

	groups, err := svc.List()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Apples", groups[0].Title)
	assert.Equal(t, "Zebra", groups[1].Title)
}

func TestGroupUpdateKeepsSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(db)

	group := newTestGroup(t, db, "Books", "books")

	updated, err := svc.Update(group.ID, "Literature", "renamed")
	require.NoError(t, err)
	assert.Equal(t, "Literature", updated.Title)
	assert.Equal(t, "books", updated.Slug)

	_, err = svc.Update(group.ID, "", "x")
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.Update(9999, "Anything", "x")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestGroupDeleteDetachesPosts(t *testing.T) {
	db := newTestDB(t)
	groups := NewGroupService(db)
	posts := NewPostService(db)

	author := newTestUser(t, db, "leo")
	group := newTestGroup(t, db, "Books", "books")

	post, err := posts.Create(author.ID, "filed under books", &group.ID, "")
	require.NoError(t, err)
	loose, err := posts.Create(author.ID, "no group", nil, "")
	require.NoError(t, err)

	require.NoError(t, groups.Delete(group.ID))

	_, err = groups.GetByID(group.ID)
	assert.ErrorIs(t, err, ErrGroupNotFound)

	// The filed post survives, its group reference nulled
	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.Nil(t, reloaded.GroupID)

	var other models.Post
	require.NoError(t, db.First(&other, loose.ID).Error)
	assert.Nil(t, other.GroupID)

	assert.ErrorIs(t, groups.Delete(group.ID), ErrGroupNotFound)
}

func TestGroupScenarioBooks(t *testing.T) {
	db := newTestDB(t)
	groups := NewGroupService(db)
	posts := NewPostService(db)

	author := newTestUser(t, db, "reader")

	group, err := groups.Create("Books", "books", "Books we love")
	require.NoError(t, err)
	assert.Equal(t, "Books", group.String())

	_, err = posts.Create(author.ID, "my first review", &group.ID, "")
	require.NoError(t, err)

	listed, total, err := posts.ListByGroup(group.ID, Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, listed, 1)
	assert.Equal(t, "my first review", listed[0].Text)
	require.NotNil(t, listed[0].Group)
	assert.Equal(t, "books", listed[0].Group.Slug)
}
