package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inkwell-dev/inkwell/models"
)

func TestPostCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	author := newTestUser(t, db, "ann")

	_, err := svc.Create(author.ID, "   ", nil, "")
	assert.ErrorIs(t, err, ErrTextRequired)

	_, err = svc.Create(0, "hello", nil, "")
	assert.ErrorIs(t, err, ErrAuthorRequired)

	_, err = svc.Create(9999, "hello", nil, "")
	assert.ErrorIs(t, err, ErrUserNotFound)

	badGroup := uint(9999)
	_, err = svc.Create(author.ID, "hello", &badGroup, "")
	assert.ErrorIs(t, err, ErrGroupNotFound)

	post, err := svc.Create(author.ID, "  hello world  ", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "hello world", post.Text)
	assert.Equal(t, "ann", post.Author.Username)
	assert.False(t, post.CreatedAt.IsZero())
}

// seedPost inserts a post with a controlled timestamp so ordering is
// deterministic even when rows are written in the same millisecond.
func seedPost(t *testing.T, db *gorm.DB, authorID uint, text string, at time.Time) *models.Post {
	t.Helper()
	post := &models.Post{AuthorID: authorID, Text: text, CreatedAt: at}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestPostListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	author := newTestUser(t, db, "bob")

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedPost(t, db, author.ID, "oldest", base)
	seedPost(t, db, author.ID, "middle", base.Add(time.Minute))
	// Same timestamp as "middle": the id tiebreak keeps the later row first
	tied := seedPost(t, db, author.ID, "tied", base.Add(time.Minute))
	seedPost(t, db, author.ID, "newest", base.Add(2*time.Minute))

	listed, total, err := svc.List(Page{Number: 1, Size: 10}, "")
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, listed, 4)
	assert.Equal(t, "newest", listed[0].Text)
	assert.Equal(t, "tied", listed[1].Text)
	assert.Equal(t, tied.ID, listed[1].ID)
	assert.Equal(t, "middle", listed[2].Text)
	assert.Equal(t, "oldest", listed[3].Text)

	for i := 1; i < len(listed); i++ {
		prev, cur := listed[i-1], listed[i]
		later := prev.CreatedAt.After(cur.CreatedAt) ||
			(prev.CreatedAt.Equal(cur.CreatedAt) && prev.ID > cur.ID)
		assert.True(t, later, "listing not strictly descending at index %d", i)
	}
}

func TestPostListPaginationAndSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	author := newTestUser(t, db, "carol")

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedPost(t, db, author.ID, "entry", base.Add(time.Duration(i)*time.Hour))
	}
	seedPost(t, db, author.ID, "a needle in here", base.Add(10*time.Hour))

	page1, total, err := svc.List(Page{Number: 1, Size: 4}, "")
	require.NoError(t, err)
	assert.EqualValues(t, 6, total)
	assert.Len(t, page1, 4)

	page2, total, err := svc.List(Page{Number: 2, Size: 4}, "")
	require.NoError(t, err)
	assert.EqualValues(t, 6, total)
	assert.Len(t, page2, 2)

	found, total, err := svc.List(Page{Number: 1, Size: 10}, "needle")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, found, 1)
	assert.Equal(t, "a needle in here", found[0].Text)
}

func TestPostListByAuthorAndGroup(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	alice := newTestUser(t, db, "alice")
	dan := newTestUser(t, db, "dan")
	group := newTestGroup(t, db, "Travel", "travel")

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	mine := seedPost(t, db, alice.ID, "by alice", base)
	mine.GroupID = &group.ID
	require.NoError(t, db.Save(mine).Error)
	seedPost(t, db, dan.ID, "by dan", base.Add(time.Hour))

	byAuthor, total, err := svc.ListByAuthor(alice.ID, Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "by alice", byAuthor[0].Text)

	byGroup, total, err := svc.ListByGroup(group.ID, Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, byGroup, 1)
	assert.Equal(t, alice.ID, byGroup[0].AuthorID)

	_, _, err = svc.ListByAuthor(9999, Page{Number: 1, Size: 10})
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, _, err = svc.ListByGroup(9999, Page{Number: 1, Size: 10})
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestPostUpdateKeepsPublicationTime(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	author := newTestUser(t, db, "ed")
	group := newTestGroup(t, db, "Books", "books")

	published := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
	post := seedPost(t, db, author.ID, "first draft", published)

	updated, err := svc.Update(post.ID, "second draft", &group.ID, "/static/uploads/a.png")
	require.NoError(t, err)
	assert.Equal(t, "second draft", updated.Text)
	require.NotNil(t, updated.GroupID)
	assert.Equal(t, group.ID, *updated.GroupID)
	assert.True(t, updated.CreatedAt.Equal(published), "edit must not move the publication timestamp")

	// Clearing the group sticks
	cleared, err := svc.Update(post.ID, "third draft", nil, "")
	require.NoError(t, err)
	assert.Nil(t, cleared.GroupID)

	_, err = svc.Update(post.ID, "", nil, "")
	assert.ErrorIs(t, err, ErrTextRequired)
	_, err = svc.Update(9999, "text", nil, "")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostDeleteRemovesComments(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db)
	comments := NewCommentService(db)
	author := newTestUser(t, db, "fay")

	post, err := posts.Create(author.ID, "to be removed", nil, "")
	require.NoError(t, err)
	_, err = comments.Create(post.ID, author.ID, "first")
	require.NoError(t, err)
	_, err = comments.Create(post.ID, author.ID, "second")
	require.NoError(t, err)

	require.NoError(t, posts.Delete(post.ID))

	_, err = posts.Get(post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	var orphaned int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&orphaned).Error)
	assert.Zero(t, orphaned)

	assert.ErrorIs(t, posts.Delete(post.ID), ErrPostNotFound)
}

func TestPostFeedFollowsGraph(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db)
	follows := NewFollowService(db)

	reader := newTestUser(t, db, "reader")
	followed := newTestUser(t, db, "followed")
	stranger := newTestUser(t, db, "stranger")

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	seedPost(t, db, followed.ID, "from followed one", base)
	seedPost(t, db, followed.ID, "from followed two", base.Add(time.Hour))
	seedPost(t, db, stranger.ID, "from stranger", base.Add(2*time.Hour))
	seedPost(t, db, reader.ID, "my own post", base.Add(3*time.Hour))

	_, err := follows.Follow(reader.ID, followed.ID)
	require.NoError(t, err)

	feed, total, err := posts.Feed(reader.ID, Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, feed, 2)
	assert.Equal(t, "from followed two", feed[0].Text)
	assert.Equal(t, "from followed one", feed[1].Text)

	// Unfollowing empties the feed
	require.NoError(t, follows.Unfollow(reader.ID, followed.ID))
	feed, total, err = posts.Feed(reader.ID, Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, feed)
}
