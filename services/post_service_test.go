package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-api/models"
)

func TestListPostsOrderingAndPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	// 13 posts by bob, 3 by alice, each a minute apart
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 13; i++ {
		createTestPost(t, db, bob.ID, fmt.Sprintf("bob %d", i), base.Add(time.Duration(i)*time.Minute))
	}
	for i := 0; i < 3; i++ {
		createTestPost(t, db, alice.ID, fmt.Sprintf("alice %d", i), base.Add(time.Duration(13+i)*time.Minute))
	}

	page1, err := svc.ListPosts(PostFilter{}, 1)
	require.NoError(t, err)
	assert.Len(t, page1.Posts, 10)
	assert.Equal(t, int64(16), page1.Total)
	assert.Equal(t, 2, page1.TotalPages)
	assert.True(t, page1.HasMore)
	// Most recent first
	assert.Equal(t, "alice 2", page1.Posts[0].Text)
	for i := 1; i < len(page1.Posts); i++ {
		assert.False(t, page1.Posts[i].PubDate.After(page1.Posts[i-1].PubDate))
	}

	page2, err := svc.ListPosts(PostFilter{}, 2)
	require.NoError(t, err)
	assert.Len(t, page2.Posts, 6)
	assert.False(t, page2.HasMore)
	assert.Equal(t, "bob 0", page2.Posts[len(page2.Posts)-1].Text)
}

func TestListPostsClampsOutOfRangePage(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	author := createTestUser(t, db, "author")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 16; i++ {
		createTestPost(t, db, author.ID, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	// Past the end lands on the last page, not an empty one
	page, err := svc.ListPosts(PostFilter{}, 99)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Posts, 6)

	// Below the first page lands on page 1
	page, err = svc.ListPosts(PostFilter{}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Posts, 10)
}

func TestListPostsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	page, err := svc.ListPosts(PostFilter{}, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, int64(0), page.Total)
	assert.Equal(t, 1, page.Page)
}

func TestListPostsByGroupAndAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	group := createTestGroup(t, db, "travel", "Travel notes")

	grouped := models.Post{
		ID:       "grouped-post",
		AuthorID: alice.ID,
		GroupID:  &group.ID,
		Text:     "in the group",
		PubDate:  time.Now(),
	}
	require.NoError(t, db.Create(&grouped).Error)
	createTestPost(t, db, bob.ID, "ungrouped", time.Now())

	byGroup, err := svc.ListPosts(PostFilter{GroupID: &group.ID}, 1)
	require.NoError(t, err)
	require.Len(t, byGroup.Posts, 1)
	assert.Equal(t, "grouped-post", byGroup.Posts[0].ID)

	byAuthor, err := svc.ListPosts(PostFilter{AuthorID: bob.ID}, 1)
	require.NoError(t, err)
	require.Len(t, byAuthor.Posts, 1)
	assert.Equal(t, "ungrouped", byAuthor.Posts[0].Text)
}

func TestCreatePost(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	author := createTestUser(t, db, "author")
	group := createTestGroup(t, db, "cooking", "Home cooking")

	post, err := svc.CreatePost(author.ID, "first post", &group.ID, "")
	require.NoError(t, err)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Equal(t, group.ID, *post.GroupID)
	assert.WithinDuration(t, time.Now(), post.PubDate, 5*time.Second)
	assert.Equal(t, "author", post.Author.Username)
}

func TestCreatePostValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	author := createTestUser(t, db, "author")

	_, err := svc.CreatePost(author.ID, "   ", nil, "")
	assert.ErrorIs(t, err, ErrValidation)

	missing := uint(999)
	_, err = svc.CreatePost(author.ID, "text", &missing, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditPostKeepsPubDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	author := createTestUser(t, db, "author")
	pubDate := time.Now().Add(-24 * time.Hour)
	post := createTestPost(t, db, author.ID, "original", pubDate)

	group := createTestGroup(t, db, "travel", "Travel notes")
	edited, err := svc.EditPost(author.ID, post.ID, "edited", &group.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", edited.Text)
	assert.Equal(t, group.ID, *edited.GroupID)
	assert.WithinDuration(t, pubDate, edited.PubDate, time.Second)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, "id = ?", post.ID).Error)
	assert.WithinDuration(t, pubDate, reloaded.PubDate, time.Second)
}

func TestEditPostForbiddenForOtherUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice.ID, "alice's post", time.Now())

	_, err := svc.EditPost(bob.ID, post.ID, "hijacked", nil)
	assert.ErrorIs(t, err, ErrForbidden)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, "id = ?", post.ID).Error)
	assert.Equal(t, "alice's post", reloaded.Text)
}

func TestEditPostNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	user := createTestUser(t, db, "user")
	_, err := svc.EditPost(user.ID, "no-such-post", "text", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostDetail(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	author := createTestUser(t, db, "author")
	commenter := createTestUser(t, db, "commenter")
	group := createTestGroup(t, db, "travel", "Travel notes")

	post := models.Post{
		ID:       "detail-post",
		AuthorID: author.ID,
		GroupID:  &group.ID,
		Text:     "with comments",
		PubDate:  time.Now(),
	}
	require.NoError(t, db.Create(&post).Error)

	older := models.Comment{
		ID:       "comment-1",
		PostID:   post.ID,
		AuthorID: commenter.ID,
		Text:     "first",
		Created:  time.Now().Add(-time.Hour),
	}
	newer := models.Comment{
		ID:       "comment-2",
		PostID:   post.ID,
		AuthorID: commenter.ID,
		Text:     "second",
		Created:  time.Now(),
	}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	detail, err := svc.PostDetail(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Travel notes", detail.GroupTitle)
	require.Len(t, detail.Comments, 2)
	// Newest comment first
	assert.Equal(t, "comment-2", detail.Comments[0].ID)
	assert.Equal(t, "comment-1", detail.Comments[1].ID)
}

func TestPostDetailWithoutGroup(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	author := createTestUser(t, db, "author")
	post := createTestPost(t, db, author.ID, "no group", time.Now())

	detail, err := svc.PostDetail(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "", detail.GroupTitle)
	assert.Empty(t, detail.Comments)
}

func TestPostDetailNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	_, err := svc.PostDetail("no-such-post")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddComment(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	author := createTestUser(t, db, "author")
	commenter := createTestUser(t, db, "commenter")
	post := createTestPost(t, db, author.ID, "post", time.Now())

	comment, err := svc.AddComment(commenter.ID, post.ID, "nice one")
	require.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, "commenter", comment.Author.Username)
	assert.WithinDuration(t, time.Now(), comment.Created, 5*time.Second)
}

func TestAddCommentPostNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	commenter := createTestUser(t, db, "commenter")
	_, err := svc.AddComment(commenter.ID, "no-such-post", "hello?")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCommentValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	author := createTestUser(t, db, "author")
	post := createTestPost(t, db, author.ID, "post", time.Now())

	_, err := svc.AddComment(author.ID, post.ID, "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeletePost(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db, 10)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice.ID, "doomed", time.Now())

	_, err := svc.AddComment(bob.ID, post.ID, "soon gone")
	require.NoError(t, err)

	// Not the author
	err = svc.DeletePost(bob.ID, post.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.DeletePost(alice.ID, post.ID))

	var postCount, commentCount int64
	db.Model(&models.Post{}).Count(&postCount)
	db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount)
	assert.Equal(t, int64(0), postCount)
	assert.Equal(t, int64(0), commentCount)
}
