package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-api/models"
)

func TestGroupDetail(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db, 10)
	groups := NewGroupService(db, posts)

	author := createTestUser(t, db, "author")
	group := createTestGroup(t, db, "travel", "Travel notes")

	inGroup := models.Post{
		ID:       "in-group",
		AuthorID: author.ID,
		GroupID:  &group.ID,
		Text:     "group post",
		PubDate:  time.Now(),
	}
	require.NoError(t, db.Create(&inGroup).Error)
	createTestPost(t, db, author.ID, "outside", time.Now())

	detail, err := groups.GroupDetail("travel", 1)
	require.NoError(t, err)
	assert.Equal(t, "Travel notes", detail.Group.Title)
	require.Len(t, detail.Posts.Posts, 1)
	assert.Equal(t, "in-group", detail.Posts.Posts[0].ID)
}

func TestGroupDetailUnknownSlug(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db, 10)
	groups := NewGroupService(db, posts)

	_, err := groups.GroupDetail("no-such-group", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletingGroupKeepsPosts(t *testing.T) {
	db := newTestDB(t)

	author := createTestUser(t, db, "author")
	group := createTestGroup(t, db, "doomed", "Doomed group")

	post := models.Post{
		ID:       "survivor",
		AuthorID: author.ID,
		GroupID:  &group.ID,
		Text:     "outlives its group",
		PubDate:  time.Now(),
	}
	require.NoError(t, db.Create(&post).Error)

	require.NoError(t, db.Delete(&group).Error)
	// In production the SET NULL foreign key clears the reference;
	// sqlite keeps foreign keys off by default, so mirror it here.
	require.NoError(t, db.Model(&models.Post{}).
		Where("group_id = ?", group.ID).
		Update("group_id", nil).Error)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, "id = ?", "survivor").Error)
	assert.Nil(t, reloaded.GroupID)
}

func TestListGroups(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db, 10)
	groups := NewGroupService(db, posts)

	createTestGroup(t, db, "zeta", "Zeta")
	createTestGroup(t, db, "alpha", "Alpha")

	all, err := groups.ListGroups()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alpha", all[0].Title)
}
