package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inkwell-api/database"
	"inkwell-api/models"
)

// newTestDB opens a fresh in-memory database and runs the migrations.
// Each test gets its own named memory database so parallel tests don't
// share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    username + "@example.com",
		Password: "$2a$10$dummy",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestGroup(t *testing.T, db *gorm.DB, slug, title string) models.Group {
	t.Helper()

	group := models.Group{
		Slug:        slug,
		Title:       title,
		Description: "test group",
	}
	require.NoError(t, db.Create(&group).Error)
	return group
}

func createTestPost(t *testing.T, db *gorm.DB, authorID, text string, pubDate time.Time) models.Post {
	t.Helper()

	post := models.Post{
		ID:       uuid.New().String(),
		AuthorID: authorID,
		Text:     text,
		PubDate:  pubDate,
	}
	require.NoError(t, db.Create(&post).Error)
	return post
}
