// File: /database/database.go
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inkwell-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Composite indexes for the hot listing queries

	// Author listings and the follow-feed join scan posts by author
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_author_pub_date ON posts(author_id, pub_date DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for posts author listing: %v\n", err)
	}

	// Group pages list posts of one group newest first
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_group_pub_date ON posts(group_id, pub_date DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for posts group listing: %v\n", err)
	}

	// Comments of a post, newest first
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_post_created ON comments(post_id, created DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for comments: %v\n", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// Prevent duplicate follows. The uniqueIndex tag on models.Follow
	// already creates this under AutoMigrate; the ALTER covers schemas
	// migrated before the tag existed.
	if err := db.Exec("ALTER TABLE follows ADD CONSTRAINT uk_follows_follower_author UNIQUE (follower_id, author_id)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for follows: %v\n", err)
	}

	// Prevent self-following
	if err := db.Exec("ALTER TABLE follows ADD CONSTRAINT ck_follows_no_self_follow CHECK (follower_id != author_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for follows: %v\n", err)
	}

	return nil
}

// SeedData can be used to populate the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	// Check if we already have users
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	testUsers := []models.User{
		{
			ID:       "user-1",
			Username: "john_doe",
			Email:    "john@example.com",
			Password: "$2a$10$dummy", // This should be properly hashed in real scenarios
			Name:     "John Doe",
		},
		{
			ID:       "user-2",
			Username: "jane_smith",
			Email:    "jane@example.com",
			Password: "$2a$10$dummy",
			Name:     "Jane Smith",
		},
	}

	for _, user := range testUsers {
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Warning: Could not create test user %s: %v\n", user.Username, err)
		}
	}

	testGroups := []models.Group{
		{
			Slug:        "travel",
			Title:       "Travel notes",
			Description: "Road stories, city walks and places worth writing about.",
		},
		{
			Slug:        "cooking",
			Title:       "Home cooking",
			Description: "Recipes and kitchen experiments from the community.",
		},
	}

	for _, group := range testGroups {
		if err := db.Create(&group).Error; err != nil {
			fmt.Printf("Warning: Could not create test group %s: %v\n", group.Slug, err)
		}
	}

	var travel models.Group
	db.Where("slug = ?", "travel").First(&travel)

	testPosts := []models.Post{
		{
			ID:       "post-1",
			AuthorID: "user-1",
			GroupID:  &travel.ID,
			Text:     "Three days in the mountains and not a single bar of signal. Highly recommended.",
			PubDate:  time.Now().Add(-48 * time.Hour),
		},
		{
			ID:       "post-2",
			AuthorID: "user-2",
			Text:     "Finally got the sourdough starter to survive a full week.",
			PubDate:  time.Now().Add(-2 * time.Hour),
		},
	}

	for _, post := range testPosts {
		if err := db.Create(&post).Error; err != nil {
			fmt.Printf("Warning: Could not create test post %s: %v\n", post.ID, err)
		}
	}

	fmt.Println("Database seeded with test users, groups and posts")
	return nil
}
