// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	Name      string    `json:"name" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// Follow is a directed edge: the follower wants the author's posts in
// their personalized feed. The composite unique index backs the
// duplicate-follow guard; the self-follow check lives in the migration.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID string    `json:"follower_id" gorm:"not null;size:191;uniqueIndex:uk_follows_follower_author"`
	AuthorID   string    `json:"author_id" gorm:"not null;size:191;uniqueIndex:uk_follows_follower_author"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `json:"follower" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Author   User `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// ProfileResponse is the payload for a user's public profile page.
type ProfileResponse struct {
	User      User     `json:"user"`
	PostCount int64    `json:"post_count"`
	Posts     PostPage `json:"posts"`
	Following bool     `json:"following"`
}
