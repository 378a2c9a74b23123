// File: /models/post.go
package models

import (
	"time"
)

type Post struct {
	ID       string `json:"id" gorm:"primaryKey;size:191"`
	AuthorID string `json:"author_id" gorm:"not null;size:191;index"`
	GroupID  *uint  `json:"group_id" gorm:"index"`
	Text     string `json:"text" gorm:"type:text;not null"`
	Image    string `json:"image,omitempty" gorm:"size:500"`
	// PubDate is set once at creation and never updated afterwards.
	PubDate time.Time `json:"pub_date" gorm:"not null;index"`

	Author   User      `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Group    *Group    `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// PostPage represents one page of a listing with pagination metadata
type PostPage struct {
	Posts      []Post `json:"posts"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	Total      int64  `json:"total"`
	TotalPages int    `json:"total_pages"`
	HasMore    bool   `json:"has_more"`
}

// PostDetailResponse is a single post with its comments (newest first)
// and the title of its group, empty when the post has no group.
type PostDetailResponse struct {
	Post       Post      `json:"post"`
	Comments   []Comment `json:"comments"`
	GroupTitle string    `json:"group_title"`
}
