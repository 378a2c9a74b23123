// File: /models/group.go
package models

import (
	"time"
)

// Group is a named community. Deleting a group keeps its posts; the
// posts' group reference is cleared instead.
type Group struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	Title       string    `json:"title" gorm:"not null;size:200"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
}

// GroupDetailResponse bundles a group with one page of its posts.
type GroupDetailResponse struct {
	Group Group    `json:"group"`
	Posts PostPage `json:"posts"`
}
