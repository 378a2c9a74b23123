package models

import (
	"time"
)

type Comment struct {
	ID       string    `json:"id" gorm:"primaryKey;size:191"`
	PostID   string    `json:"post_id" gorm:"not null;size:191;index"`
	AuthorID string    `json:"author_id" gorm:"not null;size:191;index"`
	Text     string    `json:"text" gorm:"type:text;not null"`
	Created  time.Time `json:"created" gorm:"not null;index"`

	Author User `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
