// File: /services/follow_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inkwell-api/models"
)

type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// Follow creates a follower -> author edge. Following yourself and
// following someone twice are both silent no-ops; concurrent duplicates
// are caught by the unique index, not by application locking.
func (fs *FollowService) Follow(followerID, authorID string) error {
	if followerID == authorID {
		return nil
	}

	var author models.User
	if err := fs.db.First(&author, "id = ?", authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %s", ErrNotFound, authorID)
		}
		return err
	}

	follow := models.Follow{
		FollowerID: followerID,
		AuthorID:   authorID,
	}

	if err := fs.db.Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Already following, nothing to do
			return nil
		}
		return err
	}

	return nil
}

// Unfollow removes the edge if present. Removing an absent edge is a no-op.
func (fs *FollowService) Unfollow(followerID, authorID string) error {
	return fs.db.
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&models.Follow{}).Error
}

// IsFollowing reports whether follower already follows the author.
func (fs *FollowService) IsFollowing(followerID, authorID string) (bool, error) {
	if followerID == "" {
		return false, nil
	}

	var follow models.Follow
	err := fs.db.
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		First(&follow).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// Followers lists the users following the given author.
func (fs *FollowService) Followers(authorID string) ([]models.User, error) {
	var follows []models.Follow
	if err := fs.db.Preload("Follower").Where("author_id = ?", authorID).Find(&follows).Error; err != nil {
		return nil, err
	}

	followers := make([]models.User, 0, len(follows))
	for _, follow := range follows {
		followers = append(followers, follow.Follower)
	}
	return followers, nil
}

// Following lists the authors the given user follows.
func (fs *FollowService) Following(followerID string) ([]models.User, error) {
	var follows []models.Follow
	if err := fs.db.Preload("Author").Where("follower_id = ?", followerID).Find(&follows).Error; err != nil {
		return nil, err
	}

	following := make([]models.User, 0, len(follows))
	for _, follow := range follows {
		following = append(following, follow.Author)
	}
	return following, nil
}
