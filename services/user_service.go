// File: /services/user_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inkwell-api/models"
)

type UserService struct {
	db      *gorm.DB
	posts   *PostService
	follows *FollowService
}

func NewUserService(db *gorm.DB, posts *PostService, follows *FollowService) *UserService {
	return &UserService{db: db, posts: posts, follows: follows}
}

// ByUsername resolves a user by their unique username.
func (us *UserService) ByUsername(username string) (*models.User, error) {
	var user models.User
	if err := us.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
		}
		return nil, err
	}
	return &user, nil
}

// Profile returns a user's public profile: the user, their post count,
// one page of their posts and whether the viewer already follows them.
// viewerID is empty for anonymous viewers, which always yields
// following=false.
func (us *UserService) Profile(username, viewerID string, page int) (*models.ProfileResponse, error) {
	user, err := us.ByUsername(username)
	if err != nil {
		return nil, err
	}

	postPage, err := us.posts.ListPosts(PostFilter{AuthorID: user.ID}, page)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != "" && viewerID != user.ID {
		following, err = us.follows.IsFollowing(viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return &models.ProfileResponse{
		User:      *user,
		PostCount: postPage.Total,
		Posts:     *postPage,
		Following: following,
	}, nil
}
