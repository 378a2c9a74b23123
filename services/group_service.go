// File: /services/group_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inkwell-api/models"
)

type GroupService struct {
	db    *gorm.DB
	posts *PostService
}

func NewGroupService(db *gorm.DB, posts *PostService) *GroupService {
	return &GroupService{db: db, posts: posts}
}

// ListGroups returns all groups ordered by title.
func (gs *GroupService) ListGroups() ([]models.Group, error) {
	var groups []models.Group
	if err := gs.db.Order("title ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// GroupDetail resolves a group by slug and returns one page of its posts.
func (gs *GroupService) GroupDetail(slug string, page int) (*models.GroupDetailResponse, error) {
	var group models.Group
	if err := gs.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: group %q", ErrNotFound, slug)
		}
		return nil, err
	}

	postPage, err := gs.posts.ListPosts(PostFilter{GroupID: &group.ID}, page)
	if err != nil {
		return nil, err
	}

	return &models.GroupDetailResponse{
		Group: group,
		Posts: *postPage,
	}, nil
}
