// File: /services/post_service.go
package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inkwell-api/models"
)

type PostService struct {
	db       *gorm.DB
	pageSize int
}

func NewPostService(db *gorm.DB, pageSize int) *PostService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &PostService{db: db, pageSize: pageSize}
}

// PostFilter narrows a listing to one group or one author. Zero values
// mean "no filter".
type PostFilter struct {
	GroupID  *uint
	AuthorID string
}

// ListPosts returns one page of posts, newest first. A page number past
// the end is clamped to the last page, never an error.
func (s *PostService) ListPosts(filter PostFilter, page int) (*models.PostPage, error) {
	query := s.db.Model(&models.Post{})
	if filter.GroupID != nil {
		query = query.Where("group_id = ?", *filter.GroupID)
	}
	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	return s.paginate(query, page)
}

// Feed returns one page of posts written by authors the user follows.
// A user who follows nobody gets an empty page.
func (s *PostService) Feed(userID string, page int) (*models.PostPage, error) {
	query := s.db.Model(&models.Post{}).
		Where("author_id IN (SELECT author_id FROM follows WHERE follower_id = ?)", userID)
	return s.paginate(query, page)
}

// PostDetail returns a post with its author, its comments newest first
// and the title of its group ("" when the post has no group).
func (s *PostService) PostDetail(postID string) (*models.PostDetailResponse, error) {
	var post models.Post
	if err := s.db.Preload("Author").First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %s", ErrNotFound, postID)
		}
		return nil, err
	}

	var comments []models.Comment
	if err := s.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	groupTitle := ""
	if post.GroupID != nil {
		var group models.Group
		if err := s.db.First(&group, "id = ?", *post.GroupID).Error; err == nil {
			groupTitle = group.Title
		}
	}

	return &models.PostDetailResponse{
		Post:       post,
		Comments:   comments,
		GroupTitle: groupTitle,
	}, nil
}

// CreatePost inserts a new post with the publication time set to now.
func (s *PostService) CreatePost(authorID, text string, groupID *uint, image string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: post text must not be empty", ErrValidation)
	}
	if groupID != nil {
		var group models.Group
		if err := s.db.First(&group, "id = ?", *groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: group %d", ErrNotFound, *groupID)
			}
			return nil, err
		}
	}

	post := models.Post{
		ID:       uuid.New().String(),
		AuthorID: authorID,
		GroupID:  groupID,
		Text:     text,
		Image:    image,
		PubDate:  time.Now(),
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}

	s.db.Preload("Author").First(&post, "id = ?", post.ID)
	return &post, nil
}

// EditPost updates text and group of the caller's own post. The
// publication date is never touched.
func (s *PostService) EditPost(userID, postID, text string, groupID *uint) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: post text must not be empty", ErrValidation)
	}

	var post models.Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %s", ErrNotFound, postID)
		}
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, fmt.Errorf("%w: only the author may edit a post", ErrForbidden)
	}

	if groupID != nil {
		var group models.Group
		if err := s.db.First(&group, "id = ?", *groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: group %d", ErrNotFound, *groupID)
			}
			return nil, err
		}
	}

	updates := map[string]interface{}{
		"text":     text,
		"group_id": groupID,
	}

	if err := s.db.Model(&post).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.db.Preload("Author").First(&post, "id = ?", postID)
	return &post, nil
}

// DeletePost removes the caller's own post together with its comments.
func (s *PostService) DeletePost(userID, postID string) error {
	var post models.Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: post %s", ErrNotFound, postID)
		}
		return err
	}
	if post.AuthorID != userID {
		return fmt.Errorf("%w: only the author may delete a post", ErrForbidden)
	}

	if err := s.db.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&post).Error
}

// AddComment attaches a comment to an existing post.
func (s *PostService) AddComment(authorID, postID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text must not be empty", ErrValidation)
	}

	var post models.Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %s", ErrNotFound, postID)
		}
		return nil, err
	}

	comment := models.Comment{
		ID:       uuid.New().String(),
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
		Created:  time.Now(),
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	s.db.Preload("Author").First(&comment, "id = ?", comment.ID)
	return &comment, nil
}

// paginate runs a filtered post query with count, clamping and the
// default newest-first ordering.
func (s *PostService) paginate(query *gorm.DB, page int) (*models.PostPage, error) {
	// New session so the count and the page query don't pollute each other
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(s.pageSize)))

	// Anything below the first page becomes page 1, anything past the
	// end becomes the last page. Out-of-range never errors.
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	offset := (page - 1) * s.pageSize

	posts := make([]models.Post, 0, s.pageSize)
	if err := query.Preload("Author").Preload("Group").
		Order("pub_date DESC").
		Offset(offset).Limit(s.pageSize).
		Find(&posts).Error; err != nil {
		return nil, err
	}

	return &models.PostPage{
		Posts:      posts,
		Page:       page,
		PageSize:   s.pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}, nil
}
