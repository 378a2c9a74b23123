// File: /controllers/post_controller.go
package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inkwell-api/services"
	"inkwell-api/utils"
)

type PostController struct {
	posts *services.PostService
	cache *services.CacheService
}

func NewPostController(posts *services.PostService, cache *services.CacheService) *PostController {
	return &PostController{
		posts: posts,
		cache: cache,
	}
}

type CreatePostRequest struct {
	Text    string `json:"text" binding:"required"`
	GroupID *uint  `json:"group_id"`
	Image   string `json:"image"`
}

type UpdatePostRequest struct {
	Text    string `json:"text" binding:"required"`
	GroupID *uint  `json:"group_id"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// GetPosts serves the home listing. The rendered body is cached per
// page for the configured TTL; expiry by time only, a post created or
// deleted inside the window shows up late on purpose.
func (pc *PostController) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	cacheKey := fmt.Sprintf("home_feed:page:%d", page)
	if body, ok := pc.cache.Get(cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	postPage, err := pc.posts.ListPosts(services.PostFilter{}, page)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	body, err := json.Marshal(postPage)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to render posts")
		return
	}

	pc.cache.Set(cacheKey, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GetFeed serves the personalized feed: posts by authors the caller follows.
func (pc *PostController) GetFeed(c *gin.Context) {
	userID := c.GetString("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	postPage, err := pc.posts.Feed(userID, page)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch feed")
		return
	}

	c.JSON(http.StatusOK, postPage)
}

func (pc *PostController) GetPost(c *gin.Context) {
	postID := c.Param("id")

	detail, err := pc.posts.PostDetail(postID)
	if err != nil {
		utils.SendError(c, statusForError(err), "Post not found")
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	post, err := pc.posts.CreatePost(userID, req.Text, req.GroupID, req.Image)
	if err != nil {
		utils.SendError(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	post, err := pc.posts.EditPost(userID, postID, req.Text, req.GroupID)
	if err != nil {
		utils.SendError(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	if err := pc.posts.DeletePost(userID, postID); err != nil {
		utils.SendError(c, statusForError(err), err.Error())
		return
	}

	utils.SendSuccess(c, "Post deleted successfully", nil)
}

func (pc *PostController) CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	comment, err := pc.posts.AddComment(userID, postID, req.Text)
	if err != nil {
		utils.SendError(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (pc *PostController) GetComments(c *gin.Context) {
	postID := c.Param("id")

	detail, err := pc.posts.PostDetail(postID)
	if err != nil {
		utils.SendError(c, statusForError(err), "Post not found")
		return
	}

	c.JSON(http.StatusOK, detail.Comments)
}
