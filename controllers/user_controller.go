// File: /controllers/user_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inkwell-api/services"
	"inkwell-api/utils"
)

type UserController struct {
	users   *services.UserService
	follows *services.FollowService
}

func NewUserController(users *services.UserService, follows *services.FollowService) *UserController {
	return &UserController{
		users:   users,
		follows: follows,
	}
}

// GetProfile is public; an authenticated viewer additionally learns
// whether they already follow this author.
func (uc *UserController) GetProfile(c *gin.Context) {
	username := c.Param("username")
	viewerID := c.GetString("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	profile, err := uc.users.Profile(username, viewerID, page)
	if err != nil {
		utils.SendError(c, statusForError(err), "User not found")
		return
	}

	profile.User.Password = ""
	c.JSON(http.StatusOK, profile)
}

func (uc *UserController) FollowUser(c *gin.Context) {
	userID := c.GetString("user_id")
	username := c.Param("username")

	author, err := uc.users.ByUsername(username)
	if err != nil {
		utils.SendError(c, statusForError(err), "User not found")
		return
	}

	// Self-follow and repeat follow are silent no-ops in the service
	if err := uc.follows.Follow(userID, author.ID); err != nil {
		utils.SendError(c, statusForError(err), "Failed to follow user")
		return
	}

	utils.SendSuccess(c, "Successfully followed user", nil)
}

func (uc *UserController) UnfollowUser(c *gin.Context) {
	userID := c.GetString("user_id")
	username := c.Param("username")

	author, err := uc.users.ByUsername(username)
	if err != nil {
		utils.SendError(c, statusForError(err), "User not found")
		return
	}

	if err := uc.follows.Unfollow(userID, author.ID); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to unfollow user")
		return
	}

	utils.SendSuccess(c, "Successfully unfollowed user", nil)
}

func (uc *UserController) GetFollowers(c *gin.Context) {
	userID := c.GetString("user_id")

	followers, err := uc.follows.Followers(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to get followers")
		return
	}

	for i := range followers {
		followers[i].Password = ""
	}
	c.JSON(http.StatusOK, followers)
}

func (uc *UserController) GetFollowing(c *gin.Context) {
	userID := c.GetString("user_id")

	following, err := uc.follows.Following(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to get following")
		return
	}

	for i := range following {
		following[i].Password = ""
	}
	c.JSON(http.StatusOK, following)
}
