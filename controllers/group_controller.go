// File: /controllers/group_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inkwell-api/services"
	"inkwell-api/utils"
)

type GroupController struct {
	groups *services.GroupService
}

func NewGroupController(groups *services.GroupService) *GroupController {
	return &GroupController{groups: groups}
}

func (gc *GroupController) GetGroups(c *gin.Context) {
	groups, err := gc.groups.ListGroups()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch groups")
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (gc *GroupController) GetGroup(c *gin.Context) {
	slug := c.Param("slug")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	detail, err := gc.groups.GroupDetail(slug, page)
	if err != nil {
		utils.SendError(c, statusForError(err), "Group not found")
		return
	}

	c.JSON(http.StatusOK, detail)
}
