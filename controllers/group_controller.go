package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/services"
	"github.com/inkwell-dev/inkwell/utils"
)

// GroupController manages topical categories and their post listings.
type GroupController struct {
	groups *services.GroupService
	posts  *services.PostService
}

// NewGroupController creates a new GroupController instance.
func NewGroupController(svc *services.Services) *GroupController {
	return &GroupController{groups: svc.Group, posts: svc.Post}
}

// ListGroups returns all groups ordered by title.
func (g *GroupController) ListGroups(ctx *gin.Context) {
	groups, err := g.groups.List()
	if err != nil {
		serviceError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"items": groups})
}

// GetGroup returns a group identified by slug together with a page of its
// posts, newest first.
func (g *GroupController) GetGroup(ctx *gin.Context) {
	slug := ctx.Param("slug")
	page := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	cacheKey := fmt.Sprintf("cache:group:%s:page=%d:size=%d", slug, page.Number, page.Size)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	group, err := g.groups.GetBySlug(slug)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	posts, total, err := g.posts.ListByGroup(group.ID, page)
	if err != nil {
		serviceError(ctx, err)
		return
	}

	payload := gin.H{
		"group":      group,
		"items":      postItems(posts),
		"pagination": paginationPayload(page, total),
	}
	utils.CacheSetJSON(cacheKey, utils.JSONResponse{Code: 0, Message: "success", Data: payload}, time.Hour)
	utils.Success(ctx, payload)
}

// CreateGroup allows admins to add a new group.
func (g *GroupController) CreateGroup(ctx *gin.Context) {
	if !isAdmin(ctx) {
		utils.Error(ctx, http.StatusForbidden, 40310, "admin privileges required")
		return
	}
	var req struct {
		Title       string `json:"title" binding:"required"`
		Slug        string `json:"slug" binding:"required"`
		Description string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40025, "invalid request payload")
		return
	}

	group, err := g.groups.Create(
		utils.SanitizeStrict(req.Title),
		req.Slug,
		utils.Sanitize(req.Description),
	)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	utils.InvalidateByPrefix("cache:group:")
	utils.Success(ctx, gin.H{"group": group})
}

// UpdateGroup allows admins to edit a group's title and description.
func (g *GroupController) UpdateGroup(ctx *gin.Context) {
	if !isAdmin(ctx) {
		utils.Error(ctx, http.StatusForbidden, 40310, "admin privileges required")
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40025, "invalid request payload")
		return
	}

	group, err := g.groups.Update(id, utils.SanitizeStrict(req.Title), utils.Sanitize(req.Description))
	if err != nil {
		serviceError(ctx, err)
		return
	}
	utils.InvalidateByPrefix("cache:group:")
	utils.Success(ctx, gin.H{"group": group})
}

// DeleteGroup allows admins to remove a group. Posts filed under it keep
// living with their group reference cleared.
func (g *GroupController) DeleteGroup(ctx *gin.Context) {
	if !isAdmin(ctx) {
		utils.Error(ctx, http.StatusForbidden, 40310, "admin privileges required")
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := g.groups.Delete(id); err != nil {
		serviceError(ctx, err)
		return
	}
	utils.InvalidateByPrefix("cache:group:")
	utils.InvalidateByPrefix("cache:posts:list:")
	utils.InvalidateByPrefix("cache:post:detail:")
	utils.Success(ctx, gin.H{"message": "group deleted"})
}
