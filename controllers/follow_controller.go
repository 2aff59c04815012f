package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/services"
	"github.com/inkwell-dev/inkwell/utils"
)

// FollowController manages the subscription graph endpoints.
type FollowController struct {
	follows *services.FollowService
}

// NewFollowController creates a new FollowController instance.
func NewFollowController(svc *services.Services) *FollowController {
	return &FollowController{follows: svc.Follow}
}

// Follow subscribes the authenticated user to the author in the path.
func (f *FollowController) Follow(ctx *gin.Context) {
	authorID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40117, "unauthorized")
		return
	}

	follow, err := f.follows.Follow(userID, authorID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"follow": follow})
}

// Unfollow removes the authenticated user's subscription to the author.
func (f *FollowController) Unfollow(ctx *gin.Context) {
	authorID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40117, "unauthorized")
		return
	}

	if err := f.follows.Unfollow(userID, authorID); err != nil {
		serviceError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"message": "unfollowed"})
}

// Following lists the authors the authenticated user follows.
func (f *FollowController) Following(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40117, "unauthorized")
		return
	}
	users, err := f.follows.Following(userID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"items": users})
}

// Followers lists the users following the authenticated user.
func (f *FollowController) Followers(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40117, "unauthorized")
		return
	}
	users, err := f.follows.Followers(userID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"items": users})
}
