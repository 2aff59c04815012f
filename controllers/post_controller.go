package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/config"
	"github.com/inkwell-dev/inkwell/models"
	"github.com/inkwell-dev/inkwell/services"
	"github.com/inkwell-dev/inkwell/utils"
)

// PostController manages CRUD operations for posts and their comments.
type PostController struct {
	posts    *services.PostService
	comments *services.CommentService
}

// NewPostController creates a new PostController instance.
func NewPostController(svc *services.Services) *PostController {
	return &PostController{posts: svc.Post, comments: svc.Comment}
}

// postItem decorates a post with its configured display preview.
type postItem struct {
	models.Post
	Preview string `json:"preview"`
}

func postItems(posts []models.Post) []postItem {
	n := config.Get().PostPreviewLength
	items := make([]postItem, len(posts))
	for i, p := range posts {
		items[i] = postItem{Post: p, Preview: p.Preview(n)}
	}
	return items
}

// ListPosts returns paginated posts including author information, newest first.
func (p *PostController) ListPosts(ctx *gin.Context) {
	page := parsePagination(ctx.Query("page"), ctx.Query("page_size"))
	search := ctx.Query("search")

	// Cache homepage lists when no search term to avoid cache key explosion
	cacheKey := fmt.Sprintf("cache:posts:list:page=%d:size=%d", page.Number, page.Size)
	if search == "" {
		if b, ok := utils.CacheGetBytes(cacheKey); ok {
			ctx.Data(http.StatusOK, "application/json", b)
			return
		}
	}

	posts, total, err := p.posts.List(page, search)
	if err != nil {
		serviceError(ctx, err)
		return
	}

	payload := gin.H{
		"items":      postItems(posts),
		"pagination": paginationPayload(page, total),
	}
	if search == "" {
		utils.CacheSetJSON(cacheKey, utils.JSONResponse{Code: 0, Message: "success", Data: payload}, time.Hour)
	}
	utils.Success(ctx, payload)
}

// GetPost returns a single post with its comments in creation order.
func (p *PostController) GetPost(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	cacheKey := "cache:post:detail:" + strconv.Itoa(int(id))
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	post, err := p.posts.Get(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	comments, err := p.comments.ListByPost(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	post.Comments = comments

	payload := gin.H{"post": postItem{Post: *post, Preview: post.Preview(config.Get().PostPreviewLength)}}
	utils.CacheSetJSON(cacheKey, utils.JSONResponse{Code: 0, Message: "success", Data: payload}, time.Hour)
	utils.Success(ctx, payload)
}

// CreatePost allows authenticated users to publish new posts.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		Text    string `json:"text" binding:"required"`
		GroupID *uint  `json:"group_id"`
		Image   string `json:"image"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	post, err := p.posts.Create(userID, utils.Sanitize(req.Text), req.GroupID, req.Image)
	if err != nil {
		serviceError(ctx, err)
		return
	}

	p.invalidateListCaches(userID)
	utils.Success(ctx, gin.H{"post": post})
}

// UpdatePost allows the author to edit their post's text, group and image.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req struct {
		Text    string `json:"text" binding:"required"`
		GroupID *uint  `json:"group_id"`
		Image   string `json:"image"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40111, "unauthorized")
		return
	}
	existing, err := p.posts.Get(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	if existing.AuthorID != userID {
		utils.Error(ctx, http.StatusForbidden, 40301, "you can only update your own posts")
		return
	}

	post, err := p.posts.Update(id, utils.Sanitize(req.Text), req.GroupID, req.Image)
	if err != nil {
		serviceError(ctx, err)
		return
	}

	p.invalidateListCaches(userID)
	utils.InvalidateByPrefix("cache:post:detail:" + strconv.Itoa(int(id)))
	utils.Success(ctx, gin.H{"post": post})
}

// DeletePost allows the author or an admin to delete a post.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40112, "unauthorized")
		return
	}
	existing, err := p.posts.Get(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	if existing.AuthorID != userID && !isAdmin(ctx) {
		utils.Error(ctx, http.StatusForbidden, 40302, "you can only delete your own posts")
		return
	}

	if err := p.posts.Delete(id); err != nil {
		serviceError(ctx, err)
		return
	}

	p.invalidateListCaches(existing.AuthorID)
	utils.InvalidateByPrefix("cache:post:detail:" + strconv.Itoa(int(id)))
	utils.Success(ctx, gin.H{"message": "post deleted"})
}

// ListUserPosts returns posts created by a specific user (public), newest first.
func (p *PostController) ListUserPosts(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	page := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	cacheKey := fmt.Sprintf("cache:user:%d:posts:page=%d:size=%d", id, page.Number, page.Size)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	posts, total, err := p.posts.ListByAuthor(id, page)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	payload := gin.H{
		"items":      postItems(posts),
		"pagination": paginationPayload(page, total),
	}
	utils.CacheSetJSON(cacheKey, utils.JSONResponse{Code: 0, Message: "success", Data: payload}, time.Hour)
	utils.Success(ctx, payload)
}

// Feed returns posts written by the authors the authenticated user follows.
func (p *PostController) Feed(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40113, "unauthorized")
		return
	}
	page := parsePagination(ctx.Query("page"), ctx.Query("page_size"))
	posts, total, err := p.posts.Feed(userID, page)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{
		"items":      postItems(posts),
		"pagination": paginationPayload(page, total),
	})
}

// CreateComment allows authenticated users to reply to a post.
func (p *PostController) CreateComment(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40023, "invalid request payload")
		return
	}
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40114, "unauthorized")
		return
	}

	comment, err := p.comments.Create(id, userID, utils.Sanitize(req.Text))
	if err != nil {
		serviceError(ctx, err)
		return
	}

	utils.InvalidateByPrefix("cache:post:detail:" + strconv.Itoa(int(id)))
	utils.Success(ctx, gin.H{"comment": comment})
}

// DeleteComment allows the comment owner or an admin to delete a comment.
func (p *PostController) DeleteComment(ctx *gin.Context) {
	id, ok := parseID(ctx, "commentId")
	if !ok {
		return
	}
	comment, err := p.comments.Get(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40115, "unauthorized")
		return
	}
	if comment.AuthorID != userID && !isAdmin(ctx) {
		utils.Error(ctx, http.StatusForbidden, 40320, "you can only delete your own comment")
		return
	}
	if err := p.comments.Delete(id); err != nil {
		serviceError(ctx, err)
		return
	}

	utils.InvalidateByPrefix("cache:post:detail:" + strconv.Itoa(int(comment.PostID)))
	utils.Success(ctx, gin.H{"message": "comment deleted"})
}

func (p *PostController) invalidateListCaches(authorID uint) {
	utils.InvalidateByPrefix("cache:posts:list:")
	utils.InvalidateByPrefix("cache:group:")
	utils.InvalidateByPrefix("cache:user:" + strconv.Itoa(int(authorID)) + ":posts:")
}
