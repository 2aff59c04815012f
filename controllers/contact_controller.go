package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/config"
	"github.com/inkwell-dev/inkwell/services"
	"github.com/inkwell-dev/inkwell/utils"
)

// ContactController handles public feedback submissions and their admin review.
type ContactController struct {
	contacts *services.ContactService
}

// NewContactController creates a new ContactController instance.
func NewContactController(svc *services.Services) *ContactController {
	return &ContactController{contacts: svc.Contact}
}

// CreateContact accepts a feedback message from anyone, authenticated or not.
func (c *ContactController) CreateContact(ctx *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Subject string `json:"subject" binding:"required"`
		Body    string `json:"body" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid request payload")
		return
	}

	contact, err := c.contacts.Create(
		utils.SanitizeStrict(req.Name),
		req.Email,
		utils.SanitizeStrict(req.Subject),
		utils.SanitizeStrict(req.Body),
	)
	if err != nil {
		serviceError(ctx, err)
		return
	}

	// Best-effort admin notification; the submission stands either way.
	if notify := config.Get().ContactNotifyEmail; notify != "" {
		go func(to, subject, body string) {
			if err := utils.SendMail(to, subject, body); err != nil && utils.Sugar != nil {
				utils.Sugar.Warnf("contact notification mail failed: %v", err)
			}
		}(notify,
			fmt.Sprintf("New contact message: %s", contact.Subject),
			fmt.Sprintf("From: %s <%s>\n\n%s", contact.Name, contact.Email, contact.Body))
	}

	utils.Success(ctx, gin.H{"contact": contact})
}

// ListContacts returns feedback messages for admins, newest first.
// ?unanswered=1 filters out already answered messages.
func (c *ContactController) ListContacts(ctx *gin.Context) {
	if !isAdmin(ctx) {
		utils.Error(ctx, http.StatusForbidden, 40311, "admin privileges required")
		return
	}
	unanswered := ctx.Query("unanswered") == "1"
	contacts, err := c.contacts.List(unanswered)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"items": contacts})
}

// MarkAnswered flips a message's answered flag. Admin only.
func (c *ContactController) MarkAnswered(ctx *gin.Context) {
	if !isAdmin(ctx) {
		utils.Error(ctx, http.StatusForbidden, 40311, "admin privileges required")
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	contact, err := c.contacts.MarkAnswered(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"contact": contact})
}
