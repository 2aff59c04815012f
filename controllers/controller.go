package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/config"
	"github.com/inkwell-dev/inkwell/middleware"
	"github.com/inkwell-dev/inkwell/services"
	"github.com/inkwell-dev/inkwell/utils"
)

// serviceErrorMapping translates a typed service error to an HTTP status and
// application code.
type serviceErrorMapping struct {
	err    services.Err
	status int
	code   int
}

var serviceErrorMappings = []serviceErrorMapping{
	// validation
	{services.ErrUsernameRequired, http.StatusBadRequest, 40001},
	{services.ErrPasswordTooShort, http.StatusBadRequest, 40003},
	{services.ErrTextRequired, http.StatusBadRequest, 40021},
	{services.ErrAuthorRequired, http.StatusBadRequest, 40022},
	{services.ErrCommentRequired, http.StatusBadRequest, 40023},
	{services.ErrCommentTooLong, http.StatusBadRequest, 40024},
	{services.ErrTitleRequired, http.StatusBadRequest, 40025},
	{services.ErrSlugRequired, http.StatusBadRequest, 40026},
	{services.ErrSlugInvalid, http.StatusBadRequest, 40027},
	{services.ErrSelfFollow, http.StatusBadRequest, 40030},
	{services.ErrNameRequired, http.StatusBadRequest, 40041},
	{services.ErrNameTooLong, http.StatusBadRequest, 40042},
	{services.ErrSubjectRequired, http.StatusBadRequest, 40043},
	{services.ErrSubjectTooLong, http.StatusBadRequest, 40044},
	{services.ErrBodyRequired, http.StatusBadRequest, 40045},
	{services.ErrEmailInvalid, http.StatusBadRequest, 40046},
	// auth
	{services.ErrInvalidCredentials, http.StatusUnauthorized, 40106},
	// not found / missing references
	{services.ErrPostNotFound, http.StatusNotFound, 40401},
	{services.ErrGroupNotFound, http.StatusNotFound, 40402},
	{services.ErrUserNotFound, http.StatusNotFound, 40410},
	{services.ErrCommentNotFound, http.StatusNotFound, 40420},
	{services.ErrContactNotFound, http.StatusNotFound, 40430},
	{services.ErrNotFollowing, http.StatusNotFound, 40440},
	// already exists
	{services.ErrUsernameTaken, http.StatusConflict, 40901},
	{services.ErrSlugTaken, http.StatusConflict, 40902},
	{services.ErrAlreadyFollowing, http.StatusConflict, 40903},
}

// serviceError writes the API response for a service failure. Typed errors map
// to their dedicated status/code; anything else is an unexpected storage
// failure, logged and reported as 500.
func serviceError(ctx *gin.Context, err error) {
	for _, m := range serviceErrorMappings {
		if errors.Is(err, m.err) {
			utils.Error(ctx, m.status, m.code, strings.TrimPrefix(string(m.err), "services: "))
			return
		}
	}
	if utils.Sugar != nil {
		utils.Sugar.Errorf("unexpected service error on %s: %v", ctx.FullPath(), err)
	}
	utils.Error(ctx, http.StatusInternalServerError, 50000, "internal server error")
}

func getUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

func isAdmin(ctx *gin.Context) bool {
	unameVal, exists := ctx.Get(middleware.ContextUsernameKey)
	if !exists {
		return false
	}
	uname, _ := unameVal.(string)
	if uname == "" {
		return false
	}
	cfg := config.Get()
	for _, u := range cfg.AdminUsernames {
		if strings.EqualFold(strings.TrimSpace(u), uname) {
			return true
		}
	}
	return false
}

func parseID(ctx *gin.Context, param string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(ctx.Param(param)), 10, 32)
	if err != nil || n == 0 {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid id")
		return 0, false
	}
	return uint(n), true
}

func parsePagination(pageStr, sizeStr string) services.Page {
	page := services.Page{Number: 1, Size: config.Get().DefaultPageSize}
	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page.Number = p
	}
	if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 && s <= 100 {
		page.Size = s
	}
	return page
}

func paginationPayload(page services.Page, total int64) gin.H {
	size := int64(page.Size)
	return gin.H{
		"page":        page.Number,
		"page_size":   page.Size,
		"total":       total,
		"total_pages": (total + size - 1) / size,
	}
}
