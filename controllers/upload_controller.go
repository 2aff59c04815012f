package controllers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-dev/inkwell/config"
	"github.com/inkwell-dev/inkwell/models"
	"github.com/inkwell-dev/inkwell/utils"
)

// UploadController stores post images on local disk and records them for
// orphan cleanup.
type UploadController struct {
	db *gorm.DB
}

// NewUploadController creates a new UploadController instance.
func NewUploadController(db *gorm.DB) *UploadController {
	return &UploadController{db: db}
}

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadImage accepts a multipart image upload and returns its public URL.
func (u *UploadController) UploadImage(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40116, "unauthorized")
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40050, "no file uploaded")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExt[ext] {
		utils.Error(ctx, http.StatusBadRequest, 40051, "unsupported image type")
		return
	}

	maxSize := int64(config.Get().UploadMaxSizeMB) * 1024 * 1024
	if header.Size > 0 && header.Size > maxSize {
		utils.Error(ctx, http.StatusBadRequest, 40052, "file too large")
		return
	}

	now := time.Now()
	baseDir := filepath.Join(".", "static", "uploads", now.Format("2006"), now.Format("01"))
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to create upload directory")
		return
	}

	name := uuid.NewString() + ext
	dstPath := filepath.Join(baseDir, name)
	out, err := os.Create(dstPath)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to save file")
		return
	}
	defer out.Close()

	lr := &io.LimitedReader{R: file, N: maxSize + 1}
	written, err := io.Copy(out, lr)
	if err != nil || written > maxSize {
		_ = out.Close()
		_ = os.Remove(dstPath)
		if err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50052, "failed to write file")
		} else {
			utils.Error(ctx, http.StatusBadRequest, 40052, "file too large")
		}
		return
	}

	url := fmt.Sprintf("/static/uploads/%s/%s/%s", now.Format("2006"), now.Format("01"), name)
	absPath, _ := filepath.Abs(dstPath)
	if err := u.db.Create(&models.UploadedImage{
		UserID:   userID,
		FilePath: absPath,
		URL:      url,
	}).Error; err != nil && utils.Sugar != nil {
		// Upload itself succeeded; the sweeper just won't know about the file.
		utils.Sugar.Warnf("failed to record uploaded image: %v", err)
	}

	utils.Success(ctx, gin.H{"url": url})
}
