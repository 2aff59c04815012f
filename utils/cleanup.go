package utils

import (
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/inkwell-dev/inkwell/models"
)

// StartOrphanImageCleaner launches a background goroutine that periodically
// removes uploaded images older than maxAge that were never attached to a
// post. Best-effort: failures are logged and retried on the next tick.
func StartOrphanImageCleaner(db *gorm.DB, interval, maxAge time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	go func() {
		for {
			time.Sleep(interval)

			cutoff := time.Now().Add(-maxAge)
			referenced := db.Model(&models.Post{}).Select("image").Where("image <> ''")
			var orphans []models.UploadedImage
			if err := db.Where("created_at <= ? AND url NOT IN (?)", cutoff, referenced).
				Limit(100).Find(&orphans).Error; err != nil {
				if Sugar != nil {
					Sugar.Warnf("orphan image query failed: %v", err)
				}
				continue
			}
			for _, img := range orphans {
				if img.FilePath != "" {
					_ = os.Remove(img.FilePath)
				}
				// Remove row regardless of file deletion outcome
				if err := db.Delete(&models.UploadedImage{}, img.ID).Error; err != nil && Sugar != nil {
					Sugar.Warnf("orphan image row delete failed: %v", err)
				}
			}
		}
	}()
}
