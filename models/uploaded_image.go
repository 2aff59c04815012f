package models

import "time"

// UploadedImage records locally stored post images so that uploads which were
// never attached to a post can be swept by the background cleaner.
type UploadedImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	FilePath  string    `gorm:"size:1024;not null" json:"file_path"` // filesystem path
	URL       string    `gorm:"size:1024;not null" json:"url"`       // public URL like /static/uploads/...
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
