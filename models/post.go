package models

import "time"

// Post is a text entry written by a user, optionally filed under a group and
// optionally illustrated with an uploaded image. CreatedAt is the publication
// timestamp: stamped once at creation and never touched by edits. Every listing
// surface returns posts newest first.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	AuthorID  uint      `gorm:"index;not null" json:"author_id"`
	GroupID   *uint     `gorm:"index" json:"group_id"`
	Image     string    `gorm:"size:512" json:"image"` // public URL like /static/uploads/...
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Group     *Group    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"group,omitempty"`
	Comments  []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments,omitempty"`
}

// Preview returns the first n runes of the post text, used as its display
// representation. The length comes from configuration, not from the model.
func (p Post) Preview(n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(p.Text)
	if len(runes) <= n {
		return p.Text
	}
	return string(runes[:n])
}
