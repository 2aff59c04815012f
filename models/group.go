package models

import "time"

// Group is a named topical category that posts may optionally belong to.
// The slug is the stable URL identifier and must be unique.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Slug        string    `gorm:"size:64;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Posts       []Post    `json:"-"`
}

// String returns the display representation of a group.
func (g Group) String() string {
	return g.Title
}
