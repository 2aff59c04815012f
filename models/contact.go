package models

import "time"

// Contact is a standalone feedback message, unrelated to the social graph.
// IsAnswered starts false and is flipped by an administrator.
type Contact struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:254;not null" json:"email"`
	Subject    string    `gorm:"size:100;not null" json:"subject"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	IsAnswered bool      `gorm:"not null;default:false" json:"is_answered"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
