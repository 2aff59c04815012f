package models

import "time"

// Follow is a directed subscription edge: UserID follows AuthorID.
// The composite unique index keeps at most one edge per ordered pair and is
// the backstop against two concurrent follow attempts racing past the
// application-level duplicate check.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;uniqueIndex:idx_follow_pair;not null" json:"user_id"`
	AuthorID  uint      `gorm:"uniqueIndex:idx_follow_pair;not null" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
