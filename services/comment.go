package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/inkwell-dev/inkwell/models"
)

// CommentService manages replies to posts.
type CommentService struct {
	db *gorm.DB
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create persists a new comment. Text is required and bounded at 200
// characters; both the post and the author must exist.
func (s *CommentService) Create(postID, authorID uint, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrCommentRequired
	}
	if utf8.RuneCountInString(text) > models.MaxCommentLength {
		return nil, ErrCommentTooLong
	}
	if authorID == 0 {
		return nil, ErrAuthorRequired
	}

	var count int64
	if err := s.db.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrPostNotFound
	}
	if err := s.db.Model(&models.User{}).Where("id = ?", authorID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUserNotFound
	}

	comment := models.Comment{PostID: postID, AuthorID: authorID, Text: text}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Author").First(&comment, comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost returns the post's comments in creation order, oldest first.
func (s *CommentService) ListByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Preload("Author").Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Get loads a single comment.
func (s *CommentService) Get(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment.
func (s *CommentService) Delete(id uint) error {
	res := s.db.Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
