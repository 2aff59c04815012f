package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkwell-dev/inkwell/models"
)

// FollowService manages the directed subscription graph between users.
type FollowService struct {
	db *gorm.DB
}

// NewFollowService creates a new FollowService instance.
func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// Follow persists a subscription edge from userID to authorID.
// Self-follows are rejected before touching storage; an existing edge is
// reported as ErrAlreadyFollowing. The pre-check keeps the common duplicate
// path cheap, while the unique index on (user_id, author_id) closes the race
// between two simultaneous follow attempts for the same pair.
func (s *FollowService) Follow(userID, authorID uint) (*models.Follow, error) {
	if userID == authorID {
		return nil, ErrSelfFollow
	}
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}
	if err := s.checkUser(authorID); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyFollowing
	}

	follow := models.Follow{UserID: userID, AuthorID: authorID}
	if err := s.db.Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyFollowing
		}
		return nil, err
	}
	return &follow, nil
}

// Unfollow removes the edge from userID to authorID.
func (s *FollowService) Unfollow(userID, authorID uint) error {
	res := s.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFollowing
	}
	return nil
}

// IsFollowing reports whether the edge from userID to authorID exists.
func (s *FollowService) IsFollowing(userID, authorID uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Following returns the users that userID follows.
func (s *FollowService) Following(userID uint) ([]models.User, error) {
	var users []models.User
	edge := s.db.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID)
	if err := s.db.Where("id IN (?)", edge).Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Followers returns the users following authorID.
func (s *FollowService) Followers(authorID uint) ([]models.User, error) {
	var users []models.User
	edge := s.db.Model(&models.Follow{}).Select("user_id").Where("author_id = ?", authorID)
	if err := s.db.Where("id IN (?)", edge).Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *FollowService) checkUser(id uint) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}
