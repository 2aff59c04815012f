package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/inkwell-dev/inkwell/models"
)

// GroupService manages topical categories for posts.
type GroupService struct {
	db *gorm.DB
}

// NewGroupService creates a new GroupService instance.
func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

func validSlug(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}

// Create persists a new group. The slug is the unique URL identifier; a
// collision with an existing group is reported as ErrSlugTaken.
func (s *GroupService) Create(title, slug, description string) (*models.Group, error) {
	title = strings.TrimSpace(title)
	slug = strings.TrimSpace(slug)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if slug == "" {
		return nil, ErrSlugRequired
	}
	if !validSlug(slug) {
		return nil, ErrSlugInvalid
	}

	var count int64
	if err := s.db.Model(&models.Group{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	group := models.Group{Title: title, Slug: slug, Description: description}
	if err := s.db.Create(&group).Error; err != nil {
		// Unique index on slug closes the race between two concurrent creates.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return &group, nil
}

// Update edits the mutable fields of a group. The slug is immutable.
func (s *GroupService) Update(id uint, title, description string) (*models.Group, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	var group models.Group
	if err := s.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	group.Title = title
	group.Description = description
	if err := s.db.Save(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// GetBySlug loads a group by its slug.
func (s *GroupService) GetBySlug(slug string) (*models.Group, error) {
	var group models.Group
	if err := s.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// GetByID loads a group by its primary key.
func (s *GroupService) GetByID(id uint) (*models.Group, error) {
	var group models.Group
	if err := s.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// List returns all groups ordered by title.
func (s *GroupService) List() ([]models.Group, error) {
	var groups []models.Group
	if err := s.db.Order("title ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Delete removes a group. Posts filed under it survive with their group
// reference nulled; both steps run in the deleting transaction.
func (s *GroupService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var group models.Group
		if err := tx.First(&group, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGroupNotFound
			}
			return err
		}
		if err := tx.Model(&models.Post{}).Where("group_id = ?", id).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
}
