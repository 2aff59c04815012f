package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/inkwell-dev/inkwell/models"
)

// PostService manages post creation, editing and every listing surface.
// All listings return posts in descending publication order, newest first;
// that ordering is a standing contract, not a per-call option.
type PostService struct {
	db *gorm.DB
}

// NewPostService creates a new PostService instance.
func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// Page describes a limit/offset window over a listing.
type Page struct {
	Number int
	Size   int
}

func (p Page) limitOffset() (int, int) {
	number := p.Number
	if number < 1 {
		number = 1
	}
	size := p.Size
	if size < 1 {
		size = 10
	}
	return size, (number - 1) * size
}

// postOrder is the single ordering clause applied to every post listing.
// The id tiebreak keeps the order strict when timestamps collide.
const postOrder = "created_at DESC, id DESC"

// Create persists a new post. Text and author are required; the group is
// optional and verified when present.
func (s *PostService) Create(authorID uint, text string, groupID *uint, image string) (*models.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}
	if authorID == 0 {
		return nil, ErrAuthorRequired
	}
	if err := s.checkAuthor(authorID); err != nil {
		return nil, err
	}
	if groupID != nil {
		if err := s.checkGroup(*groupID); err != nil {
			return nil, err
		}
	}

	post := models.Post{
		AuthorID: authorID,
		Text:     text,
		GroupID:  groupID,
		Image:    image,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Author").Preload("Group").First(&post, post.ID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Get loads a single post with its author and group.
func (s *PostService) Get(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List returns a page of all posts, newest first, with the total count.
// search optionally narrows by a substring of the text.
func (s *PostService) List(page Page, search string) ([]models.Post, int64, error) {
	q := s.db.Model(&models.Post{})
	if search = strings.TrimSpace(search); search != "" {
		q = q.Where("text LIKE ?", "%"+search+"%")
	}
	return s.listPosts(q, page)
}

// ListByGroup returns a page of the group's posts, newest first.
func (s *PostService) ListByGroup(groupID uint, page Page) ([]models.Post, int64, error) {
	if err := s.checkGroup(groupID); err != nil {
		return nil, 0, err
	}
	return s.listPosts(s.db.Model(&models.Post{}).Where("group_id = ?", groupID), page)
}

// ListByAuthor returns a page of the author's posts, newest first.
func (s *PostService) ListByAuthor(authorID uint, page Page) ([]models.Post, int64, error) {
	if err := s.checkAuthor(authorID); err != nil {
		return nil, 0, err
	}
	return s.listPosts(s.db.Model(&models.Post{}).Where("author_id = ?", authorID), page)
}

// Feed returns a page of posts written by the authors the user follows,
// newest first.
func (s *PostService) Feed(userID uint, page Page) ([]models.Post, int64, error) {
	if err := s.checkAuthor(userID); err != nil {
		return nil, 0, err
	}
	followed := s.db.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID)
	return s.listPosts(s.db.Model(&models.Post{}).Where("author_id IN (?)", followed), page)
}

func (s *PostService) listPosts(q *gorm.DB, page Page) ([]models.Post, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	limit, offset := page.limitOffset()
	var posts []models.Post
	if err := q.Preload("Author").Preload("Group").
		Order(postOrder).Limit(limit).Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Update edits the mutable fields of a post: text, group and image.
// The publication timestamp is never touched.
func (s *PostService) Update(id uint, text string, groupID *uint, image string) (*models.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}
	if groupID != nil {
		if err := s.checkGroup(*groupID); err != nil {
			return nil, err
		}
	}
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	updates := map[string]interface{}{
		"text":     text,
		"group_id": groupID,
		"image":    image,
	}
	if err := s.db.Model(&post).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Author").Preload("Group").First(&post, post.ID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a post together with its comments in one transaction.
func (s *PostService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

func (s *PostService) checkAuthor(id uint) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *PostService) checkGroup(id uint) error {
	var count int64
	if err := s.db.Model(&models.Group{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrGroupNotFound
	}
	return nil
}
