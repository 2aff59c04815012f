package services

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/inkwell-dev/inkwell/models"
)

// ContactService manages standalone feedback submissions.
type ContactService struct {
	db *gorm.DB
}

// NewContactService creates a new ContactService instance.
func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// Create persists a feedback message. All fields are required; the email
// must be a plain, syntactically valid address.
func (s *ContactService) Create(name, email, subject, body string) (*models.Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	subject = strings.TrimSpace(subject)
	body = strings.TrimSpace(body)

	if name == "" {
		return nil, ErrNameRequired
	}
	if utf8.RuneCountInString(name) > 100 {
		return nil, ErrNameTooLong
	}
	if subject == "" {
		return nil, ErrSubjectRequired
	}
	if utf8.RuneCountInString(subject) > 100 {
		return nil, ErrSubjectTooLong
	}
	if body == "" {
		return nil, ErrBodyRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return nil, ErrEmailInvalid
	}

	contact := models.Contact{Name: name, Email: email, Subject: subject, Body: body}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// List returns feedback messages, newest first. When unansweredOnly is set,
// answered messages are filtered out.
func (s *ContactService) List(unansweredOnly bool) ([]models.Contact, error) {
	q := s.db.Order("created_at DESC, id DESC")
	if unansweredOnly {
		q = q.Where("is_answered = ?", false)
	}
	var contacts []models.Contact
	if err := q.Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// MarkAnswered flips the answered flag on a message.
func (s *ContactService) MarkAnswered(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	if err := s.db.Model(&contact).Update("is_answered", true).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}
