package store

import (
	"context"
	"errors"
	"strings"

	"eventhub-backend/models"

	"gorm.io/gorm"
)

// CommentStore persists per-event comments. Comments are immutable once
// posted; they disappear only when their event is deleted.
type CommentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

// Add posts a comment on an event. Fails with ErrNotFound when the event
// does not exist.
func (s *CommentStore) Add(ctx context.Context, eventID, userID uint, body string) (*models.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, validationf("comment is required")
	}

	var event models.Event
	if err := s.db.WithContext(ctx).First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		EventID: eventID,
		UserID:  userID,
		Body:    body,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByEvent returns the event's comments newest first with authors
// preloaded.
func (s *CommentStore) ListByEvent(ctx context.Context, eventID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).Preload("Author").
		Where("event_id = ?", eventID).
		Order("created_at desc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
