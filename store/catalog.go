package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"eventhub-backend/models"

	"gorm.io/gorm"
)

// EventFilter enumerates the recognized listing options. Zero values mean
// "not filtered". Date bounds are inclusive on both ends.
type EventFilter struct {
	TitleContains string
	Category      string
	DateFrom      time.Time
	DateTo        time.Time
	OwnerID       uint
	AttendeeID    uint
	Status        string
}

// EventPatch carries the optional fields of an update; nil means unchanged.
type EventPatch struct {
	Title       *string
	Description *string
	Location    *string
	Date        *time.Time
	Time        *string
	Category    *string
	Capacity    *int
	Image       *string
}

// EventCatalog stores and queries event metadata. It consults the
// AttendanceStore for attendee-scoped listings.
type EventCatalog struct {
	db         *gorm.DB
	attendance *AttendanceStore
}

func NewEventCatalog(db *gorm.DB, attendance *AttendanceStore) *EventCatalog {
	return &EventCatalog{db: db, attendance: attendance}
}

// Create validates the required fields and persists the event with the
// caller as owner. The owner must resolve to an existing user.
func (c *EventCatalog) Create(ctx context.Context, ownerID uint, event models.Event) (*models.Event, error) {
	event.Title = strings.TrimSpace(event.Title)
	switch {
	case event.Title == "":
		return nil, validationf("title is required")
	case strings.TrimSpace(event.Description) == "":
		return nil, validationf("description is required")
	case strings.TrimSpace(event.Location) == "":
		return nil, validationf("location is required")
	case event.Date.IsZero():
		return nil, validationf("date is required")
	case strings.TrimSpace(event.Time) == "":
		return nil, validationf("time is required")
	case strings.TrimSpace(event.Category) == "":
		return nil, validationf("category is required")
	case event.Capacity < 0:
		return nil, validationf("capacity must be non-negative")
	}

	var owner models.User
	if err := c.db.WithContext(ctx).First(&owner, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	event.ID = 0
	event.CreatedBy = ownerID
	event.Creator = models.User{}
	if event.Status == "" {
		event.Status = models.EventApproved
	}
	if err := c.db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *EventCatalog) Get(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := c.db.WithContext(ctx).Preload("Creator").First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// List returns events matching the filter, ordered by date ascending. The
// AttendeeID option is applied as a post-filter intersection with the
// attendance store's joined set, not as a store-level join.
func (c *EventCatalog) List(ctx context.Context, f EventFilter) ([]models.Event, error) {
	query := c.db.WithContext(ctx).Model(&models.Event{}).Preload("Creator")

	if f.TitleContains != "" {
		// LOWER(...) LIKE works on both the sqlite and postgres drivers;
		// ILIKE would not.
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.TitleContains)+"%")
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if !f.DateFrom.IsZero() {
		query = query.Where("date >= ?", f.DateFrom)
	}
	if !f.DateTo.IsZero() {
		query = query.Where("date <= ?", f.DateTo)
	}
	if f.OwnerID != 0 {
		query = query.Where("created_by = ?", f.OwnerID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}

	var events []models.Event
	if err := query.Order("date asc").Find(&events).Error; err != nil {
		return nil, err
	}

	if f.AttendeeID != 0 {
		ids, err := c.attendance.ListJoinedEventIDs(ctx, f.AttendeeID)
		if err != nil {
			return nil, err
		}
		joined := make(map[uint]struct{}, len(ids))
		for _, id := range ids {
			joined[id] = struct{}{}
		}
		filtered := events[:0]
		for _, e := range events {
			if _, ok := joined[e.ID]; ok {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	return events, nil
}

// Update applies the patch as a single column update scoped by ID. Fails
// with ErrForbidden unless the actor is the owner or an admin.
func (c *EventCatalog) Update(ctx context.Context, id, actorID uint, actorRole string, patch EventPatch) (*models.Event, error) {
	event, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(actorID, actorRole, event.CreatedBy) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, validationf("title is required")
		}
		updates["title"] = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.Time != nil {
		updates["time"] = *patch.Time
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Capacity != nil {
		if *patch.Capacity < 0 {
			return nil, validationf("capacity must be non-negative")
		}
		updates["capacity"] = *patch.Capacity
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}

	if len(updates) > 0 {
		if err := c.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return c.Get(ctx, id)
}

// Delete removes the event together with its RSVPs and comments in one
// transaction, so no orphaned records survive. Same authorization gate as
// Update.
func (c *EventCatalog) Delete(ctx context.Context, id, actorID uint, actorRole string) error {
	event, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutate(actorID, actorRole, event.CreatedBy) {
		return ErrForbidden
	}

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.Rsvp{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, id).Error
	})
}

// SetStatus performs the moderation transition (approve/reject).
func (c *EventCatalog) SetStatus(ctx context.Context, id uint, status string) (*models.Event, error) {
	if status != models.EventPending && status != models.EventApproved && status != models.EventRejected {
		return nil, validationf("invalid event status")
	}
	res := c.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return c.Get(ctx, id)
}

// ListAll returns every event newest first, for the moderation panel.
func (c *EventCatalog) ListAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := c.db.WithContext(ctx).Preload("Creator").Order("created_at desc").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (c *EventCatalog) Count(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&models.Event{}).Count(&count).Error
	return count, err
}
