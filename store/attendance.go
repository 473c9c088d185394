package store

import (
	"context"
	"errors"
	"time"

	"eventhub-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceStore tracks per-user participation in events.
//
// The (user_id, event_id) pair is unique by index and Join writes through an
// ON CONFLICT upsert, so concurrent joins for the same pair collapse to a
// single row without read-then-write.
type AttendanceStore struct {
	db *gorm.DB
}

func NewAttendanceStore(db *gorm.DB) *AttendanceStore {
	return &AttendanceStore{db: db}
}

// Join records the user as joined for the event, reactivating a cancelled
// record instead of duplicating it. Fails with ErrNotFound when the event
// does not exist and with ErrConflict when the event is at capacity, unless
// the user already holds a joined record (re-join is always a no-op
// success). The capacity check shares a transaction with the upsert; the
// single-record invariant itself is carried by the unique index.
func (s *AttendanceStore) Join(ctx context.Context, userID, eventID uint) (*models.Rsvp, error) {
	var rsvp models.Rsvp
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if event.Capacity > 0 {
			var existing models.Rsvp
			alreadyJoined := false
			err := tx.Where("user_id = ? AND event_id = ?", userID, eventID).First(&existing).Error
			if err == nil {
				alreadyJoined = existing.Status == models.RsvpJoined
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			if !alreadyJoined {
				var joined int64
				if err := tx.Model(&models.Rsvp{}).
					Where("event_id = ? AND status = ?", eventID, models.RsvpJoined).
					Count(&joined).Error; err != nil {
					return err
				}
				if joined >= int64(event.Capacity) {
					return ErrConflict
				}
			}
		}

		record := models.Rsvp{
			UserID:  userID,
			EventID: eventID,
			Status:  models.RsvpJoined,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"status":     models.RsvpJoined,
				"updated_at": time.Now(),
			}),
		}).Create(&record).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ? AND event_id = ?", userID, eventID).First(&rsvp).Error
	})
	if err != nil {
		return nil, err
	}
	return &rsvp, nil
}

// Cancel sets the record for (user, event) to cancelled. Cancelling an
// already-cancelled record is a no-op success; a pair with no record at all
// is ErrNotFound.
func (s *AttendanceStore) Cancel(ctx context.Context, userID, eventID uint) (*models.Rsvp, error) {
	res := s.db.WithContext(ctx).Model(&models.Rsvp{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Update("status", models.RsvpCancelled)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var rsvp models.Rsvp
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&rsvp).Error; err != nil {
		return nil, err
	}
	return &rsvp, nil
}

// CountJoined returns the number of joined records for the event.
func (s *AttendanceStore) CountJoined(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Rsvp{}).
		Where("event_id = ? AND status = ?", eventID, models.RsvpJoined).
		Count(&count).Error
	return count, err
}

// ListJoinedEventIDs returns the IDs of events the user is joined to.
func (s *AttendanceStore) ListJoinedEventIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).Model(&models.Rsvp{}).
		Where("user_id = ? AND status = ?", userID, models.RsvpJoined).
		Pluck("event_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ListByEvent returns the joined records for an event with users preloaded,
// for the owner-facing attendee list.
func (s *AttendanceStore) ListByEvent(ctx context.Context, eventID uint) ([]models.Rsvp, error) {
	var rsvps []models.Rsvp
	err := s.db.WithContext(ctx).Preload("User").
		Where("event_id = ? AND status = ?", eventID, models.RsvpJoined).
		Order("created_at asc").
		Find(&rsvps).Error
	if err != nil {
		return nil, err
	}
	return rsvps, nil
}
