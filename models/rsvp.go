package models

import "time"

const (
	RsvpJoined    = "joined"
	RsvpCancelled = "cancelled"
)

// Rsvp records a user's intent to attend an event. At most one row exists
// per (user, event) pair; re-joining flips the status back to joined.
type Rsvp struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_rsvp_user_event"`
	EventID   uint      `json:"event_id" gorm:"not null;uniqueIndex:idx_rsvp_user_event"`
	Status    string    `json:"status" gorm:"type:varchar(16);default:'joined'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
