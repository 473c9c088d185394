package models

import "time"

const (
	EventPending  = "pending"
	EventApproved = "approved"
	EventRejected = "rejected"
)

// Event is the core event model. Capacity 0 means unlimited.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Location    string    `json:"location" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	Time        string    `json:"time" gorm:"not null"`
	Category    string    `json:"category" gorm:"index;not null"`
	Capacity    int       `json:"capacity" gorm:"default:0"`
	Image       string    `json:"image"`
	CreatedBy   uint      `json:"created_by" gorm:"index;not null"`
	Status      string    `json:"status" gorm:"type:varchar(16);default:'approved'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Creator User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
}
