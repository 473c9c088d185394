package models

import "time"

// Comment is immutable once posted.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	EventID   uint      `json:"event_id" gorm:"index;not null"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Body      string    `json:"comment" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author User `json:"author,omitempty" gorm:"foreignKey:UserID"`
}
