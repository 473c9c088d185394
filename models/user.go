package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// User represents a registered user. PasswordHash is never serialized.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Bio          string    `json:"bio"`
	Avatar       string    `json:"avatar"`
	Role         string    `json:"role" gorm:"type:varchar(16);default:'user'"`
	Status       string    `json:"status" gorm:"type:varchar(16);default:'active'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
