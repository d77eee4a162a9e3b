package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole represents the role assigned to a user account.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// User represents a login account for the application.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FullName     string    `json:"full_name"`
	Role         UserRole  `gorm:"default:user" json:"role"`
	CreatedDate  time.Time `json:"created_date"`
}

// BeforeCreate hook defaults the created date to the creation time.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.CreatedDate.IsZero() {
		u.CreatedDate = time.Now()
	}
	return nil
}
