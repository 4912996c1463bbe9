package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user can hold.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// User represents an employee or administrator account.
type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email      string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password   string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed in JSON
	FirstName  string    `json:"firstName" gorm:"size:100;not null"`
	LastName   string    `json:"lastName" gorm:"size:100;not null"`
	Phone      string    `json:"phone" gorm:"size:50"`
	Department string    `json:"department" gorm:"size:100"`
	Position   string    `json:"position" gorm:"size:100"`
	Role       string    `json:"role" gorm:"size:20;default:'employee';index"`
	IsActive   bool      `json:"isActive" gorm:"default:true"`
	CreatedAt  time.Time `json:"joinDate"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
