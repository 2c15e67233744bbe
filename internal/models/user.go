package models

import "time"

const (
	RoleUser      = "user"
	RoleAttendant = "attendant"
	RoleAdmin     = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'user'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsValidRole reports whether role is one of the three known roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAttendant, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether role may manage any appointment's status and notes.
func IsStaff(role string) bool {
	return role == RoleAttendant || role == RoleAdmin
}
