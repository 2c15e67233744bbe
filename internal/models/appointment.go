package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`

	// Slot: calendar date (2006-01-02) and time (15:04), salon-local.
	Date string `gorm:"size:10;not null;index:idx_appointments_slot_lookup" json:"date"`
	Time string `gorm:"size:5;not null;index:idx_appointments_slot_lookup" json:"time"`

	ServiceType string `gorm:"size:100;not null" json:"service_type"`
	ImageURL    string `gorm:"size:255" json:"image_url"`
	Notes       string `gorm:"size:500" json:"notes"`
	AdminNotes  string `gorm:"size:500" json:"admin_notes"`

	Status string `gorm:"size:20;default:'pendiente'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
