package dto

import (
	"time"

	"github.com/SalonVioleta/nail-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	ServiceType string     `json:"service_type"`
	ImageURL    string     `json:"image_url,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	AdminNotes  string     `json:"admin_notes,omitempty"`
	Status      string     `json:"status"`
	UserName    string     `json:"user_name"`
	UserEmail   string     `json:"user_email"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:          ap.ID,
		UserID:      ap.UserID,
		Date:        ap.Date,
		Time:        ap.Time,
		ServiceType: ap.ServiceType,
		ImageURL:    ap.ImageURL,
		Notes:       ap.Notes,
		AdminNotes:  ap.AdminNotes,
		Status:      ap.Status,
		UserName:    ap.User.Name,
		UserEmail:   ap.User.Email,
		CreatedAt:   ap.CreatedAt,
		CancelledAt: ap.CancelledAt,
		CompletedAt: ap.CompletedAt,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
