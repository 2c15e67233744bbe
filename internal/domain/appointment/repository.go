package appointment

import (
	"context"

	"github.com/SalonVioleta/nail-scheduler/internal/models"
)

// StatusCount is one bucket of the per-status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ServiceCount is one bucket of the per-service breakdown.
type ServiceCount struct {
	ServiceType string `json:"service_type"`
	Count       int64  `json:"count"`
}

// DayCount is one bucket of the per-day breakdown.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// RoleCount is one bucket of the users-per-role breakdown.
type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

// Repository is the persistence port for the appointment core. One
// implementation per backing store; the lifecycle and availability logic
// never depend on which store backs it.
type Repository interface {
	// -------- Availability --------

	// SlotTaken reports whether a non-cancelled appointment already
	// occupies the (date, time) slot.
	SlotTaken(ctx context.Context, date string, time string) (bool, error)

	// -------- Appointment (create / conflict) --------

	// Create inserts the appointment. When a concurrent insert already
	// claimed the slot, the store-level uniqueness backstop fires and
	// Create returns the slot_unavailable business error.
	Create(ctx context.Context, ap *models.Appointment) error

	// -------- Appointment (state change) --------

	GetByID(ctx context.Context, id uint) (*models.Appointment, error)

	Update(ctx context.Context, ap *models.Appointment) error

	// -------- Read projections --------

	ListByOwner(ctx context.Context, ownerID uint) ([]models.Appointment, error)

	ListAll(ctx context.Context) ([]models.Appointment, error)

	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)

	// -------- Aggregation --------

	CountAll(ctx context.Context) (int64, error)

	CountByStatus(ctx context.Context) ([]StatusCount, error)

	CountByService(ctx context.Context) ([]ServiceCount, error)

	// CountByDay groups appointments per calendar date for dates >= from.
	CountByDay(ctx context.Context, from string) ([]DayCount, error)

	CountByDate(ctx context.Context, date string) (int64, error)

	CountDistinctOwners(ctx context.Context) (int64, error)

	CountUsersByRole(ctx context.Context) ([]RoleCount, error)
}
