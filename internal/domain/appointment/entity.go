package appointment

import (
	"time"

	"github.com/SalonVioleta/nail-scheduler/internal/httperr"
	"github.com/SalonVioleta/nail-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// CancelByOwner transitions an appointment to cancelada on behalf of its
// owner. Ownership and the idempotency guard live here so every caller
// gets the same outcomes.
func CancelByOwner(ap *models.Appointment, requesterID uint, now time.Time) error {
	if ap.UserID != requesterID {
		return httperr.ErrBusiness("forbidden")
	}
	if Status(ap.Status) == StatusCancelled {
		return httperr.ErrBusiness("already_cancelled")
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// SetStatus applies a staff status change. Any valid state is reachable
// from any other; the timestamps follow the state.
func SetStatus(ap *models.Appointment, next Status, now time.Time) error {
	if !next.IsValid() {
		return httperr.ErrBusiness("invalid_status")
	}

	ap.Status = string(next)

	switch next {
	case StatusCancelled:
		ap.CancelledAt = &now
		ap.CompletedAt = nil
	case StatusCompleted:
		ap.CompletedAt = &now
		ap.CancelledAt = nil
	default:
		ap.CancelledAt = nil
		ap.CompletedAt = nil
	}
	return nil
}
