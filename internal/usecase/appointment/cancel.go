package appointment

import (
	"context"

	"github.com/SalonVioleta/nail-scheduler/internal/audit"
	domain "github.com/SalonVioleta/nail-scheduler/internal/domain/appointment"
	"github.com/SalonVioleta/nail-scheduler/internal/models"
	"github.com/SalonVioleta/nail-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	salonTZ string
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	salonTZ string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:    repo,
		audit:   audit,
		salonTZ: salonTZ,
	}
}

// Execute cancels an appointment on behalf of its owner. Distinct
// outcomes: appointment_not_found, forbidden (not the owner),
// already_cancelled (idempotency guard).
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	requesterID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.salonTZ)
	if err := domain.CancelByOwner(ap, requesterID, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
