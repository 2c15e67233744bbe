package appointment

import (
	"context"

	"github.com/SalonVioleta/nail-scheduler/internal/audit"
	domain "github.com/SalonVioleta/nail-scheduler/internal/domain/appointment"
	"github.com/SalonVioleta/nail-scheduler/internal/models"
)

type UpdateAdminNotes struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAdminNotes(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAdminNotes {
	return &UpdateAdminNotes{
		repo:  repo,
		audit: audit,
	}
}

// Execute overwrites the staff notes. Empty string is a valid value (it
// clears them); no history is kept.
func (uc *UpdateAdminNotes) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
	notes string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	ap.AdminNotes = notes

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_notes_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
