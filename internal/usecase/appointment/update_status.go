package appointment

import (
	"context"

	"github.com/SalonVioleta/nail-scheduler/internal/audit"
	domain "github.com/SalonVioleta/nail-scheduler/internal/domain/appointment"
	"github.com/SalonVioleta/nail-scheduler/internal/httperr"
	"github.com/SalonVioleta/nail-scheduler/internal/models"
	"github.com/SalonVioleta/nail-scheduler/internal/timezone"
)

type UpdateStatus struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	salonTZ string
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	salonTZ string,
) *UpdateStatus {
	return &UpdateStatus{
		repo:    repo,
		audit:   audit,
		salonTZ: salonTZ,
	}
}

// Execute applies a staff status change. Role enforcement happens at the
// route gate; any valid state is reachable from any other.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
	newStatus string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	previous := ap.Status

	now := timezone.NowIn(uc.salonTZ)
	if err := domain.SetStatus(ap, domain.Status(newStatus), now); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			uc.audit.Dispatch(audit.Event{
				UserID:   &actorID,
				Action:   "slot_conflict",
				Entity:   "appointment",
				EntityID: &ap.ID,
				Metadata: map[string]any{
					"date": ap.Date,
					"time": ap.Time,
					"to":   newStatus,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_status_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   ap.Status,
		},
	})

	return ap, nil
}
