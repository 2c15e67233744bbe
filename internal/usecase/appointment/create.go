package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/SalonVioleta/nail-scheduler/internal/audit"
	domain "github.com/SalonVioleta/nail-scheduler/internal/domain/appointment"
	"github.com/SalonVioleta/nail-scheduler/internal/httperr"
	"github.com/SalonVioleta/nail-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	OwnerID     uint
	Date        string
	Time        string
	ServiceType string
	ImageURL    string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	date := strings.TrimSpace(in.Date)
	timeStr := strings.TrimSpace(in.Time)

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse("15:04", timeStr); err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if strings.TrimSpace(in.ServiceType) == "" {
		return nil, httperr.ErrBusiness("missing_service_type")
	}

	// Fast-path availability check. The partial unique index remains the
	// source of truth under concurrency (see Create below).
	taken, err := uc.repo.SlotTaken(ctx, date, timeStr)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	ap := &models.Appointment{
		UserID:      in.OwnerID,
		Date:        date,
		Time:        timeStr,
		ServiceType: strings.TrimSpace(in.ServiceType),
		ImageURL:    in.ImageURL,
		Notes:       in.Notes,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			uc.audit.Dispatch(audit.Event{
				UserID: &in.OwnerID,
				Action: "slot_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"date": date,
					"time": timeStr,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
