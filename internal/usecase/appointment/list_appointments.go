package appointment

import (
	"context"

	domain "github.com/SalonVioleta/nail-scheduler/internal/domain/appointment"
	"github.com/SalonVioleta/nail-scheduler/internal/dto"
	"github.com/SalonVioleta/nail-scheduler/internal/timezone"
)

type ListAppointments struct {
	repo    domain.Repository
	salonTZ string
}

func NewListAppointments(repo domain.Repository, salonTZ string) *ListAppointments {
	return &ListAppointments{repo: repo, salonTZ: salonTZ}
}

// ByOwner returns the requesting user's appointments, newest slot first.
func (uc *ListAppointments) ByOwner(
	ctx context.Context,
	ownerID uint,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return dto.FromAppointments(aps), nil
}

// All returns every appointment, newest slot first. Staff only; the gate
// lives at the route.
func (uc *ListAppointments) All(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromAppointments(aps), nil
}

// Today returns the salon-local current day's appointments in slot order.
func (uc *ListAppointments) Today(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {

	today := timezone.NowIn(uc.salonTZ).Format("2006-01-02")

	aps, err := uc.repo.ListByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	return dto.FromAppointments(aps), nil
}

// ByID returns a single appointment projection.
func (uc *ListAppointments) ByID(
	ctx context.Context,
	id uint,
) (*dto.AppointmentListDTO, error) {

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := dto.FromAppointment(*ap)
	return &out, nil
}
