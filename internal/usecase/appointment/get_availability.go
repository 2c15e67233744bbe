package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/SalonVioleta/nail-scheduler/internal/domain/appointment"
	"github.com/SalonVioleta/nail-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute reports whether the (date, time) slot is free. "Not available"
// is a normal boolean outcome, not a failure.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	timeStr string,
) (bool, error) {

	date = strings.TrimSpace(date)
	timeStr = strings.TrimSpace(timeStr)

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return false, httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse("15:04", timeStr); err != nil {
		return false, httperr.ErrBusiness("invalid_time")
	}

	taken, err := uc.repo.SlotTaken(ctx, date, timeStr)
	if err != nil {
		return false, err
	}

	return !taken, nil
}
