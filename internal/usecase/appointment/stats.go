package appointment

import (
	"context"

	domain "github.com/SalonVioleta/nail-scheduler/internal/domain/appointment"
	"github.com/SalonVioleta/nail-scheduler/internal/timezone"
)

// DashboardStats is the admin dashboard payload. All values are derived
// on demand, never cached.
type DashboardStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`

	ByService []domain.ServiceCount `json:"byService"`
	ByDay     []domain.DayCount     `json:"byDay"`

	Today       int64 `json:"today"`
	UniqueUsers int64 `json:"uniqueUsers"`

	UsersByRole []domain.RoleCount `json:"usersByRole"`
}

type ComputeStats struct {
	repo    domain.Repository
	salonTZ string
}

func NewComputeStats(repo domain.Repository, salonTZ string) *ComputeStats {
	return &ComputeStats{repo: repo, salonTZ: salonTZ}
}

// Execute composes a batch of independent read queries. There is no
// ordering dependency between the sub-counts.
func (uc *ComputeStats) Execute(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	total, err := uc.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	stats.Total = total

	byStatus, err := uc.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, sc := range byStatus {
		switch domain.Status(sc.Status) {
		case domain.StatusPending:
			stats.Pending = sc.Count
		case domain.StatusConfirmed:
			stats.Confirmed = sc.Count
		case domain.StatusCompleted:
			stats.Completed = sc.Count
		case domain.StatusCancelled:
			stats.Cancelled = sc.Count
		}
	}

	byService, err := uc.repo.CountByService(ctx)
	if err != nil {
		return nil, err
	}
	stats.ByService = byService

	now := timezone.NowIn(uc.salonTZ)
	today := now.Format("2006-01-02")

	// Trailing 7 calendar days, today included.
	weekStart := now.AddDate(0, 0, -6).Format("2006-01-02")

	byDay, err := uc.repo.CountByDay(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	stats.ByDay = byDay

	todayCount, err := uc.repo.CountByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	stats.Today = todayCount

	uniqueUsers, err := uc.repo.CountDistinctOwners(ctx)
	if err != nil {
		return nil, err
	}
	stats.UniqueUsers = uniqueUsers

	usersByRole, err := uc.repo.CountUsersByRole(ctx)
	if err != nil {
		return nil, err
	}
	stats.UsersByRole = usersByRole

	return stats, nil
}
