package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SalonVioleta/nail-scheduler/internal/audit"
	domain "github.com/SalonVioleta/nail-scheduler/internal/domain/appointment"
	"github.com/SalonVioleta/nail-scheduler/internal/httperr"
	"github.com/SalonVioleta/nail-scheduler/internal/models"
)

// fakeRepo is an in-memory domain.Repository. The mutex-guarded Create
// enforces the one-non-cancelled-appointment-per-slot invariant the same
// way the Postgres partial unique index does, so the conflict semantics
// are testable without a database.
type fakeRepo struct {
	mu           sync.Mutex
	seq          uint
	appointments map[uint]models.Appointment
	users        map[uint]models.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: make(map[uint]models.Appointment),
		users:        make(map[uint]models.User),
	}
}

func (f *fakeRepo) addUser(u models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = u
}

func (f *fakeRepo) slotTakenLocked(date, timeStr string) bool {
	for _, ap := range f.appointments {
		if ap.Date == date && ap.Time == timeStr && domain.Status(ap.Status).OccupiesSlot() {
			return true
		}
	}
	return false
}

func (f *fakeRepo) SlotTaken(_ context.Context, date, timeStr string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slotTakenLocked(date, timeStr), nil
}

func (f *fakeRepo) Create(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.slotTakenLocked(ap.Date, ap.Time) {
		return httperr.ErrBusiness("slot_unavailable")
	}

	f.seq++
	ap.ID = f.seq
	ap.CreatedAt = time.Now()
	if u, ok := f.users[ap.UserID]; ok {
		ap.User = u
	}
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return &ap, nil
}

func (f *fakeRepo) Update(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.appointments[ap.ID]; !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}

	// Mirror the partial unique index: an update that makes the
	// appointment active again must not collide with another active
	// appointment on the same slot.
	if domain.Status(ap.Status).OccupiesSlot() {
		for id, other := range f.appointments {
			if id == ap.ID {
				continue
			}
			if other.Date == ap.Date && other.Time == ap.Time &&
				domain.Status(other.Status).OccupiesSlot() {
				return httperr.ErrBusiness("slot_unavailable")
			}
		}
	}

	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) list(filter func(models.Appointment) bool) []models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if filter(ap) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})
	return out
}

func (f *fakeRepo) ListByOwner(_ context.Context, ownerID uint) ([]models.Appointment, error) {
	return f.list(func(ap models.Appointment) bool { return ap.UserID == ownerID }), nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]models.Appointment, error) {
	return f.list(func(models.Appointment) bool { return true }), nil
}

func (f *fakeRepo) ListByDate(_ context.Context, date string) ([]models.Appointment, error) {
	return f.list(func(ap models.Appointment) bool { return ap.Date == date }), nil
}

func (f *fakeRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.appointments)), nil
}

func (f *fakeRepo) CountByStatus(_ context.Context) ([]domain.StatusCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	counts := make(map[string]int64)
	for _, ap := range f.appointments {
		counts[ap.Status]++
	}

	var out []domain.StatusCount
	for status, n := range counts {
		out = append(out, domain.StatusCount{Status: status, Count: n})
	}
	return out, nil
}

func (f *fakeRepo) CountByService(_ context.Context) ([]domain.ServiceCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	counts := make(map[string]int64)
	for _, ap := range f.appointments {
		counts[ap.ServiceType]++
	}

	var out []domain.ServiceCount
	for svc, n := range counts {
		out = append(out, domain.ServiceCount{ServiceType: svc, Count: n})
	}
	return out, nil
}

func (f *fakeRepo) CountByDay(_ context.Context, from string) ([]domain.DayCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	counts := make(map[string]int64)
	for _, ap := range f.appointments {
		if ap.Date >= from {
			counts[ap.Date]++
		}
	}

	var out []domain.DayCount
	for date, n := range counts {
		out = append(out, domain.DayCount{Date: date, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (f *fakeRepo) CountByDate(_ context.Context, date string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, ap := range f.appointments {
		if ap.Date == date {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CountDistinctOwners(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	owners := make(map[uint]struct{})
	for _, ap := range f.appointments {
		owners[ap.UserID] = struct{}{}
	}
	return int64(len(owners)), nil
}

func (f *fakeRepo) CountUsersByRole(_ context.Context) ([]domain.RoleCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	counts := make(map[string]int64)
	for _, u := range f.users {
		counts[u.Role]++
	}

	var out []domain.RoleCount
	for role, n := range counts {
		out = append(out, domain.RoleCount{Role: role, Count: n})
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// testDispatcher drops events on the floor; the audit sink is not under
// test here.
func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}
