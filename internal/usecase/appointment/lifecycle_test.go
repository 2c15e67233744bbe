package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/SalonVioleta/nail-scheduler/internal/domain/appointment"
	"github.com/SalonVioleta/nail-scheduler/internal/httperr"
	"github.com/SalonVioleta/nail-scheduler/internal/models"
)

func TestGetAvailabilityValidation(t *testing.T) {
	uc := NewGetAvailability(newFakeRepo())

	_, err := uc.Execute(context.Background(), "junio 1", "10:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"), "got %v", err)

	_, err = uc.Execute(context.Background(), "2025-06-01", "10")
	assert.True(t, httperr.IsBusiness(err, "invalid_time"), "got %v", err)
}

// Full booking flow: a client books, staff confirms, the client cancels,
// and the slot opens up again.
func TestAppointmentLifecycle(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(models.User{ID: 7, Name: "Ana", Email: "ana@example.com", Role: models.RoleUser})

	createUC := NewCreateAppointment(repo, testDispatcher())
	cancelUC := NewCancelAppointment(repo, testDispatcher(), "UTC")
	statusUC := NewUpdateStatus(repo, testDispatcher(), "UTC")
	listUC := NewListAppointments(repo, "UTC")
	availabilityUC := NewGetAvailability(repo)

	ctx := context.Background()

	// Ana books 2025-06-01 10:00.
	ap, err := createUC.Execute(ctx, validInput(7))
	require.NoError(t, err)

	available, err := availabilityUC.Execute(ctx, "2025-06-01", "10:00")
	require.NoError(t, err)
	assert.False(t, available, "booked slot must be unavailable")

	// The attendant sees it pending, with the owner joined on.
	all, err := listUC.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, string(domain.StatusPending), all[0].Status)
	assert.Equal(t, "Ana", all[0].UserName)
	assert.Equal(t, "ana@example.com", all[0].UserEmail)

	// The attendant confirms.
	_, err = statusUC.Execute(ctx, ap.ID, 2, string(domain.StatusConfirmed))
	require.NoError(t, err)

	// Ana cancels her confirmed appointment.
	_, err = cancelUC.Execute(ctx, ap.ID, 7)
	require.NoError(t, err)

	available, err = availabilityUC.Execute(ctx, "2025-06-01", "10:00")
	require.NoError(t, err)
	assert.True(t, available, "cancelled slot must be available again")

	// The record is retained and still visible to its owner.
	own, err := listUC.ByOwner(ctx, 7)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, string(domain.StatusCancelled), own[0].Status)
}

func TestListOrdering(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateAppointment(repo, testDispatcher())
	listUC := NewListAppointments(repo, "UTC")

	slots := []struct{ date, time string }{
		{"2025-06-01", "10:00"},
		{"2025-06-02", "09:00"},
		{"2025-06-01", "15:00"},
	}
	for _, s := range slots {
		in := validInput(7)
		in.Date = s.date
		in.Time = s.time
		_, err := createUC.Execute(context.Background(), in)
		require.NoError(t, err)
	}

	own, err := listUC.ByOwner(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, own, 3)

	// Date desc, then time desc.
	assert.Equal(t, "2025-06-02", own[0].Date)
	assert.Equal(t, "2025-06-01", own[1].Date)
	assert.Equal(t, "15:00", own[1].Time)
	assert.Equal(t, "10:00", own[2].Time)
}

func TestListTodayOrdering(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateAppointment(repo, testDispatcher())
	listUC := NewListAppointments(repo, "UTC")

	today := time.Now().UTC().Format("2006-01-02")
	for _, hour := range []string{"09:00", "14:00", "11:00"} {
		in := validInput(7)
		in.Date = today
		in.Time = hour
		_, err := createUC.Execute(context.Background(), in)
		require.NoError(t, err)
	}

	aps, err := listUC.Today(context.Background())
	require.NoError(t, err)
	require.Len(t, aps, 3)

	// Same time desc ordering as the full listings.
	assert.Equal(t, "14:00", aps[0].Time)
	assert.Equal(t, "11:00", aps[1].Time)
	assert.Equal(t, "09:00", aps[2].Time)
}
