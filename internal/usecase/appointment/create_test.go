package appointment

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/SalonVioleta/nail-scheduler/internal/domain/appointment"
	"github.com/SalonVioleta/nail-scheduler/internal/httperr"
)

func validInput(owner uint) CreateAppointmentInput {
	return CreateAppointmentInput{
		OwnerID:     owner,
		Date:        "2025-06-01",
		Time:        "10:00",
		ServiceType: "manicura",
		Notes:       "uñas francesas",
	}
}

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), validInput(7))
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, uint(7), ap.UserID)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, "2025-06-01", ap.Date)
	assert.Equal(t, "10:00", ap.Time)
}

func TestCreateAppointmentValidation(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	tests := []struct {
		name    string
		mutate  func(*CreateAppointmentInput)
		wantErr string
	}{
		{"bad date", func(in *CreateAppointmentInput) { in.Date = "01/06/2025" }, "invalid_date"},
		{"empty date", func(in *CreateAppointmentInput) { in.Date = "" }, "invalid_date"},
		{"bad time", func(in *CreateAppointmentInput) { in.Time = "10am" }, "invalid_time"},
		{"empty time", func(in *CreateAppointmentInput) { in.Time = "" }, "invalid_time"},
		{"empty service", func(in *CreateAppointmentInput) { in.ServiceType = "  " }, "missing_service_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(7)
			tt.mutate(&in)
			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), validInput(7))
	require.NoError(t, err)

	// Same slot, different user.
	_, err = uc.Execute(context.Background(), validInput(8))
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"), "got %v", err)

	// A different time on the same day is fine.
	in := validInput(8)
	in.Time = "11:00"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateAppointmentAfterCancellationFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateAppointment(repo, testDispatcher())
	cancelUC := NewCancelAppointment(repo, testDispatcher(), "UTC")

	ap, err := createUC.Execute(context.Background(), validInput(7))
	require.NoError(t, err)

	_, err = cancelUC.Execute(context.Background(), ap.ID, 7)
	require.NoError(t, err)

	// Cancelled appointments free their slot.
	_, err = createUC.Execute(context.Background(), validInput(8))
	assert.NoError(t, err)
}

func TestCreateAppointmentConcurrentSameSlot(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validInput(uint(i+1)))
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case httperr.IsBusiness(err, "slot_unavailable"):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "exactly one create must win the slot")
	assert.Equal(t, 1, conflicts, "the loser must get the conflict outcome")
}
