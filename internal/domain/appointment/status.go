package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmada"
	StatusCompleted Status = "completada"
	StatusCancelled Status = "cancelada"
)

// AllStatuses lists every valid state, in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// InitialStatus is the state every appointment is created in.
func InitialStatus() Status {
	return StatusPending
}

// OccupiesSlot reports whether an appointment in this state holds its
// (date, time) slot. Cancelled appointments free the slot but are retained.
func (s Status) OccupiesSlot() bool {
	return s != StatusCancelled
}
