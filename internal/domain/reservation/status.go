package reservation

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending    Status = "Pendiente"
	StatusConfirmed  Status = "Confirmada"
	StatusInProgress Status = "En proceso"
	StatusCompleted  Status = "Completada"
	StatusCancelled  Status = "Cancelada"
)

var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Guards
// ===============================

// CanBeModified reports whether the reservation fields may still be edited.
func CanBeModified(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed:
		return true
	case StatusInProgress, StatusCompleted, StatusCancelled:
		return false
	}
	return false
}

// CanBeCancelled reports whether the reservation may be cancelled or deleted.
func CanBeCancelled(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed:
		return true
	case StatusInProgress, StatusCompleted, StatusCancelled:
		return false
	}
	return false
}
