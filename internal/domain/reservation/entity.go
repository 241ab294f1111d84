package reservation

import (
	"time"

	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// AssertModifiable rejects edits of a reservation whose status is past
// Confirmada. An update that moves the status to a different value is let
// through even then: status transitions are never blocked by this guard.
func AssertModifiable(current Status, next *Status) error {
	if CanBeModified(current) {
		return nil
	}
	if next != nil && *next != current {
		return nil
	}
	return httperr.ErrBusinessDetail(httperr.CodeNotModifiable, string(current))
}

func AssertDeletable(r *models.Reservation) error {
	if !CanBeCancelled(Status(r.Status)) {
		return httperr.ErrBusinessDetail(httperr.CodeNotDeletable, r.Status)
	}
	return nil
}

func Cancel(r *models.Reservation) error {
	if !CanBeCancelled(Status(r.Status)) {
		return httperr.ErrBusinessDetail(httperr.CodeNotCancellable, r.Status)
	}

	r.Status = string(StatusCancelled)
	return nil
}

// ApplyStatus sets the status. Moving into Completada without a service date
// stamps the service date with now.
func ApplyStatus(r *models.Reservation, next Status, now time.Time) {
	previous := Status(r.Status)
	r.Status = string(next)

	if next == StatusCompleted && previous != StatusCompleted && r.ServiceDate == nil {
		stamped := now
		r.ServiceDate = &stamped
	}
}
