package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	id uuid.UUID,
) (*models.Reservation, error) {

	r, err := uc.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, notFound(err, httperr.CodeReservationNotFound)
	}

	previous := r.Status
	if err := domain.Cancel(r); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionReservationCancel,
		Entity:   audit.EntityReservation,
		EntityID: &r.ID,
		Metadata: map[string]any{"from": previous},
	})

	return r, nil
}
