package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
)

type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReservation) Execute(
	ctx context.Context,
	id uuid.UUID,
) error {

	r, err := uc.repo.GetReservation(ctx, id)
	if err != nil {
		return notFound(err, httperr.CodeReservationNotFound)
	}

	if err := domain.AssertDeletable(r); err != nil {
		return err
	}

	if err := uc.repo.DeleteReservation(ctx, id); err != nil {
		return notFound(err, httperr.CodeReservationNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionReservationDeleted,
		Entity:   audit.EntityReservation,
		EntityID: &id,
		Metadata: map[string]any{"status": r.Status},
	})

	return nil
}
