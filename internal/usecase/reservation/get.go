package reservation

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

func (uc *GetReservation) Execute(
	ctx context.Context,
	id uuid.UUID,
) (*models.Reservation, error) {

	r, err := uc.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, notFound(err, httperr.CodeReservationNotFound)
	}
	return r, nil
}
