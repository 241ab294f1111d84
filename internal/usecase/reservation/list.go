package reservation

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

// Execute returns one page of reservations, newest first, each with its client.
func (uc *ListReservations) Execute(
	ctx context.Context,
	filter domain.Filter,
	offset int,
	limit int,
) ([]models.Reservation, int64, error) {
	return uc.repo.ListReservations(ctx, filter, offset, limit)
}

type ListClientReservations struct {
	repo domain.Repository
}

func NewListClientReservations(repo domain.Repository) *ListClientReservations {
	return &ListClientReservations{repo: repo}
}

// Execute fails with client_not_found when the client does not exist, even
// if the page would be empty anyway.
func (uc *ListClientReservations) Execute(
	ctx context.Context,
	clientID uuid.UUID,
	filter domain.Filter,
	offset int,
	limit int,
) ([]models.Reservation, int64, error) {

	if _, err := uc.repo.GetClient(ctx, clientID); err != nil {
		return nil, 0, notFound(err, httperr.CodeClientNotFound)
	}

	filter.ClientID = &clientID
	return uc.repo.ListReservations(ctx, filter, offset, limit)
}
