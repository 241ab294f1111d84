package client

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/client"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

type ClientStats struct {
	repo domain.Repository
}

func NewClientStats(repo domain.Repository) *ClientStats {
	return &ClientStats{repo: repo}
}

func (uc *ClientStats) Execute(
	ctx context.Context,
	id uuid.UUID,
) (*models.Client, domain.Stats, error) {

	c, err := uc.repo.GetClient(ctx, id)
	if err != nil {
		return nil, domain.Stats{}, clientNotFound(err)
	}

	list, err := uc.repo.ListReservationsByClient(ctx, id)
	if err != nil {
		return nil, domain.Stats{}, err
	}

	return c, domain.BuildStats(list), nil
}
