package client

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/client"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

type GetClient struct {
	repo domain.Repository
}

func NewGetClient(repo domain.Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(
	ctx context.Context,
	id uuid.UUID,
) (*models.Client, error) {

	c, err := uc.repo.GetClient(ctx, id)
	if err != nil {
		return nil, clientNotFound(err)
	}
	return c, nil
}
