package client

import (
	"context"

	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/client"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

// Execute returns one page of clients, newest first, and the overall count.
func (uc *ListClients) Execute(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Client, int64, error) {
	return uc.repo.ListClients(ctx, offset, limit)
}
