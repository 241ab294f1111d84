package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/client"
)

type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the client and every reservation it owns.
func (uc *DeleteClient) Execute(
	ctx context.Context,
	id uuid.UUID,
) error {

	if _, err := uc.repo.GetClient(ctx, id); err != nil {
		return clientNotFound(err)
	}

	if err := uc.repo.DeleteClient(ctx, id); err != nil {
		return clientNotFound(err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionClientDeleted,
		Entity:   audit.EntityClient,
		EntityID: &id,
	})

	return nil
}
