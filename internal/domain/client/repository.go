package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

// Repository returns gorm.ErrRecordNotFound for missing rows.
type Repository interface {
	ListClients(
		ctx context.Context,
		offset int,
		limit int,
	) ([]models.Client, int64, error)

	GetClient(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Client, error)

	// FindClientByEmail expects an already normalized email.
	FindClientByEmail(
		ctx context.Context,
		email string,
	) (*models.Client, error)

	CreateClient(
		ctx context.Context,
		c *models.Client,
	) error

	UpdateClient(
		ctx context.Context,
		c *models.Client,
	) error

	// DeleteClient removes the client together with its reservations.
	DeleteClient(
		ctx context.Context,
		id uuid.UUID,
	) error

	ListReservationsByClient(
		ctx context.Context,
		clientID uuid.UUID,
	) ([]models.Reservation, error)
}
