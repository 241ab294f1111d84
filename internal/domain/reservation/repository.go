package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

// Filter narrows reservation listings. Zero values mean "any".
type Filter struct {
	ClientID *uuid.UUID
	Status   Status
	Service  Service
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type ServiceCount struct {
	Service string `json:"service"`
	Count   int64  `json:"count"`
}

type MonthCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// Repository returns gorm.ErrRecordNotFound for missing rows.
type Repository interface {
	// -------- Client --------
	GetClient(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Client, error)

	// -------- Reservation (read) --------
	ListReservations(
		ctx context.Context,
		filter Filter,
		offset int,
		limit int,
	) ([]models.Reservation, int64, error)

	CountReservations(
		ctx context.Context,
		filter Filter,
	) (int64, error)

	GetReservation(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Reservation, error)

	// -------- Reservation (write) --------
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	DeleteReservation(
		ctx context.Context,
		id uuid.UUID,
	) error

	// -------- Stats --------
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByService(ctx context.Context) ([]ServiceCount, error)
	CountByMonth(ctx context.Context, limit int) ([]MonthCount, error)

	// -------- Photos --------
	CreatePhoto(
		ctx context.Context,
		p *models.ReservationPhoto,
	) error

	ListPhotos(
		ctx context.Context,
		reservationID uuid.UUID,
	) ([]models.ReservationPhoto, error)
}
