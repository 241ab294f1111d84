package reservation

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
	"github.com/BruksfildServices01/autoservice-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	ClientID    uuid.UUID
	Vehicle     string
	Service     domain.Service
	Status      *domain.Status // Pendiente when nil
	ServiceDate *time.Time
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	maxPending int
	now        func() time.Time
}

// NewCreateReservation builds the use case. maxPending <= 0 disables the cap
// on pending reservations per client.
func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	maxPending int,
) *CreateReservation {
	return &CreateReservation{
		repo:       repo,
		audit:      audit,
		maxPending: maxPending,
		now:        timezone.Now,
	}
}

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// Client must exist
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, notFound(err, httperr.CodeClientNotFound)
	}

	// --------------------------------------------------
	// Pending cap
	// --------------------------------------------------
	if uc.maxPending > 0 {
		pending, err := uc.repo.CountReservations(ctx, domain.Filter{
			ClientID: &in.ClientID,
			Status:   domain.StatusPending,
		})
		if err != nil {
			return nil, err
		}
		if pending >= int64(uc.maxPending) {
			return nil, httperr.ErrBusinessDetail(
				httperr.CodeTooManyPending,
				strconv.Itoa(uc.maxPending),
			)
		}
	}

	status := domain.InitialStatus()
	if in.Status != nil {
		status = *in.Status
	}

	r := &models.Reservation{
		ClientID:    client.ID,
		Vehicle:     strings.TrimSpace(in.Vehicle),
		Service:     string(in.Service),
		ServiceDate: in.ServiceDate,
		Notes:       strings.TrimSpace(in.Notes),
	}
	domain.ApplyStatus(r, status, uc.now())

	if err := uc.repo.CreateReservation(ctx, r); err != nil {
		return nil, err
	}
	r.Client = client

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionReservationCreated,
		Entity:   audit.EntityReservation,
		EntityID: &r.ID,
		Metadata: map[string]any{
			"clientId": r.ClientID,
			"service":  r.Service,
			"status":   r.Status,
		},
	})

	return r, nil
}
