package reservation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
	"github.com/BruksfildServices01/autoservice-booking/internal/timezone"
)

// UpdateReservationInput carries only the fields the caller sent.
type UpdateReservationInput struct {
	ClientID    *uuid.UUID
	Vehicle     *string
	Service     *domain.Service
	Status      *domain.Status
	ServiceDate *time.Time
	Notes       *string
}

type UpdateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (uc *UpdateReservation) Execute(
	ctx context.Context,
	id uuid.UUID,
	in UpdateReservationInput,
) (*models.Reservation, error) {

	r, err := uc.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, notFound(err, httperr.CodeReservationNotFound)
	}

	previous := domain.Status(r.Status)
	if err := domain.AssertModifiable(previous, in.Status); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Re-assignment to another client
	// --------------------------------------------------
	if in.ClientID != nil && *in.ClientID != r.ClientID {
		client, err := uc.repo.GetClient(ctx, *in.ClientID)
		if err != nil {
			return nil, notFound(err, httperr.CodeClientNotFound)
		}
		r.ClientID = client.ID
		r.Client = client
	}

	if in.Vehicle != nil {
		r.Vehicle = strings.TrimSpace(*in.Vehicle)
	}
	if in.Service != nil {
		r.Service = string(*in.Service)
	}
	if in.Notes != nil {
		r.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.ServiceDate != nil {
		d := *in.ServiceDate
		r.ServiceDate = &d
	}
	if in.Status != nil {
		domain.ApplyStatus(r, *in.Status, uc.now())
	}

	if err := uc.repo.UpdateReservation(ctx, r); err != nil {
		return nil, err
	}

	meta := map[string]any{}
	if r.Status != string(previous) {
		meta["from"] = string(previous)
		meta["to"] = r.Status
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionReservationUpdated,
		Entity:   audit.EntityReservation,
		EntityID: &r.ID,
		Metadata: meta,
	})

	return r, nil
}
