package client

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/client"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
	"github.com/BruksfildServices01/autoservice-booking/internal/validators"
)

// UpdateClientInput carries only the fields the caller sent.
type UpdateClientInput struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
	Age      *int
}

type UpdateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	id uuid.UUID,
	in UpdateClientInput,
) (*models.Client, error) {

	c, err := uc.repo.GetClient(ctx, id)
	if err != nil {
		return nil, clientNotFound(err)
	}

	var changed []string

	if in.Email != nil {
		email := validators.NormalizeEmail(*in.Email)
		if email != c.Email {
			other, err := uc.repo.FindClientByEmail(ctx, email)
			switch {
			case err == nil && other.ID != c.ID:
				return nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
			case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
				return nil, err
			}
			c.Email = email
			changed = append(changed, "email")
		}
	}

	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
		changed = append(changed, "name")
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
		changed = append(changed, "phone")
	}
	if in.Age != nil {
		c.Age = *in.Age
		changed = append(changed, "age")
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		c.PasswordHash = hash
		changed = append(changed, "password")
	}

	if err := uc.repo.UpdateClient(ctx, c); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionClientUpdated,
		Entity:   audit.EntityClient,
		EntityID: &c.ID,
		Metadata: map[string]any{"fields": changed},
	})

	return c, nil
}
