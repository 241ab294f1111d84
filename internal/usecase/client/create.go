package client

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/client"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
	"github.com/BruksfildServices01/autoservice-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateClientInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Age      int
}

// ======================================================
// USE CASE
// ======================================================

type CreateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	in CreateClientInput,
) (*models.Client, error) {

	email := validators.NormalizeEmail(in.Email)

	// --------------------------------------------------
	// Email must be free
	// --------------------------------------------------
	_, err := uc.repo.FindClientByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	c := &models.Client{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Age:          in.Age,
	}

	if err := uc.repo.CreateClient(ctx, c); err != nil {
		// lost the race against a concurrent insert
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionClientCreated,
		Entity:   audit.EntityClient,
		EntityID: &c.ID,
		Metadata: map[string]any{"email": c.Email},
	})

	return c, nil
}
