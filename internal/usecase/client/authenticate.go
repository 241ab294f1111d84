package client

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/client"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
	"github.com/BruksfildServices01/autoservice-booking/internal/validators"
)

type Authenticate struct {
	repo domain.Repository
}

func NewAuthenticate(repo domain.Repository) *Authenticate {
	return &Authenticate{repo: repo}
}

// Execute checks the credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (uc *Authenticate) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.Client, error) {

	c, err := uc.repo.FindClientByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
		return nil, err
	}

	if !checkPassword(c.PasswordHash, password) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	return c, nil
}
