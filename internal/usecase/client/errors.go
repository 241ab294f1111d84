package client

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
)

func clientNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(httperr.CodeClientNotFound)
	}
	return err
}
