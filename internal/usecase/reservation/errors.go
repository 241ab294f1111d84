package reservation

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
)

func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
