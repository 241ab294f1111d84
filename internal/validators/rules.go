package validators

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/timezone"
)

var phonePattern = regexp.MustCompile(`^[+]?[0-9\s\-()]{10,15}$`)

var ErrInvalidDate = errors.New("invalid date")

// now is swapped in tests.
var now = time.Now

var registerOnce sync.Once

// Register installs the custom rules on gin's validator engine.
func Register() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			register(v)
		}
	})
}

func register(v *validator.Validate) {
	v.RegisterTagNameFunc(fieldName)

	// same acceptance as uuid.Parse, which path and query ids go through
	_ = v.RegisterValidation("uuid", func(fl validator.FieldLevel) bool {
		_, err := uuid.Parse(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("service", func(fl validator.FieldLevel) bool {
		return reservation.Service(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		return reservation.Status(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseServiceDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("future", func(fl validator.FieldLevel) bool {
		t, err := ParseServiceDate(fl.Field().String())
		if err != nil {
			return true // reported by isodate
		}
		return t.After(now())
	})
}

// fieldName reports errors under the wire name of the field.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseServiceDate accepts RFC 3339 timestamps, zone-less timestamps (read in
// the service timezone) and plain dates (midnight UTC).
func ParseServiceDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, timezone.Default()); err == nil {
			return t, nil
		}
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}

	return time.Time{}, ErrInvalidDate
}
