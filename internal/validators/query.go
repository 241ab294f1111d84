package validators

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/httpresp"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Page struct {
	Page  int
	Limit int
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePagination reads page and limit, defaulting to 1 and 10.
func ParsePagination(q url.Values) (Page, []httpresp.FieldError) {
	p := Page{Page: DefaultPage, Limit: DefaultLimit}
	var errs []httpresp.FieldError

	if raw := strings.TrimSpace(q.Get("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs = append(errs, httpresp.FieldError{Field: "page", Message: Message("page"), Value: raw})
		} else {
			p.Page = n
		}
	}

	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxLimit {
			errs = append(errs, httpresp.FieldError{Field: "limit", Message: Message("limit"), Value: raw})
		} else {
			p.Limit = n
		}
	}

	return p, errs
}

// ParseReservationFilter reads status, service and, when withClient is set,
// clientId from the query string.
func ParseReservationFilter(q url.Values, withClient bool) (reservation.Filter, []httpresp.FieldError) {
	var f reservation.Filter
	var errs []httpresp.FieldError

	if raw := q.Get("status"); raw != "" {
		if s := reservation.Status(raw); s.Valid() {
			f.Status = s
		} else {
			errs = append(errs, httpresp.FieldError{Field: "status", Message: Message("status"), Value: raw})
		}
	}

	if raw := q.Get("service"); raw != "" {
		if s := reservation.Service(raw); s.Valid() {
			f.Service = s
		} else {
			errs = append(errs, httpresp.FieldError{Field: "service", Message: Message("service"), Value: raw})
		}
	}

	if withClient {
		if raw := q.Get("clientId"); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				f.ClientID = &id
			} else {
				errs = append(errs, httpresp.FieldError{Field: "clientId", Message: Message("clientId"), Value: raw})
			}
		}
	}

	return f, errs
}
