package httperr

import "errors"

// Business error codes returned by the use cases.
const (
	CodeClientNotFound      = "client_not_found"
	CodeReservationNotFound = "reservation_not_found"
	CodeEmailTaken          = "email_taken"
	CodeNotModifiable       = "reservation_not_modifiable"
	CodeNotCancellable      = "reservation_not_cancellable"
	CodeNotDeletable        = "reservation_not_deletable"
	CodeTooManyPending      = "too_many_pending_reservations"
	CodeInvalidCredentials  = "invalid_credentials"
	CodeUnsupportedMedia    = "unsupported_media_type"
	CodeFileTooLarge        = "file_too_large"
	CodeStorageUnavailable  = "storage_unavailable"
)

// BusinessError carries a machine code and, for some codes, a detail such as the
// current reservation status.
type BusinessError struct {
	Code   string
	Detail string
}

func (e BusinessError) Error() string {
	if e.Detail != "" {
		return e.Code + ": " + e.Detail
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessDetail(code, detail string) error {
	return BusinessError{Code: code, Detail: detail}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}
