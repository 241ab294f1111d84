package httperr

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BruksfildServices01/autoservice-booking/internal/httpresp"
)

const MsgValidation = "Errores de validación"

const pgUniqueViolation = "23505"

func Write(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, httpresp.Envelope{
		Success: false,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func Conflict(c *gin.Context, message string) {
	Write(c, http.StatusConflict, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func Unavailable(c *gin.Context, message string) {
	Write(c, http.StatusServiceUnavailable, message)
}

// Validation writes every field error at once.
func Validation(c *gin.Context, errs []httpresp.FieldError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, httpresp.Envelope{
		Success: false,
		Message: MsgValidation,
		Errors:  errs,
	})
}

// IsUniqueViolation reports whether the store rejected a write on a unique index.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}

// IsUnavailable reports whether err means the database could not be reached,
// as opposed to a query that failed.
func IsUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}
