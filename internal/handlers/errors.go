package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/media"
	"github.com/BruksfildServices01/autoservice-booking/internal/slogx"
	"github.com/BruksfildServices01/autoservice-booking/internal/validators"
)

const (
	MsgClientNotFound      = "Cliente no encontrado"
	MsgReservationNotFound = "Reserva no encontrada"
	MsgInvalidClientID     = "ID de cliente inválido"
	MsgInvalidReservation  = "ID de reserva inválido"
	MsgEmailTaken          = "Ya existe un cliente con este email"
	MsgEmailTakenByOther   = "Ya existe otro cliente con este email"
	MsgInvalidCredentials  = "Credenciales inválidas"
	MsgStorageUnavailable  = "El almacenamiento de fotos no está configurado"
	MsgServiceUnavailable  = "Servicio no disponible temporalmente"
)

// businessResponse maps a use case error code to its HTTP status and message.
func businessResponse(be httperr.BusinessError) (int, string) {
	switch be.Code {
	case httperr.CodeClientNotFound:
		return http.StatusNotFound, MsgClientNotFound
	case httperr.CodeReservationNotFound:
		return http.StatusNotFound, MsgReservationNotFound
	case httperr.CodeEmailTaken:
		return http.StatusConflict, MsgEmailTaken
	case httperr.CodeNotModifiable:
		return http.StatusBadRequest, "No se puede modificar una reserva en estado: " + be.Detail
	case httperr.CodeNotCancellable:
		return http.StatusBadRequest, "No se puede cancelar una reserva en estado: " + be.Detail
	case httperr.CodeNotDeletable:
		return http.StatusBadRequest, "No se puede eliminar una reserva en estado: " + be.Detail
	case httperr.CodeTooManyPending:
		return http.StatusBadRequest, fmt.Sprintf("El cliente no puede tener más de %s reservas pendientes", be.Detail)
	case httperr.CodeInvalidCredentials:
		return http.StatusUnauthorized, MsgInvalidCredentials
	case httperr.CodeUnsupportedMedia:
		return http.StatusBadRequest, "Tipo de archivo no permitido. Tipos permitidos: " + strings.Join(media.AllowedTypes, ", ")
	case httperr.CodeFileTooLarge:
		return http.StatusBadRequest, fmt.Sprintf("El archivo es demasiado grande. Tamaño máximo: %dMB", media.MaxUploadSize>>20)
	case httperr.CodeStorageUnavailable:
		return http.StatusServiceUnavailable, MsgStorageUnavailable
	}
	return http.StatusBadRequest, be.Code
}

// writeError answers with the business mapping when err carries a code, and
// otherwise logs err and answers with the generic fallback message.
func writeError(c *gin.Context, err error, fallback string) {
	if be, ok := httperr.AsBusiness(err); ok {
		status, msg := businessResponse(be)
		httperr.Write(c, status, msg)
		return
	}

	slogx.FromContext(c.Request.Context()).Error(fallback, "err", err)

	if httperr.IsUnavailable(err) {
		httperr.Unavailable(c, MsgServiceUnavailable)
		return
	}
	httperr.Internal(c, fallback)
}

func parseUUIDParam(c *gin.Context, name, invalidMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, invalidMsg)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	body, err := c.GetRawData()
	if err != nil {
		httperr.Validation(c, validators.Translate(err))
		return false
	}
	if errs := validators.BindJSON(body, dst); len(errs) > 0 {
		httperr.Validation(c, errs)
		return false
	}
	return true
}
