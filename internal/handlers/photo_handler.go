package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/httpresp"
	"github.com/BruksfildServices01/autoservice-booking/internal/media"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
	reservationuc "github.com/BruksfildServices01/autoservice-booking/internal/usecase/reservation"
)

const (
	photoField       = "photo"
	MsgPhotoRequired = "Debe adjuntar una foto en el campo 'photo'"
)

// multipart framing on top of the file itself
const multipartOverhead = 1 << 20

type PhotoHandler struct {
	attach *reservationuc.AttachPhoto
	list   *reservationuc.ListPhotos
}

func NewPhotoHandler(
	attach *reservationuc.AttachPhoto,
	list *reservationuc.ListPhotos,
) *PhotoHandler {
	return &PhotoHandler{attach: attach, list: list}
}

// Upload godoc
//
//	@Summary		Attach a vehicle photo
//	@Description	JPEG, PNG or WebP up to 5MB. Stored as WebP.
//	@Tags			reservations
//	@Accept			mpfd
//	@Produce		json
//	@Param			id		path		string	true	"Reservation ID"
//	@Param			photo	formData	file	true	"Photo"
//	@Success		201		{object}	httpresp.Envelope{data=models.ReservationPhoto}
//	@Failure		400		{object}	httpresp.Envelope
//	@Failure		404		{object}	httpresp.Envelope
//	@Failure		503		{object}	httpresp.Envelope
//	@Router			/reservations/{id}/photos [post]
func (h *PhotoHandler) Upload(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", MsgInvalidReservation)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxUploadSize+multipartOverhead)

	fh, err := c.FormFile(photoField)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(c, httperr.ErrBusiness(httperr.CodeFileTooLarge), "")
			return
		}
		httperr.Validation(c, []httpresp.FieldError{{Field: photoField, Message: MsgPhotoRequired}})
		return
	}
	if fh.Size > media.MaxUploadSize {
		writeError(c, httperr.ErrBusiness(httperr.CodeFileTooLarge), "")
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, err, "Error al leer la foto")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, media.MaxUploadSize+1))
	if err != nil {
		writeError(c, err, "Error al leer la foto")
		return
	}

	photo, err := h.attach.Execute(c.Request.Context(), id, data)
	if err != nil {
		writeError(c, err, "Error al guardar la foto")
		return
	}

	httpresp.Created(c, "Foto agregada exitosamente", photo)
}

// List godoc
//
//	@Summary	List vehicle photos of a reservation
//	@Tags		reservations
//	@Produce	json
//	@Param		id	path		string	true	"Reservation ID"
//	@Success	200	{object}	httpresp.Envelope{data=[]models.ReservationPhoto}
//	@Failure	400	{object}	httpresp.Envelope
//	@Failure	404	{object}	httpresp.Envelope
//	@Router		/reservations/{id}/photos [get]
func (h *PhotoHandler) List(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", MsgInvalidReservation)
	if !ok {
		return
	}

	photos, err := h.list.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Error al obtener fotos")
		return
	}

	if photos == nil {
		photos = []models.ReservationPhoto{}
	}
	httpresp.OK(c, photos)
}
