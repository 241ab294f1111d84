package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/dto"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/httpresp"
	reservationuc "github.com/BruksfildServices01/autoservice-booking/internal/usecase/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	list       *reservationuc.ListReservations
	listClient *reservationuc.ListClientReservations
	get        *reservationuc.GetReservation
	create     *reservationuc.CreateReservation
	update     *reservationuc.UpdateReservation
	delete     *reservationuc.DeleteReservation
	cancel     *reservationuc.CancelReservation
	stats      *reservationuc.ReservationStats
}

type ReservationUseCases struct {
	List       *reservationuc.ListReservations
	ListClient *reservationuc.ListClientReservations
	Get        *reservationuc.GetReservation
	Create     *reservationuc.CreateReservation
	Update     *reservationuc.UpdateReservation
	Delete     *reservationuc.DeleteReservation
	Cancel     *reservationuc.CancelReservation
	Stats      *reservationuc.ReservationStats
}

func NewReservationHandler(uc ReservationUseCases) *ReservationHandler {
	return &ReservationHandler{
		list:       uc.List,
		listClient: uc.ListClient,
		get:        uc.Get,
		create:     uc.Create,
		update:     uc.Update,
		delete:     uc.Delete,
		cancel:     uc.Cancel,
		stats:      uc.Stats,
	}
}

// ======================================================
// HELPERS
// ======================================================

// parseOptionalDate converts an already validated serviceDate.
func parseOptionalDate(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := validators.ParseServiceDate(*raw)
	if err != nil {
		return nil
	}
	return &t
}

func optionalStatus(raw *string) *domain.Status {
	if raw == nil {
		return nil
	}
	s := domain.Status(*raw)
	return &s
}

// ======================================================
// LIST
// ======================================================

// List godoc
//
//	@Summary	List reservations
//	@Tags		reservations
//	@Produce	json
//	@Param		page		query		int		false	"Page (>= 1)"		default(1)
//	@Param		limit		query		int		false	"Page size (1-100)"	default(10)
//	@Param		status		query		string	false	"Status filter"
//	@Param		service		query		string	false	"Service filter"
//	@Param		clientId	query		string	false	"Client filter"
//	@Success	200			{object}	httpresp.Envelope{data=[]dto.ReservationDTO}
//	@Failure	400			{object}	httpresp.Envelope
//	@Router		/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	q := c.Request.URL.Query()

	page, errs := validators.ParsePagination(q)
	filter, filterErrs := validators.ParseReservationFilter(q, true)
	if errs = append(errs, filterErrs...); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	list, total, err := h.list.Execute(c.Request.Context(), filter, page.Offset(), page.Limit)
	if err != nil {
		writeError(c, err, "Error al obtener reservas")
		return
	}

	httpresp.List(c, dto.ToReservationDTOs(list), httpresp.NewPagination(page.Page, page.Limit, total))
}

// ListByClient godoc
//
//	@Summary	List the reservations of one client
//	@Tags		reservations
//	@Produce	json
//	@Param		clientId	path		string	true	"Client ID"
//	@Param		page		query		int		false	"Page (>= 1)"		default(1)
//	@Param		limit		query		int		false	"Page size (1-100)"	default(10)
//	@Param		status		query		string	false	"Status filter"
//	@Param		service		query		string	false	"Service filter"
//	@Success	200			{object}	httpresp.Envelope{data=[]dto.ReservationDTO}
//	@Failure	400			{object}	httpresp.Envelope
//	@Failure	404			{object}	httpresp.Envelope
//	@Router		/reservations/client/{clientId} [get]
func (h *ReservationHandler) ListByClient(c *gin.Context) {
	clientID, ok := parseUUIDParam(c, "clientId", MsgInvalidClientID)
	if !ok {
		return
	}

	q := c.Request.URL.Query()

	page, errs := validators.ParsePagination(q)
	filter, filterErrs := validators.ParseReservationFilter(q, false)
	if errs = append(errs, filterErrs...); len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	list, total, err := h.listClient.Execute(c.Request.Context(), clientID, filter, page.Offset(), page.Limit)
	if err != nil {
		writeError(c, err, "Error al obtener reservas del cliente")
		return
	}

	httpresp.List(c, dto.ToReservationDTOs(list), httpresp.NewPagination(page.Page, page.Limit, total))
}

// ======================================================
// GET
// ======================================================

// Get godoc
//
//	@Summary	Get a reservation
//	@Tags		reservations
//	@Produce	json
//	@Param		id	path		string	true	"Reservation ID"
//	@Success	200	{object}	httpresp.Envelope{data=dto.ReservationDTO}
//	@Failure	400	{object}	httpresp.Envelope
//	@Failure	404	{object}	httpresp.Envelope
//	@Router		/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", MsgInvalidReservation)
	if !ok {
		return
	}

	r, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Error al obtener reserva")
		return
	}

	httpresp.OK(c, dto.ToReservationDTO(r))
}

// ======================================================
// CREATE
// ======================================================

// Create godoc
//
//	@Summary	Create a reservation
//	@Tags		reservations
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.CreateReservationRequest	true	"Reservation"
//	@Success	201		{object}	httpresp.Envelope{data=dto.ReservationDTO}
//	@Failure	400		{object}	httpresp.Envelope
//	@Failure	404		{object}	httpresp.Envelope
//	@Router		/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req dto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	clientID, _ := uuid.Parse(req.ClientID)

	in := reservationuc.CreateReservationInput{
		ClientID:    clientID,
		Vehicle:     req.Vehicle,
		Service:     domain.Service(req.Service),
		Status:      optionalStatus(req.Status),
		ServiceDate: parseOptionalDate(req.ServiceDate),
	}
	if req.Notes != nil {
		in.Notes = *req.Notes
	}

	r, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "Error al crear reserva")
		return
	}

	httpresp.Created(c, "Reserva creada exitosamente", dto.ToReservationDTO(r))
}

// ======================================================
// UPDATE
// ======================================================

// Update godoc
//
//	@Summary		Update a reservation
//	@Description	Only Pendiente and Confirmada reservations can be edited, unless the request changes the status.
//	@Tags			reservations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Reservation ID"
//	@Param			body	body		dto.UpdateReservationRequest	true	"Fields to change"
//	@Success		200		{object}	httpresp.Envelope{data=dto.ReservationDTO}
//	@Failure		400		{object}	httpresp.Envelope
//	@Failure		404		{object}	httpresp.Envelope
//	@Router			/reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", MsgInvalidReservation)
	if !ok {
		return
	}

	var req dto.UpdateReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	in := reservationuc.UpdateReservationInput{
		Vehicle:     req.Vehicle,
		Status:      optionalStatus(req.Status),
		ServiceDate: parseOptionalDate(req.ServiceDate),
		Notes:       req.Notes,
	}
	if req.ClientID != nil {
		clientID, _ := uuid.Parse(*req.ClientID)
		in.ClientID = &clientID
	}
	if req.Service != nil {
		s := domain.Service(*req.Service)
		in.Service = &s
	}

	r, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err, "Error al actualizar reserva")
		return
	}

	httpresp.OKMessage(c, "Reserva actualizada exitosamente", dto.ToReservationDTO(r))
}

// ======================================================
// CANCEL / DELETE
// ======================================================

// Cancel godoc
//
//	@Summary	Cancel a reservation
//	@Tags		reservations
//	@Produce	json
//	@Param		id	path		string	true	"Reservation ID"
//	@Success	200	{object}	httpresp.Envelope{data=dto.ReservationDTO}
//	@Failure	400	{object}	httpresp.Envelope
//	@Failure	404	{object}	httpresp.Envelope
//	@Router		/reservations/{id}/cancel [patch]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", MsgInvalidReservation)
	if !ok {
		return
	}

	r, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Error al cancelar reserva")
		return
	}

	httpresp.OKMessage(c, "Reserva cancelada exitosamente", dto.ToReservationDTO(r))
}

// Delete godoc
//
//	@Summary	Delete a reservation
//	@Tags		reservations
//	@Produce	json
//	@Param		id	path		string	true	"Reservation ID"
//	@Success	200	{object}	httpresp.Envelope
//	@Failure	400	{object}	httpresp.Envelope
//	@Failure	404	{object}	httpresp.Envelope
//	@Router		/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", MsgInvalidReservation)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		writeError(c, err, "Error al eliminar reserva")
		return
	}

	httpresp.OKMessage(c, "Reserva eliminada exitosamente", nil)
}

// ======================================================
// STATS
// ======================================================

// Stats godoc
//
//	@Summary	Reservation statistics
//	@Tags		reservations
//	@Produce	json
//	@Success	200	{object}	httpresp.Envelope{data=dto.ReservationStatsResponse}
//	@Router		/reservations/stats [get]
func (h *ReservationHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err, "Error al obtener estadísticas de reservas")
		return
	}

	httpresp.OK(c, stats)
}
