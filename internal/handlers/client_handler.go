package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoservice-booking/internal/dto"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/httpresp"
	clientuc "github.com/BruksfildServices01/autoservice-booking/internal/usecase/client"
	"github.com/BruksfildServices01/autoservice-booking/internal/validators"
)

type ClientHandler struct {
	list   *clientuc.ListClients
	get    *clientuc.GetClient
	create *clientuc.CreateClient
	update *clientuc.UpdateClient
	delete *clientuc.DeleteClient
	stats  *clientuc.ClientStats

	// checkEmailDomain is nil when the DNS check is disabled
	checkEmailDomain func(ctx context.Context, email string) bool
}

type ClientUseCases struct {
	List   *clientuc.ListClients
	Get    *clientuc.GetClient
	Create *clientuc.CreateClient
	Update *clientuc.UpdateClient
	Delete *clientuc.DeleteClient
	Stats  *clientuc.ClientStats
}

func NewClientHandler(
	uc ClientUseCases,
	checkEmailDomain func(ctx context.Context, email string) bool,
) *ClientHandler {
	return &ClientHandler{
		list:             uc.List,
		get:              uc.Get,
		create:           uc.Create,
		update:           uc.Update,
		delete:           uc.Delete,
		stats:            uc.Stats,
		checkEmailDomain: checkEmailDomain,
	}
}

func (h *ClientHandler) emailDomainOK(c *gin.Context, email string) bool {
	if h.checkEmailDomain == nil || h.checkEmailDomain(c.Request.Context(), validators.NormalizeEmail(email)) {
		return true
	}
	httperr.Validation(c, []httpresp.FieldError{{
		Field:   "email",
		Message: validators.MsgEmailDomain,
		Value:   email,
	}})
	return false
}

// List godoc
//
//	@Summary	List clients
//	@Tags		clients
//	@Produce	json
//	@Param		page	query		int	false	"Page (>= 1)"		default(1)
//	@Param		limit	query		int	false	"Page size (1-100)"	default(10)
//	@Success	200		{object}	httpresp.Envelope{data=[]models.Client}
//	@Failure	400		{object}	httpresp.Envelope
//	@Router		/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	page, errs := validators.ParsePagination(c.Request.URL.Query())
	if len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	clients, total, err := h.list.Execute(c.Request.Context(), page.Offset(), page.Limit)
	if err != nil {
		writeError(c, err, "Error al obtener clientes")
		return
	}

	httpresp.List(c, clients, httpresp.NewPagination(page.Page, page.Limit, total))
}

// Get godoc
//
//	@Summary	Get a client
//	@Tags		clients
//	@Produce	json
//	@Param		id	path		string	true	"Client ID"
//	@Success	200	{object}	httpresp.Envelope{data=models.Client}
//	@Failure	400	{object}	httpresp.Envelope
//	@Failure	404	{object}	httpresp.Envelope
//	@Router		/clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", MsgInvalidClientID)
	if !ok {
		return
	}

	client, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Error al obtener cliente")
		return
	}

	httpresp.OK(c, client)
}

// Create godoc
//
//	@Summary	Create a client
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.CreateClientRequest	true	"Client"
//	@Success	201		{object}	httpresp.Envelope{data=models.Client}
//	@Failure	400		{object}	httpresp.Envelope
//	@Failure	409		{object}	httpresp.Envelope
//	@Router		/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}
	if !h.emailDomainOK(c, req.Email) {
		return
	}

	client, err := h.create.Execute(c.Request.Context(), clientuc.CreateClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Age:      req.Age,
	})
	if err != nil {
		writeError(c, err, "Error al crear cliente")
		return
	}

	httpresp.Created(c, "Cliente creado exitosamente", client)
}

// Update godoc
//
//	@Summary	Update a client
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Client ID"
//	@Param		body	body		dto.UpdateClientRequest	true	"Fields to change"
//	@Success	200		{object}	httpresp.Envelope{data=models.Client}
//	@Failure	400		{object}	httpresp.Envelope
//	@Failure	404		{object}	httpresp.Envelope
//	@Failure	409		{object}	httpresp.Envelope
//	@Router		/clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", MsgInvalidClientID)
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Email != nil && !h.emailDomainOK(c, *req.Email) {
		return
	}

	client, err := h.update.Execute(c.Request.Context(), id, clientuc.UpdateClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Age:      req.Age,
	})
	if httperr.IsBusiness(err, httperr.CodeEmailTaken) {
		httperr.Conflict(c, MsgEmailTakenByOther)
		return
	}
	if err != nil {
		writeError(c, err, "Error al actualizar cliente")
		return
	}

	httpresp.OKMessage(c, "Cliente actualizado exitosamente", client)
}

// Delete godoc
//
//	@Summary		Delete a client
//	@Description	Also deletes every reservation of the client.
//	@Tags			clients
//	@Produce		json
//	@Param			id	path		string	true	"Client ID"
//	@Success		200	{object}	httpresp.Envelope
//	@Failure		400	{object}	httpresp.Envelope
//	@Failure		404	{object}	httpresp.Envelope
//	@Router			/clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", MsgInvalidClientID)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		writeError(c, err, "Error al eliminar cliente")
		return
	}

	httpresp.OKMessage(c, "Cliente eliminado exitosamente", nil)
}

// Stats godoc
//
//	@Summary	Reservation statistics of a client
//	@Tags		clients
//	@Produce	json
//	@Param		id	path		string	true	"Client ID"
//	@Success	200	{object}	httpresp.Envelope{data=dto.ClientStatsResponse}
//	@Failure	400	{object}	httpresp.Envelope
//	@Failure	404	{object}	httpresp.Envelope
//	@Router		/clients/{id}/stats [get]
func (h *ClientHandler) Stats(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", MsgInvalidClientID)
	if !ok {
		return
	}

	client, stats, err := h.stats.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Error al obtener estadísticas del cliente")
		return
	}

	httpresp.OK(c, dto.ClientStatsResponse{Client: client, Stats: stats})
}
