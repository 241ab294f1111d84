package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	"github.com/BruksfildServices01/autoservice-booking/internal/dto"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/httpresp"
	"github.com/BruksfildServices01/autoservice-booking/internal/validators"
)

const MsgInvalidDay = "La fecha debe tener el formato AAAA-MM-DD"

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store audit.Store
}

func NewAuditLogsHandler(store audit.Store) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

// List godoc
//
//	@Summary	List audit entries
//	@Tags		audit
//	@Produce	json
//	@Param		entity		query		string	false	"client or reservation"
//	@Param		action		query		string	false	"e.g. reservation.cancelled"
//	@Param		entityId	query		string	false	"Entity ID"
//	@Param		from		query		string	false	"First day (YYYY-MM-DD)"
//	@Param		to			query		string	false	"Last day, inclusive (YYYY-MM-DD)"
//	@Param		page		query		int		false	"Page (>= 1)"		default(1)
//	@Param		limit		query		int		false	"Page size (1-100)"	default(10)
//	@Success	200			{object}	httpresp.Envelope{data=[]dto.AuditLogDTO}
//	@Failure	400			{object}	httpresp.Envelope
//	@Router		/audit-logs [get]
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := c.Request.URL.Query()

	page, errs := validators.ParsePagination(q)

	filter := audit.Filter{
		Action: q.Get("action"),
		Entity: q.Get("entity"),
	}

	if raw := q.Get("entityId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.EntityID = &id
		} else {
			errs = append(errs, httpresp.FieldError{Field: "entityId", Message: validators.MsgInvalidValue, Value: raw})
		}
	}

	loc := time.UTC
	if raw := q.Get("from"); raw != "" {
		if from, err := time.ParseInLocation("2006-01-02", raw, loc); err == nil {
			filter.From = &from
		} else {
			errs = append(errs, httpresp.FieldError{Field: "from", Message: MsgInvalidDay, Value: raw})
		}
	}
	if raw := q.Get("to"); raw != "" {
		if to, err := time.ParseInLocation("2006-01-02", raw, loc); err == nil {
			end := to.AddDate(0, 0, 1)
			filter.To = &end
		} else {
			errs = append(errs, httpresp.FieldError{Field: "to", Message: MsgInvalidDay, Value: raw})
		}
	}

	if len(errs) > 0 {
		httperr.Validation(c, errs)
		return
	}

	logs, total, err := h.store.ListAuditLogs(c.Request.Context(), filter, page.Offset(), page.Limit)
	if err != nil {
		writeError(c, err, "Error al obtener el historial")
		return
	}

	httpresp.List(c, dto.ToAuditLogDTOs(logs), httpresp.NewPagination(page.Page, page.Limit, total))
}
