package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/httpresp"
	"github.com/BruksfildServices01/autoservice-booking/internal/slogx"
)

type HealthHandler struct {
	ping func(ctx context.Context) error
}

func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Check godoc
//
//	@Summary	Liveness and database reachability
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	httpresp.Envelope
//	@Failure	503	{object}	httpresp.Envelope
//	@Router		/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if h.ping != nil {
		if err := h.ping(ctx); err != nil {
			slogx.FromContext(ctx).Error("health check failed", "err", err)
			httperr.Unavailable(c, MsgServiceUnavailable)
			return
		}
	}

	httpresp.OK(c, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
