package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoservice-booking/internal/config"
	"github.com/BruksfildServices01/autoservice-booking/internal/dto"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/httpresp"
	"github.com/BruksfildServices01/autoservice-booking/internal/middleware"
	"github.com/BruksfildServices01/autoservice-booking/internal/timezone"
	clientuc "github.com/BruksfildServices01/autoservice-booking/internal/usecase/client"
)

type AuthHandler struct {
	config       *config.Config
	authenticate *clientuc.Authenticate
	get          *clientuc.GetClient
}

func NewAuthHandler(
	cfg *config.Config,
	authenticate *clientuc.Authenticate,
	get *clientuc.GetClient,
) *AuthHandler {
	return &AuthHandler{config: cfg, authenticate: authenticate, get: get}
}

// Login godoc
//
//	@Summary	Log in as a client
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.LoginRequest	true	"Credentials"
//	@Success	200		{object}	httpresp.Envelope{data=dto.LoginResponse}
//	@Failure	400		{object}	httpresp.Envelope
//	@Failure	401		{object}	httpresp.Envelope
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.authenticate.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err, "Error al iniciar sesión")
		return
	}

	token, exp, err := middleware.IssueToken(h.config, client.ID, timezone.Now())
	if err != nil {
		writeError(c, err, "Error al iniciar sesión")
		return
	}

	httpresp.OK(c, dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp.Unix(),
		Client:    client,
	})
}

// Me godoc
//
//	@Summary	The authenticated client
//	@Tags		auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	httpresp.Envelope{data=models.Client}
//	@Failure	401	{object}	httpresp.Envelope
//	@Router		/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := middleware.ClientID(c)
	if !ok {
		httperr.Unauthorized(c, middleware.MsgInvalidToken)
		return
	}

	client, err := h.get.Execute(c.Request.Context(), id)
	if httperr.IsBusiness(err, httperr.CodeClientNotFound) {
		// token outlived its client
		httperr.Unauthorized(c, middleware.MsgInvalidToken)
		return
	}
	if err != nil {
		writeError(c, err, "Error al obtener cliente")
		return
	}

	httpresp.OK(c, client)
}
