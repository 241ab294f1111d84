package routes

import (
	"context"
	"net"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	"github.com/BruksfildServices01/autoservice-booking/internal/config"
	clientDomain "github.com/BruksfildServices01/autoservice-booking/internal/domain/client"
	reservationDomain "github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/handlers"
	"github.com/BruksfildServices01/autoservice-booking/internal/media"
	"github.com/BruksfildServices01/autoservice-booking/internal/middleware"
	ucClient "github.com/BruksfildServices01/autoservice-booking/internal/usecase/client"
	ucReservation "github.com/BruksfildServices01/autoservice-booking/internal/usecase/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/validators"

	_ "github.com/BruksfildServices01/autoservice-booking/docs"
)

// Deps are the singletons built by main (or a test) and shared by every route.
type Deps struct {
	Clients      clientDomain.Repository
	Reservations reservationDomain.Repository
	AuditLogs    audit.Store
	Audit        *audit.Dispatcher

	// Photos is nil when no bucket is configured.
	Photos media.Uploader

	Ping func(ctx context.Context) error
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) {

	// ======================================================
	// 🧠 USE CASES — CLIENTS
	// ======================================================
	clientUC := handlers.ClientUseCases{
		List:   ucClient.NewListClients(deps.Clients),
		Get:    ucClient.NewGetClient(deps.Clients),
		Create: ucClient.NewCreateClient(deps.Clients, deps.Audit),
		Update: ucClient.NewUpdateClient(deps.Clients, deps.Audit),
		Delete: ucClient.NewDeleteClient(deps.Clients, deps.Audit),
		Stats:  ucClient.NewClientStats(deps.Clients),
	}
	authenticateUC := ucClient.NewAuthenticate(deps.Clients)

	// ======================================================
	// 🧠 USE CASES — RESERVATIONS
	// ======================================================
	reservationUC := handlers.ReservationUseCases{
		List:       ucReservation.NewListReservations(deps.Reservations),
		ListClient: ucReservation.NewListClientReservations(deps.Reservations),
		Get:        ucReservation.NewGetReservation(deps.Reservations),
		Create: ucReservation.NewCreateReservation(
			deps.Reservations,
			deps.Audit,
			cfg.MaxPendingReservations,
		),
		Update: ucReservation.NewUpdateReservation(deps.Reservations, deps.Audit),
		Delete: ucReservation.NewDeleteReservation(deps.Reservations, deps.Audit),
		Cancel: ucReservation.NewCancelReservation(deps.Reservations, deps.Audit),
		Stats:  ucReservation.NewReservationStats(deps.Reservations),
	}

	attachPhotoUC := ucReservation.NewAttachPhoto(deps.Reservations, deps.Photos, deps.Audit)
	listPhotosUC := ucReservation.NewListPhotos(deps.Reservations)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	var checkEmailDomain func(context.Context, string) bool
	if cfg.EmailDomainCheck {
		checkEmailDomain = validators.EmailDomainChecker(net.DefaultResolver)
	}

	clientHandler := handlers.NewClientHandler(clientUC, checkEmailDomain)
	reservationHandler := handlers.NewReservationHandler(reservationUC)
	photoHandler := handlers.NewPhotoHandler(attachPhotoUC, listPhotosUC)
	authHandler := handlers.NewAuthHandler(cfg, authenticateUC, clientUC.Get)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.AuditLogs)
	healthHandler := handlers.NewHealthHandler(deps.Ping)

	// ======================================================
	// 🔧 INFRA ROUTES
	// ======================================================
	r.GET("/health", healthHandler.Check)
	r.GET("/api-docs/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	)))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerWindow: cfg.RateLimitRequests,
		Window:            cfg.RateLimitWindow,
	}, middleware.ClientIPKey))
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", middleware.AuthMiddleware(cfg), authHandler.Me)

		// ------------------------------
		// CLIENTS
		// ------------------------------
		clients := api.Group("/clients")
		{
			clients.GET("", clientHandler.List)
			clients.POST("", clientHandler.Create)
			clients.GET("/:id", clientHandler.Get)
			clients.PUT("/:id", clientHandler.Update)
			clients.DELETE("/:id", clientHandler.Delete)
			clients.GET("/:id/stats", clientHandler.Stats)
		}

		// ------------------------------
		// RESERVATIONS
		// literal segments before /:id
		// ------------------------------
		reservations := api.Group("/reservations")
		{
			reservations.GET("", reservationHandler.List)
			reservations.POST("", reservationHandler.Create)
			reservations.GET("/stats", reservationHandler.Stats)
			reservations.GET("/client/:clientId", reservationHandler.ListByClient)

			reservations.GET("/:id", reservationHandler.Get)
			reservations.PUT("/:id", reservationHandler.Update)
			reservations.PATCH("/:id/cancel", reservationHandler.Cancel)
			reservations.DELETE("/:id", reservationHandler.Delete)

			reservations.POST("/:id/photos", photoHandler.Upload)
			reservations.GET("/:id/photos", photoHandler.List)
		}

		// ------------------------------
		// AUDIT
		// ------------------------------
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
