package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	"github.com/BruksfildServices01/autoservice-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/autoservice-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/autoservice-booking/internal/infra/repository"
	"github.com/BruksfildServices01/autoservice-booking/internal/media"
	"github.com/BruksfildServices01/autoservice-booking/internal/middleware"
	"github.com/BruksfildServices01/autoservice-booking/internal/routes"
	"github.com/BruksfildServices01/autoservice-booking/internal/slogx"
	"github.com/BruksfildServices01/autoservice-booking/internal/timezone"
	"github.com/BruksfildServices01/autoservice-booking/internal/validators"
)

const version = "v1.0.0"

//	@title			AutoService Booking API
//	@version		1.0
//	@description	Clients and vehicle-service reservations.
//	@BasePath		/api
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := slogx.New(slogx.Config{
		Service: "autoservice-booking",
		Version: version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	timezone.SetDefault(cfg.Timezone)
	validators.Register()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	logger.Info("database ready, migrations applied")

	// ======================================================
	// AUDIT
	// ======================================================
	sinks := []audit.Sink{audit.New(db)}
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := audit.NewRedisClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			// audit rows still land in postgres
			logger.Warn("redis unavailable, audit events will not be published", "err", err)
		} else {
			defer rdb.Close()
			sinks = append(sinks, audit.NewRedisPublisher(rdb, cfg.AuditChannel))
		}
	}
	dispatcher := audit.NewDispatcher(logger, sinks...)

	// ======================================================
	// PHOTOS
	// ======================================================
	var photos media.Uploader
	if cfg.PhotosEnabled() {
		photos = media.NewS3Uploader(media.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	} else {
		logger.Info("S3_BUCKET not set, photo uploads disabled")
	}

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(slogx.GinMiddleware(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	routes.RegisterRoutes(r, cfg, routes.Deps{
		Clients:      infraRepo.NewClientGormRepository(db),
		Reservations: infraRepo.NewReservationGormRepository(db),
		AuditLogs:    audit.New(db),
		Audit:        dispatcher,
		Photos:       photos,
		Ping: func(ctx context.Context) error {
			return dbpkg.Ping(ctx, db)
		},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "version", version)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
		}
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())
	}

	shutdownServer(logger, srv, dispatcher, db, cfg.ShutdownGracePeriod)
}

// shutdownServer stops accepting requests, drains pending audit events and
// closes the pool, in that order.
func shutdownServer(
	logger *slog.Logger,
	srv *http.Server,
	dispatcher *audit.Dispatcher,
	db *gorm.DB,
	grace time.Duration,
) {
	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful server shutdown failed", "err", err)
		_ = srv.Close()
	}

	if err := dispatcher.Close(ctx); err != nil {
		logger.Warn("audit queue not fully drained", "err", err)
	}

	if err := dbpkg.Close(db); err != nil {
		logger.Error("error closing database", "err", err)
	}

	logger.Info("server stopped")
}
