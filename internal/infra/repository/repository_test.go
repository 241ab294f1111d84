package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	dbpkg "github.com/BruksfildServices01/autoservice-booking/internal/db"
	"github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/infra/repository"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

// setupPostgres starts a throwaway PostgreSQL and returns a migrated pool and its DSN.
func setupPostgres(t *testing.T) (*gorm.DB, string) {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests skipped in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "autoservice",
			"POSTGRES_PASSWORD": "autoservice",
			"POSTGRES_DB":       "autoservice",
		},
		// the entrypoint restarts the server once after init
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://autoservice:autoservice@%s:%s/autoservice?sslmode=disable", host, port.Port())

	db, err := dbpkg.Open(dsn, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbpkg.Close(db) })

	return db, dsn
}

func newClient(email string) *models.Client {
	return &models.Client{
		Name:         "Juan Pérez",
		Email:        email,
		PasswordHash: "$2a$04$hash",
		Phone:        "+57 300 123 4567",
		Age:          30,
	}
}

func TestGormRepositories(t *testing.T) {
	db, _ := setupPostgres(t)
	ctx := context.Background()

	clients := repository.NewClientGormRepository(db)
	reservations := repository.NewReservationGormRepository(db)

	c := newClient("juan@email.com")
	require.NoError(t, clients.CreateClient(ctx, c))
	require.NotEqual(t, uuid.Nil, c.ID)

	t.Run("unique email", func(t *testing.T) {
		err := clients.CreateClient(ctx, newClient("juan@email.com"))
		require.True(t, httperr.IsUniqueViolation(err), "got %v", err)
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := clients.FindClientByEmail(ctx, "juan@email.com")
		require.NoError(t, err)
		require.Equal(t, c.ID, found.ID)

		_, err = clients.FindClientByEmail(ctx, "nadie@email.com")
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	var created []*models.Reservation
	for i, svc := range []reservation.Service{
		reservation.ServiceBrakes,
		reservation.ServiceBrakes,
		reservation.ServiceOilChange,
	} {
		r := &models.Reservation{
			ClientID: c.ID,
			Vehicle:  fmt.Sprintf("Mazda %d", i),
			Service:  string(svc),
			Status:   string(reservation.StatusPending),
		}
		require.NoError(t, reservations.CreateReservation(ctx, r))
		created = append(created, r)
	}

	t.Run("list newest first with client", func(t *testing.T) {
		list, total, err := reservations.ListReservations(ctx, reservation.Filter{}, 0, 2)
		require.NoError(t, err)
		require.Equal(t, int64(3), total)
		require.Len(t, list, 2)
		require.Equal(t, created[2].ID, list[0].ID)
		require.NotNil(t, list[0].Client)
		require.Equal(t, "juan@email.com", list[0].Client.Email)
	})

	t.Run("filters", func(t *testing.T) {
		_, total, err := reservations.ListReservations(ctx, reservation.Filter{
			ClientID: &c.ID,
			Service:  reservation.ServiceBrakes,
		}, 0, 10)
		require.NoError(t, err)
		require.Equal(t, int64(2), total)

		n, err := reservations.CountReservations(ctx, reservation.Filter{Status: reservation.StatusCompleted})
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("update and stats", func(t *testing.T) {
		r := created[0]
		r.Status = string(reservation.StatusCompleted)
		require.NoError(t, reservations.UpdateReservation(ctx, r))

		byStatus, err := reservations.CountByStatus(ctx)
		require.NoError(t, err)
		counts := map[string]int64{}
		for _, s := range byStatus {
			counts[s.Status] = s.Count
		}
		require.Equal(t, map[string]int64{"Completada": 1, "Pendiente": 2}, counts)

		byService, err := reservations.CountByService(ctx)
		require.NoError(t, err)
		require.Len(t, byService, 2)

		byMonth, err := reservations.CountByMonth(ctx, 12)
		require.NoError(t, err)
		require.Len(t, byMonth, 1)
		require.Equal(t, int64(3), byMonth[0].Count)
	})

	t.Run("check constraint rejects unknown status", func(t *testing.T) {
		bad := &models.Reservation{ClientID: c.ID, Vehicle: "Kia", Service: string(reservation.ServiceEngine), Status: "Perdida"}
		require.Error(t, reservations.CreateReservation(ctx, bad))
	})

	t.Run("photos", func(t *testing.T) {
		p := &models.ReservationPhoto{
			ReservationID: created[1].ID,
			Key:           "reservations/x/y.webp",
			URL:           "https://cdn.test/reservations/x/y.webp",
			ContentType:   "image/webp",
			Size:          42,
		}
		require.NoError(t, reservations.CreatePhoto(ctx, p))

		photos, err := reservations.ListPhotos(ctx, created[1].ID)
		require.NoError(t, err)
		require.Len(t, photos, 1)
	})

	t.Run("delete reservation", func(t *testing.T) {
		require.NoError(t, reservations.DeleteReservation(ctx, created[2].ID))
		require.ErrorIs(t, reservations.DeleteReservation(ctx, created[2].ID), gorm.ErrRecordNotFound)
	})

	t.Run("delete client cascades", func(t *testing.T) {
		require.NoError(t, clients.DeleteClient(ctx, c.ID))

		_, err := clients.GetClient(ctx, c.ID)
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)

		n, err := reservations.CountReservations(ctx, reservation.Filter{ClientID: &c.ID})
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

func TestAuditLoggerPostgres(t *testing.T) {
	db, _ := setupPostgres(t)
	ctx := context.Background()

	logger := audit.New(db)
	id := uuid.New()

	require.NoError(t, logger.Write(ctx, audit.Event{
		Action:   audit.ActionReservationCancel,
		Entity:   audit.EntityReservation,
		EntityID: &id,
		Metadata: map[string]any{"from": "Pendiente"},
	}))
	require.NoError(t, logger.Write(ctx, audit.Event{
		Action: audit.ActionClientCreated,
		Entity: audit.EntityClient,
	}))

	logs, total, err := logger.ListAuditLogs(ctx, audit.Filter{Entity: audit.EntityReservation}, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, audit.ActionReservationCancel, logs[0].Action)
	require.Equal(t, id, *logs[0].EntityID)
}

func TestMigrationsLeavePoolUntouched(t *testing.T) {
	db, dsn := setupPostgres(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.Zero(t, sqlDB.Stats().InUse)

	// already at the latest version
	require.NoError(t, dbpkg.ApplyMigrations(dsn))

	require.Zero(t, sqlDB.Stats().InUse)
	require.NoError(t, dbpkg.Ping(context.Background(), db))
}
