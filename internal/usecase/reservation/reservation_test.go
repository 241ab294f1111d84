package reservation

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/httperr"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
	"github.com/BruksfildServices01/autoservice-booking/internal/testsupport"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func seedClient(t *testing.T, store *testsupport.Store, email string) *models.Client {
	t.Helper()
	c := &models.Client{Name: "Ana", Email: email, PasswordHash: "x", Phone: "3001234567", Age: 30}
	require.NoError(t, store.CreateClient(context.Background(), c))
	return c
}

func newCreate(store *testsupport.Store, maxPending int) *CreateReservation {
	uc := NewCreateReservation(store, nil, maxPending)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func newUpdate(store *testsupport.Store) *UpdateReservation {
	uc := NewUpdateReservation(store, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func statusPtr(s domain.Status) *domain.Status { return &s }

func TestCreateReservationDefaultsToPending(t *testing.T) {
	store := testsupport.NewStore()
	c := seedClient(t, store, "ana@example.com")

	r, err := newCreate(store, 0).Execute(context.Background(), CreateReservationInput{
		ClientID: c.ID,
		Vehicle:  " Toyota Corolla 2018 ",
		Service:  domain.ServiceBrakes,
	})
	require.NoError(t, err)
	require.Equal(t, "Pendiente", r.Status)
	require.Equal(t, "Toyota Corolla 2018", r.Vehicle)
	require.Nil(t, r.ServiceDate)
	require.NotNil(t, r.Client)
	require.Equal(t, c.Email, r.Client.Email)
}

func TestCreateReservationUnknownClientNeverPersists(t *testing.T) {
	store := testsupport.NewStore()

	_, err := newCreate(store, 0).Execute(context.Background(), CreateReservationInput{
		ClientID: uuid.New(),
		Vehicle:  "Mazda 3",
		Service:  domain.ServiceEngine,
	})
	require.True(t, httperr.IsBusiness(err, httperr.CodeClientNotFound))

	n, err := store.CountReservations(context.Background(), domain.Filter{})
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestCreateCompletedStampsServiceDate(t *testing.T) {
	store := testsupport.NewStore()
	c := seedClient(t, store, "ana@example.com")

	r, err := newCreate(store, 0).Execute(context.Background(), CreateReservationInput{
		ClientID: c.ID,
		Vehicle:  "Mazda 3",
		Service:  domain.ServiceOilChange,
		Status:   statusPtr(domain.StatusCompleted),
	})
	require.NoError(t, err)
	require.NotNil(t, r.ServiceDate)
	require.True(t, r.ServiceDate.Equal(fixedNow))

	explicit := fixedNow.Add(72 * time.Hour)
	r, err = newCreate(store, 0).Execute(context.Background(), CreateReservationInput{
		ClientID:    c.ID,
		Vehicle:     "Mazda 3",
		Service:     domain.ServiceOilChange,
		Status:      statusPtr(domain.StatusCompleted),
		ServiceDate: &explicit,
	})
	require.NoError(t, err)
	require.True(t, r.ServiceDate.Equal(explicit))
}

func TestCreateReservationPendingCap(t *testing.T) {
	ctx := context.Background()
	store := testsupport.NewStore()
	c := seedClient(t, store, "ana@example.com")
	uc := newCreate(store, 3)

	in := CreateReservationInput{ClientID: c.ID, Vehicle: "Kia Rio", Service: domain.ServiceInspection}
	for i := 0; i < 3; i++ {
		_, err := uc.Execute(ctx, in)
		require.NoError(t, err)
	}

	_, err := uc.Execute(ctx, in)
	require.True(t, httperr.IsBusiness(err, httperr.CodeTooManyPending))

	// the cap is off by default
	_, err = newCreate(store, 0).Execute(ctx, in)
	require.NoError(t, err)
}

func TestUpdateReservationGuard(t *testing.T) {
	ctx := context.Background()
	store := testsupport.NewStore()
	c := seedClient(t, store, "ana@example.com")

	r, err := newCreate(store, 0).Execute(ctx, CreateReservationInput{
		ClientID: c.ID,
		Vehicle:  "Kia Rio",
		Service:  domain.ServiceRepair,
		Status:   statusPtr(domain.StatusInProgress),
	})
	require.NoError(t, err)

	notes := "cliente pide revisar luces"
	_, err = newUpdate(store).Execute(ctx, r.ID, UpdateReservationInput{Notes: &notes})
	require.True(t, httperr.IsBusiness(err, httperr.CodeNotModifiable))
	be, _ := httperr.AsBusiness(err)
	require.Equal(t, "En proceso", be.Detail)

	_, err = newUpdate(store).Execute(ctx, r.ID, UpdateReservationInput{
		Status: statusPtr(domain.StatusInProgress),
		Notes:  &notes,
	})
	require.True(t, httperr.IsBusiness(err, httperr.CodeNotModifiable))

	// moving the status forward is always allowed
	updated, err := newUpdate(store).Execute(ctx, r.ID, UpdateReservationInput{
		Status: statusPtr(domain.StatusCompleted),
	})
	require.NoError(t, err)
	require.Equal(t, "Completada", updated.Status)
	require.True(t, updated.ServiceDate.Equal(fixedNow))
}

func TestUpdateReservationReassignClient(t *testing.T) {
	ctx := context.Background()
	store := testsupport.NewStore()
	ana := seedClient(t, store, "ana@example.com")
	luis := seedClient(t, store, "luis@example.com")

	r, err := newCreate(store, 0).Execute(ctx, CreateReservationInput{
		ClientID: ana.ID, Vehicle: "Kia Rio", Service: domain.ServiceRepair,
	})
	require.NoError(t, err)

	missing := uuid.New()
	_, err = newUpdate(store).Execute(ctx, r.ID, UpdateReservationInput{ClientID: &missing})
	require.True(t, httperr.IsBusiness(err, httperr.CodeClientNotFound))

	updated, err := newUpdate(store).Execute(ctx, r.ID, UpdateReservationInput{ClientID: &luis.ID})
	require.NoError(t, err)
	require.Equal(t, luis.ID, updated.ClientID)
	require.Equal(t, "luis@example.com", updated.Client.Email)
}

func TestCancelAndDelete(t *testing.T) {
	ctx := context.Background()
	store := testsupport.NewStore()
	c := seedClient(t, store, "ana@example.com")
	create := newCreate(store, 0)

	r, err := create.Execute(ctx, CreateReservationInput{ClientID: c.ID, Vehicle: "Kia Rio", Service: domain.ServiceBrakes})
	require.NoError(t, err)

	cancelled, err := NewCancelReservation(store, nil).Execute(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, "Cancelada", cancelled.Status)

	_, err = NewCancelReservation(store, nil).Execute(ctx, r.ID)
	require.True(t, httperr.IsBusiness(err, httperr.CodeNotCancellable))

	err = NewDeleteReservation(store, nil).Execute(ctx, r.ID)
	require.True(t, httperr.IsBusiness(err, httperr.CodeNotDeletable))

	r2, err := create.Execute(ctx, CreateReservationInput{ClientID: c.ID, Vehicle: "Kia Rio", Service: domain.ServiceBrakes})
	require.NoError(t, err)
	require.NoError(t, NewDeleteReservation(store, nil).Execute(ctx, r2.ID))

	_, err = NewGetReservation(store).Execute(ctx, r2.ID)
	require.True(t, httperr.IsBusiness(err, httperr.CodeReservationNotFound))
}

func TestListClientReservations(t *testing.T) {
	ctx := context.Background()
	store := testsupport.NewStore()
	ana := seedClient(t, store, "ana@example.com")
	luis := seedClient(t, store, "luis@example.com")
	create := newCreate(store, 0)

	for i := 0; i < 4; i++ {
		_, err := create.Execute(ctx, CreateReservationInput{ClientID: ana.ID, Vehicle: "Kia Rio", Service: domain.ServiceBrakes})
		require.NoError(t, err)
	}
	_, err := create.Execute(ctx, CreateReservationInput{ClientID: luis.ID, Vehicle: "Kia Rio", Service: domain.ServiceEngine})
	require.NoError(t, err)

	list, total, err := NewListClientReservations(store).Execute(ctx, ana.ID, domain.Filter{}, 0, 3)
	require.NoError(t, err)
	require.EqualValues(t, 4, total)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		require.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt))
	}

	_, _, err = NewListClientReservations(store).Execute(ctx, uuid.New(), domain.Filter{}, 0, 10)
	require.True(t, httperr.IsBusiness(err, httperr.CodeClientNotFound))

	list, total, err = NewListReservations(store).Execute(ctx, domain.Filter{Service: domain.ServiceEngine}, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, luis.ID, list[0].Client.ID)
}

func TestReservationStats(t *testing.T) {
	ctx := context.Background()
	store := testsupport.NewStore()
	c := seedClient(t, store, "ana@example.com")
	create := newCreate(store, 0)

	months := []time.Time{
		time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
	}
	for _, at := range months {
		r, err := create.Execute(ctx, CreateReservationInput{ClientID: c.ID, Vehicle: "Kia Rio", Service: domain.ServiceBrakes})
		require.NoError(t, err)
		store.SetCreatedAt(r.ID, at)
	}

	stats, err := NewReservationStats(store).Execute(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, stats.TotalReservations)
	require.Equal(t, []domain.StatusCount{{Status: "Pendiente", Count: 3}}, stats.StatusStats)
	require.Equal(t, []domain.MonthCount{
		{Year: 2025, Month: 1, Count: 2},
		{Year: 2024, Month: 11, Count: 1},
	}, stats.MonthlyStats)

	empty, err := NewReservationStats(testsupport.NewStore()).Execute(ctx)
	require.NoError(t, err)
	require.NotNil(t, empty.MonthlyStats)
}

func TestAttachPhoto(t *testing.T) {
	ctx := context.Background()
	store := testsupport.NewStore()
	c := seedClient(t, store, "ana@example.com")

	r, err := newCreate(store, 0).Execute(ctx, CreateReservationInput{ClientID: c.ID, Vehicle: "Kia Rio", Service: domain.ServiceBrakes})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	_, err = NewAttachPhoto(store, nil, nil).Execute(ctx, r.ID, buf.Bytes())
	require.True(t, httperr.IsBusiness(err, httperr.CodeStorageUnavailable))

	up := testsupport.NewUploader()
	photo, err := NewAttachPhoto(store, up, nil).Execute(ctx, r.ID, buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "image/webp", photo.ContentType)
	require.Contains(t, up.Objects, photo.Key)

	_, err = NewAttachPhoto(store, up, nil).Execute(ctx, r.ID, []byte("%PDF-1.4 not an image"))
	require.True(t, httperr.IsBusiness(err, httperr.CodeUnsupportedMedia))

	up.Err = errors.New("bucket gone")
	_, err = NewAttachPhoto(store, up, nil).Execute(ctx, r.ID, buf.Bytes())
	require.Error(t, err)
	_, isBusiness := httperr.AsBusiness(err)
	require.False(t, isBusiness)

	photos, err := NewListPhotos(store).Execute(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, photos, 1)
}
