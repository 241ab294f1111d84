package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	"github.com/BruksfildServices01/autoservice-booking/internal/config"
	"github.com/BruksfildServices01/autoservice-booking/internal/handlers"
	"github.com/BruksfildServices01/autoservice-booking/internal/httpresp"
	"github.com/BruksfildServices01/autoservice-booking/internal/media"
	"github.com/BruksfildServices01/autoservice-booking/internal/middleware"
	"github.com/BruksfildServices01/autoservice-booking/internal/testsupport"
	clientuc "github.com/BruksfildServices01/autoservice-booking/internal/usecase/client"
	"github.com/BruksfildServices01/autoservice-booking/internal/validators"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validators.Register()
	clientuc.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type env struct {
	t          *testing.T
	engine     *gin.Engine
	store      *testsupport.Store
	dispatcher *audit.Dispatcher
}

type envelope struct {
	Success    bool                  `json:"success"`
	Data       json.RawMessage       `json:"data"`
	Message    string                `json:"message"`
	Errors     []httpresp.FieldError `json:"errors"`
	Pagination *httpresp.Pagination  `json:"pagination"`
}

type option func(cfg *config.Config, deps *Deps)

func withUploader(u media.Uploader) option {
	return func(_ *config.Config, deps *Deps) { deps.Photos = u }
}

func withPing(ping func(context.Context) error) option {
	return func(_ *config.Config, deps *Deps) { deps.Ping = ping }
}

func withRateLimit(n int) option {
	return func(cfg *config.Config, _ *Deps) {
		cfg.RateLimitRequests = n
		cfg.RateLimitWindow = time.Hour
	}
}

func newEnv(t *testing.T, opts ...option) *env {
	t.Helper()

	store := testsupport.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatcher := audit.NewDispatcher(logger, store)

	cfg := &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
	deps := Deps{
		Clients:      store,
		Reservations: store,
		AuditLogs:    store,
		Audit:        dispatcher,
		Ping:         func(context.Context) error { return nil },
	}
	for _, opt := range opts {
		opt(cfg, &deps)
	}

	r := gin.New()
	RegisterRoutes(r, cfg, deps)

	t.Cleanup(func() { _ = dispatcher.Close(context.Background()) })

	return &env{t: t, engine: r, store: store, dispatcher: dispatcher}
}

func (e *env) do(method, path string, body any, header ...string) (*httptest.ResponseRecorder, envelope) {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	return e.serve(req)
}

func (e *env) serve(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	e.t.Helper()

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	var out envelope
	if w.Body.Len() > 0 {
		require.NoError(e.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func (e *env) createClient(email string) map[string]any {
	e.t.Helper()

	w, out := e.do(http.MethodPost, "/api/clients", map[string]any{
		"name":     "Juan Pérez",
		"email":    email,
		"password": "123456",
		"phone":    "+57 300 123 4567",
		"age":      30,
	})
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())

	var data map[string]any
	require.NoError(e.t, json.Unmarshal(out.Data, &data))
	return data
}

func (e *env) createReservation(clientID string, extra map[string]any) map[string]any {
	e.t.Helper()

	body := map[string]any{
		"clientId": clientID,
		"vehicle":  "Toyota Corolla 2020",
		"service":  "Mantenimiento",
	}
	for k, v := range extra {
		body[k] = v
	}

	w, out := e.do(http.MethodPost, "/api/reservations", body)
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())

	var data map[string]any
	require.NoError(e.t, json.Unmarshal(out.Data, &data))
	return data
}

// ======================================================
// CLIENTS
// ======================================================

func TestCreateClientOmitsPassword(t *testing.T) {
	e := newEnv(t)

	data := e.createClient("juan@email.com")

	require.Equal(t, "Juan Pérez", data["name"])
	require.Equal(t, "juan@email.com", data["email"])
	require.NotContains(t, data, "password")
	require.NotContains(t, data, "passwordHash")
	require.NotEmpty(t, data["id"])
}

func TestCreateClientDuplicateEmail(t *testing.T) {
	e := newEnv(t)
	e.createClient("juan@email.com")

	w, out := e.do(http.MethodPost, "/api/clients", map[string]any{
		"name":     "Otro Juan",
		"email":    "JUAN@email.com",
		"password": "123456",
		"phone":    "3001234567",
		"age":      41,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.False(t, out.Success)
	require.Equal(t, handlers.MsgEmailTaken, out.Message)
}

func TestCreateClientValidationListsEveryField(t *testing.T) {
	e := newEnv(t)

	w, out := e.do(http.MethodPost, "/api/clients", map[string]any{
		"name":     "J",
		"email":    "not-an-email",
		"password": "123",
		"phone":    "abc",
		"age":      12,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	fields := map[string]bool{}
	for _, fe := range out.Errors {
		fields[fe.Field] = true
		if fe.Field == "password" {
			require.Nil(t, fe.Value)
		}
	}
	require.Equal(t, map[string]bool{
		"name": true, "email": true, "password": true, "phone": true, "age": true,
	}, fields)
}

func TestCreateClientTypeMismatchStillListsEveryField(t *testing.T) {
	e := newEnv(t)

	w, out := e.do(http.MethodPost, "/api/clients", map[string]any{
		"name":     "A",
		"email":    "bad",
		"password": "1",
		"phone":    "x",
		"age":      "treinta",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, out.Errors, 5, w.Body.String())

	fields := map[string]bool{}
	for _, fe := range out.Errors {
		fields[fe.Field] = true
	}
	require.Equal(t, map[string]bool{
		"name": true, "email": true, "password": true, "phone": true, "age": true,
	}, fields)
}

func TestGetClientInvalidAndMissingID(t *testing.T) {
	e := newEnv(t)

	w, out := e.do(http.MethodGet, "/api/clients/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, handlers.MsgInvalidClientID, out.Message)

	w, out = e.do(http.MethodGet, "/api/clients/6f1c1d2e-8d0a-4c77-9a43-3c2f0f1b9a11", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, handlers.MsgClientNotFound, out.Message)
}

func TestListClientsPagination(t *testing.T) {
	e := newEnv(t)
	for _, email := range []string{"a@email.com", "b@email.com", "c@email.com"} {
		e.createClient(email)
	}

	w, out := e.do(http.MethodGet, "/api/clients?page=2&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, &httpresp.Pagination{Page: 2, Limit: 2, Total: 3, Pages: 2}, out.Pagination)

	var data []map[string]any
	require.NoError(t, json.Unmarshal(out.Data, &data))
	require.Len(t, data, 1)
	require.Equal(t, "a@email.com", data[0]["email"])

	w, out = e.do(http.MethodGet, "/api/clients?limit=500", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "limit", out.Errors[0].Field)
}

func TestUpdateClientEmailTakenByOther(t *testing.T) {
	e := newEnv(t)
	e.createClient("a@email.com")
	b := e.createClient("b@email.com")

	w, out := e.do(http.MethodPut, "/api/clients/"+b["id"].(string), map[string]any{"email": "a@email.com"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, handlers.MsgEmailTakenByOther, out.Message)

	w, out = e.do(http.MethodPut, "/api/clients/"+b["id"].(string), map[string]any{"name": "Beatriz"})
	require.Equal(t, http.StatusOK, w.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(out.Data, &data))
	require.Equal(t, "Beatriz", data["name"])
	require.Equal(t, "b@email.com", data["email"])
}

func TestClientStats(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")
	id := c["id"].(string)

	e.createReservation(id, nil)
	e.createReservation(id, map[string]any{"status": "Completada"})
	e.createReservation(id, map[string]any{"status": "Cancelada", "service": "Frenos"})

	w, out := e.do(http.MethodGet, "/api/clients/"+id+"/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Stats struct {
			TotalReservations     int            `json:"totalReservations"`
			PendingReservations   int            `json:"pendingReservations"`
			CompletedReservations int            `json:"completedReservations"`
			CancelledReservations int            `json:"cancelledReservations"`
			ServiceBreakdown      map[string]int `json:"serviceBreakdown"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &data))
	require.Equal(t, 3, data.Stats.TotalReservations)
	require.Equal(t, 1, data.Stats.PendingReservations)
	require.Equal(t, 1, data.Stats.CompletedReservations)
	require.Equal(t, 1, data.Stats.CancelledReservations)
	require.Equal(t, map[string]int{"Mantenimiento": 2, "Frenos": 1}, data.Stats.ServiceBreakdown)
}

// ======================================================
// RESERVATIONS
// ======================================================

func TestCreateReservationPastDateRejected(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")

	w, out := e.do(http.MethodPost, "/api/reservations", map[string]any{
		"clientId":    c["id"],
		"vehicle":     "Toyota Corolla 2020",
		"service":     "Mantenimiento",
		"serviceDate": "2020-01-15T10:00:00Z",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, out.Errors, 1)
	require.Equal(t, "serviceDate", out.Errors[0].Field)
	require.Equal(t, validators.MsgServiceDateFuture, out.Errors[0].Message)
}

func TestCreateReservationUppercaseClientID(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")
	upper := strings.ToUpper(c["id"].(string))

	r := e.createReservation(upper, nil)
	require.Equal(t, c["id"], r["clientId"])

	w, _ := e.do(http.MethodGet, "/api/reservations/client/"+upper, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateReservationForDeletedClient(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")
	id := c["id"].(string)

	w, _ := e.do(http.MethodDelete, "/api/clients/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, out := e.do(http.MethodPost, "/api/reservations", map[string]any{
		"clientId": id,
		"vehicle":  "Toyota Corolla 2020",
		"service":  "Mantenimiento",
		"status":   "Completada",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, handlers.MsgClientNotFound, out.Message)
}

func TestDeleteClientCascadesReservations(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")
	r := e.createReservation(c["id"].(string), nil)

	w, _ := e.do(http.MethodDelete, "/api/clients/"+c["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = e.do(http.MethodGet, "/api/reservations/"+r["id"].(string), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLiteralRoutesWinOverID(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")
	e.createReservation(c["id"].(string), nil)

	w, out := e.do(http.MethodGet, "/api/reservations/stats", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stats struct {
		TotalReservations int64 `json:"totalReservations"`
		MonthlyStats      []any `json:"monthlyStats"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &stats))
	require.Equal(t, int64(1), stats.TotalReservations)
	require.Len(t, stats.MonthlyStats, 1)

	w, out = e.do(http.MethodGet, "/api/reservations/client/"+c["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(1), out.Pagination.Total)

	w, out = e.do(http.MethodGet, "/api/reservations/client/6f1c1d2e-8d0a-4c77-9a43-3c2f0f1b9a11", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, handlers.MsgClientNotFound, out.Message)
}

func TestGetReservationIncludesClientSummary(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")
	r := e.createReservation(c["id"].(string), map[string]any{"notes": "ruido al frenar"})

	w, out := e.do(http.MethodGet, "/api/reservations/"+r["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
		Client struct {
			Email string `json:"email"`
		} `json:"client"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &data))
	require.Equal(t, "Pendiente", data.Status)
	require.Equal(t, "ruido al frenar", data.Notes)
	require.Equal(t, "juan@email.com", data.Client.Email)
}

func TestListReservationsFilters(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")
	id := c["id"].(string)
	e.createReservation(id, nil)
	e.createReservation(id, map[string]any{"service": "Frenos"})
	e.createReservation(id, map[string]any{"service": "Frenos", "status": "Confirmada"})

	w, out := e.do(http.MethodGet, "/api/reservations?service=Frenos&status=Confirmada", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(1), out.Pagination.Total)

	w, out = e.do(http.MethodGet, "/api/reservations?status=Perdida", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "status", out.Errors[0].Field)
}

func TestUpdateCompletedReservationGuard(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")
	r := e.createReservation(c["id"].(string), map[string]any{"status": "Completada"})
	path := "/api/reservations/" + r["id"].(string)

	w, out := e.do(http.MethodPut, path, map[string]any{"vehicle": "Mazda 3 2019"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "No se puede modificar una reserva en estado: Completada", out.Message)

	// a status change is still accepted
	w, out = e.do(http.MethodPut, path, map[string]any{"status": "En proceso", "vehicle": "Mazda 3 2019"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data map[string]any
	require.NoError(t, json.Unmarshal(out.Data, &data))
	require.Equal(t, "En proceso", data["status"])
	require.Equal(t, "Mazda 3 2019", data["vehicle"])
}

func TestCompletingReservationStampsServiceDate(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")
	r := e.createReservation(c["id"].(string), nil)
	require.Nil(t, r["serviceDate"])

	w, out := e.do(http.MethodPut, "/api/reservations/"+r["id"].(string), map[string]any{"status": "Completada"})
	require.Equal(t, http.StatusOK, w.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(out.Data, &data))
	require.NotEmpty(t, data["serviceDate"])
}

func TestCancelAndDeleteReservation(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")
	r := e.createReservation(c["id"].(string), nil)
	id := r["id"].(string)

	w, out := e.do(http.MethodPatch, "/api/reservations/"+id+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var data map[string]any
	require.NoError(t, json.Unmarshal(out.Data, &data))
	require.Equal(t, "Cancelada", data["status"])

	w, out = e.do(http.MethodPatch, "/api/reservations/"+id+"/cancel", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "No se puede cancelar una reserva en estado: Cancelada", out.Message)

	w, out = e.do(http.MethodDelete, "/api/reservations/"+id, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "No se puede eliminar una reserva en estado: Cancelada", out.Message)

	r = e.createReservation(c["id"].(string), nil)
	w, _ = e.do(http.MethodDelete, "/api/reservations/"+r["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = e.do(http.MethodGet, "/api/reservations/"+r["id"].(string), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMalformedBody(t *testing.T) {
	e := newEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")

	w, out := e.serve(req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, out.Success)
	require.NotEmpty(t, out.Errors)
}

// ======================================================
// PHOTOS
// ======================================================

func multipartPhoto(t *testing.T, path string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("photo", "car.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(x * 20), B: uint8(y * 20), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPhotoUploadWithoutStorage(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")
	r := e.createReservation(c["id"].(string), nil)

	w, out := e.serve(multipartPhoto(t, "/api/reservations/"+r["id"].(string)+"/photos", pngBytes(t)))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, handlers.MsgStorageUnavailable, out.Message)
}

func TestPhotoUploadAndList(t *testing.T) {
	uploader := testsupport.NewUploader()
	e := newEnv(t, withUploader(uploader))
	c := e.createClient("juan@email.com")
	r := e.createReservation(c["id"].(string), nil)
	path := "/api/reservations/" + r["id"].(string) + "/photos"

	w, out := e.serve(multipartPhoto(t, path, pngBytes(t)))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, uploader.Objects, 1)

	var photo map[string]any
	require.NoError(t, json.Unmarshal(out.Data, &photo))
	require.Contains(t, photo["url"], "https://cdn.test/reservations/")

	w, out = e.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var photos []map[string]any
	require.NoError(t, json.Unmarshal(out.Data, &photos))
	require.Len(t, photos, 1)

	w, out = e.serve(multipartPhoto(t, path, []byte("definitely not an image")))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, out.Message, "Tipo de archivo no permitido")
}

func TestPhotoUploadMissingField(t *testing.T) {
	e := newEnv(t, withUploader(testsupport.NewUploader()))

	req := httptest.NewRequest(http.MethodPost, "/api/reservations/6f1c1d2e-8d0a-4c77-9a43-3c2f0f1b9a11/photos", nil)
	w, out := e.serve(req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "photo", out.Errors[0].Field)
}

// ======================================================
// AUTH
// ======================================================

func TestLoginAndMe(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")

	w, out := e.do(http.MethodPost, "/api/auth/login", map[string]any{
		"email": "juan@email.com", "password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, handlers.MsgInvalidCredentials, out.Message)

	w, out = e.do(http.MethodPost, "/api/auth/login", map[string]any{
		"email": "Juan@Email.com", "password": "123456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &login))
	require.NotEmpty(t, login.Token)

	w, out = e.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, middleware.MsgMissingToken, out.Message)

	w, out = e.do(http.MethodGet, "/api/auth/me", nil, "Authorization", "Bearer "+login.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var me map[string]any
	require.NoError(t, json.Unmarshal(out.Data, &me))
	require.Equal(t, c["id"], me["id"])
}

// ======================================================
// AUDIT / INFRA
// ======================================================

func TestAuditLogsRecordMutations(t *testing.T) {
	e := newEnv(t)
	c := e.createClient("juan@email.com")
	r := e.createReservation(c["id"].(string), nil)
	e.do(http.MethodPatch, "/api/reservations/"+r["id"].(string)+"/cancel", nil)

	require.NoError(t, e.dispatcher.Close(context.Background()))

	w, out := e.do(http.MethodGet, "/api/audit-logs?entity=reservation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(2), out.Pagination.Total)

	w, out = e.do(http.MethodGet, "/api/audit-logs?action="+audit.ActionClientCreated, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(1), out.Pagination.Total)

	w, out = e.do(http.MethodGet, "/api/audit-logs?from=yesterday", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "from", out.Errors[0].Field)
}

func TestHealth(t *testing.T) {
	e := newEnv(t)
	w, _ := e.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	down := newEnv(t, withPing(func(context.Context) error { return errors.New("connection refused") }))
	w, out := down.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, handlers.MsgServiceUnavailable, out.Message)
}

func TestRateLimitOnAPI(t *testing.T) {
	e := newEnv(t, withRateLimit(2))

	for i := 0; i < 2; i++ {
		w, _ := e.do(http.MethodGet, "/api/clients", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, out := e.do(http.MethodGet, "/api/clients", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, middleware.MsgTooManyRequests, out.Message)
	require.NotEmpty(t, w.Header().Get("Retry-After"))

	// health is outside /api
	w, _ = e.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
