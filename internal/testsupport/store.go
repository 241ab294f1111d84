// Package testsupport holds in-memory stand-ins for the gorm repositories.
package testsupport

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoservice-booking/internal/audit"
	"github.com/BruksfildServices01/autoservice-booking/internal/domain/client"
	"github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

// Store keeps clients, reservations, photos and audit rows in maps guarded by
// one mutex. Every create gets a strictly increasing CreatedAt.
type Store struct {
	mu sync.Mutex

	clients      map[uuid.UUID]models.Client
	reservations map[uuid.UUID]models.Reservation
	photos       []models.ReservationPhoto
	auditLogs    []models.AuditLog

	last time.Time
	err  error
}

func NewStore() *Store {
	return &Store{
		clients:      map[uuid.UUID]models.Client{},
		reservations: map[uuid.UUID]models.Reservation{},
	}
}

// FailWith makes every following call return err. Pass nil to recover.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// SetCreatedAt backdates a reservation, for month bucketing tests.
func (s *Store) SetCreatedAt(id uuid.UUID, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.reservations[id]; ok {
		r.CreatedAt = at
		s.reservations[id] = r
	}
}

func (s *Store) tick() time.Time {
	now := time.Now().UTC()
	if !now.After(s.last) {
		now = s.last.Add(time.Microsecond)
	}
	s.last = now
	return now
}

func paginate[T any](list []T, offset, limit int) []T {
	if offset >= len(list) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (s *Store) ListClients(_ context.Context, offset, limit int) ([]models.Client, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, 0, s.err
	}

	all := make([]models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	return paginate(all, offset, limit), int64(len(all)), nil
}

func (s *Store) GetClient(_ context.Context, id uuid.UUID) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	c, ok := s.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (s *Store) FindClientByEmail(_ context.Context, email string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	for _, c := range s.clients {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *Store) emailTaken(email string, except uuid.UUID) bool {
	for _, c := range s.clients {
		if c.Email == email && c.ID != except {
			return true
		}
	}
	return false
}

func (s *Store) CreateClient(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	if s.emailTaken(c.Email, uuid.Nil) {
		return &pgconn.PgError{Code: "23505", ConstraintName: "idx_clients_email"}
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = s.tick()
	c.UpdatedAt = c.CreatedAt
	s.clients[c.ID] = *c
	return nil
}

func (s *Store) UpdateClient(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	if _, ok := s.clients[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if s.emailTaken(c.Email, c.ID) {
		return &pgconn.PgError{Code: "23505", ConstraintName: "idx_clients_email"}
	}

	c.UpdatedAt = s.tick()
	s.clients[c.ID] = *c
	return nil
}

func (s *Store) DeleteClient(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	if _, ok := s.clients[id]; !ok {
		return gorm.ErrRecordNotFound
	}

	for rid, r := range s.reservations {
		if r.ClientID == id {
			s.deleteReservationLocked(rid)
		}
	}
	delete(s.clients, id)
	return nil
}

func (s *Store) ListReservationsByClient(_ context.Context, clientID uuid.UUID) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	return s.filterLocked(reservation.Filter{ClientID: &clientID}), nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (s *Store) filterLocked(f reservation.Filter) []models.Reservation {
	var out []models.Reservation
	for _, r := range s.reservations {
		if f.ClientID != nil && r.ClientID != *f.ClientID {
			continue
		}
		if f.Status != "" && r.Status != string(f.Status) {
			continue
		}
		if f.Service != "" && r.Service != string(f.Service) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *Store) withClientLocked(r models.Reservation) models.Reservation {
	if c, ok := s.clients[r.ClientID]; ok {
		r.Client = &c
	}
	return r
}

func (s *Store) ListReservations(
	_ context.Context,
	f reservation.Filter,
	offset int,
	limit int,
) ([]models.Reservation, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, 0, s.err
	}

	all := s.filterLocked(f)
	page := paginate(all, offset, limit)

	out := make([]models.Reservation, 0, len(page))
	for _, r := range page {
		out = append(out, s.withClientLocked(r))
	}
	return out, int64(len(all)), nil
}

func (s *Store) CountReservations(_ context.Context, f reservation.Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.filterLocked(f))), nil
}

func (s *Store) GetReservation(_ context.Context, id uuid.UUID) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	r, ok := s.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	r = s.withClientLocked(r)
	return &r, nil
}

func (s *Store) CreateReservation(_ context.Context, r *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	if _, ok := s.clients[r.ClientID]; !ok {
		return &pgconn.PgError{Code: "23503", ConstraintName: "reservations_client_id_fkey"}
	}

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = string(reservation.InitialStatus())
	}
	r.CreatedAt = s.tick()
	r.UpdatedAt = r.CreatedAt

	stored := *r
	stored.Client = nil
	s.reservations[r.ID] = stored
	return nil
}

func (s *Store) UpdateReservation(_ context.Context, r *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	if _, ok := s.reservations[r.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if _, ok := s.clients[r.ClientID]; !ok {
		return &pgconn.PgError{Code: "23503", ConstraintName: "reservations_client_id_fkey"}
	}

	r.UpdatedAt = s.tick()
	stored := *r
	stored.Client = nil
	s.reservations[r.ID] = stored
	return nil
}

func (s *Store) DeleteReservation(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	if _, ok := s.reservations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.deleteReservationLocked(id)
	return nil
}

func (s *Store) deleteReservationLocked(id uuid.UUID) {
	delete(s.reservations, id)

	kept := s.photos[:0]
	for _, p := range s.photos {
		if p.ReservationID != id {
			kept = append(kept, p)
		}
	}
	s.photos = kept
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

func (s *Store) CountByStatus(_ context.Context) ([]reservation.StatusCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	counts := map[string]int64{}
	for _, r := range s.reservations {
		counts[r.Status]++
	}

	out := make([]reservation.StatusCount, 0, len(counts))
	for k, v := range counts {
		out = append(out, reservation.StatusCount{Status: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Status < out[j].Status
	})
	return out, nil
}

func (s *Store) CountByService(_ context.Context) ([]reservation.ServiceCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	counts := map[string]int64{}
	for _, r := range s.reservations {
		counts[r.Service]++
	}

	out := make([]reservation.ServiceCount, 0, len(counts))
	for k, v := range counts {
		out = append(out, reservation.ServiceCount{Service: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Service < out[j].Service
	})
	return out, nil
}

func (s *Store) CountByMonth(_ context.Context, limit int) ([]reservation.MonthCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	type key struct{ year, month int }
	counts := map[key]int64{}
	for _, r := range s.reservations {
		t := r.CreatedAt.UTC()
		counts[key{t.Year(), int(t.Month())}]++
	}

	out := make([]reservation.MonthCount, 0, len(counts))
	for k, v := range counts {
		out = append(out, reservation.MonthCount{Year: k.year, Month: k.month, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --------------------------------------------------
// Photos
// --------------------------------------------------

func (s *Store) CreatePhoto(_ context.Context, p *models.ReservationPhoto) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = s.tick()
	s.photos = append(s.photos, *p)
	return nil
}

func (s *Store) ListPhotos(_ context.Context, reservationID uuid.UUID) ([]models.ReservationPhoto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	var out []models.ReservationPhoto
	for _, p := range s.photos {
		if p.ReservationID == reservationID {
			out = append(out, p)
		}
	}
	return out, nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (s *Store) Write(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := audit.ToModel(ev)
	row.ID = uint(len(s.auditLogs) + 1)
	if row.CreatedAt.IsZero() {
		row.CreatedAt = s.tick()
	}
	s.auditLogs = append(s.auditLogs, row)
	return nil
}

func (s *Store) ListAuditLogs(
	_ context.Context,
	f audit.Filter,
	offset int,
	limit int,
) ([]models.AuditLog, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, 0, s.err
	}

	var all []models.AuditLog
	for i := len(s.auditLogs) - 1; i >= 0; i-- {
		l := s.auditLogs[i]
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.EntityID != nil && (l.EntityID == nil || *l.EntityID != *f.EntityID) {
			continue
		}
		if f.From != nil && l.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !l.CreatedAt.Before(*f.To) {
			continue
		}
		all = append(all, l)
	}

	return paginate(all, offset, limit), int64(len(all)), nil
}

// AuditLogs returns a copy of every recorded row, oldest first.
func (s *Store) AuditLogs() []models.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AuditLog, len(s.auditLogs))
	copy(out, s.auditLogs)
	return out
}

var (
	_ client.Repository      = (*Store)(nil)
	_ reservation.Repository = (*Store)(nil)
	_ audit.Store            = (*Store)(nil)
	_ audit.Sink             = (*Store)(nil)
)
