package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func applyReservationFilter(q *gorm.DB, f domain.Filter) *gorm.DB {
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.Service != "" {
		q = q.Where("service = ?", string(f.Service))
	}
	return q
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ReservationGormRepository) GetClient(
	ctx context.Context,
	id uuid.UUID,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Reservation (read)
// --------------------------------------------------

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
	filter domain.Filter,
	offset int,
	limit int,
) ([]models.Reservation, int64, error) {

	var total int64
	if err := applyReservationFilter(
		r.db.WithContext(ctx).Model(&models.Reservation{}),
		filter,
	).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []models.Reservation
	if err := applyReservationFilter(
		r.db.WithContext(ctx).Preload("Client"),
		filter,
	).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *ReservationGormRepository) CountReservations(
	ctx context.Context,
	filter domain.Filter,
) (int64, error) {

	var count int64
	if err := applyReservationFilter(
		r.db.WithContext(ctx).Model(&models.Reservation{}),
		filter,
	).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uuid.UUID,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ?", id).
		First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// --------------------------------------------------
// Reservation (write)
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Omit("Client").Create(res).Error
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Omit("Client").Save(res).Error
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	id uuid.UUID,
) error {

	tx := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Reservation{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

func (r *ReservationGormRepository) CountByStatus(
	ctx context.Context,
) ([]domain.StatusCount, error) {

	var rows []domain.StatusCount
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReservationGormRepository) CountByService(
	ctx context.Context,
) ([]domain.ServiceCount, error) {

	var rows []domain.ServiceCount
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Select("service, COUNT(*) AS count").
		Group("service").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByMonth buckets reservations by the UTC month of created_at, newest first.
func (r *ReservationGormRepository) CountByMonth(
	ctx context.Context,
	limit int,
) ([]domain.MonthCount, error) {

	var rows []domain.MonthCount
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			EXTRACT(YEAR FROM created_at AT TIME ZONE 'UTC')::int  AS year,
			EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC')::int AS month,
			COUNT(*) AS count
		FROM reservations
		GROUP BY year, month
		ORDER BY year DESC, month DESC
		LIMIT ?
	`, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Photos
// --------------------------------------------------

func (r *ReservationGormRepository) CreatePhoto(
	ctx context.Context,
	p *models.ReservationPhoto,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ReservationGormRepository) ListPhotos(
	ctx context.Context,
	reservationID uuid.UUID,
) ([]models.ReservationPhoto, error) {

	var photos []models.ReservationPhoto
	if err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Order("created_at ASC").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
