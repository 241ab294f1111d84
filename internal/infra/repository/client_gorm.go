package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/autoservice-booking/internal/domain/client"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) ListClients(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Client, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&clients).Error; err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

func (r *ClientGormRepository) GetClient(
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

func (r *ClientGormRepository) FindClientByEmail(
	ctx context.Context,
	email string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) CreateClient(
	ctx context.Context,
	c *models.Client,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientGormRepository) UpdateClient(
	ctx context.Context,
	c *models.Client,
) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientGormRepository) DeleteClient(
	ctx context.Context,
	id uuid.UUID,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("client_id = ?", id).
			Delete(&models.Reservation{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.Client{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *ClientGormRepository) ListReservationsByClient(
	ctx context.Context,
	clientID uuid.UUID,
) ([]models.Reservation, error) {

	var list []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
