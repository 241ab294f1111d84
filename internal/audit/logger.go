package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

type Filter struct {
	Action   string
	Entity   string
	EntityID *uuid.UUID
	From     *time.Time
	To       *time.Time // exclusive
}

// Store lists persisted audit entries, newest first.
type Store interface {
	ListAuditLogs(
		ctx context.Context,
		filter Filter,
		offset int,
		limit int,
	) ([]models.AuditLog, int64, error)
}

// Logger persists events in the audit_logs table.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ctx context.Context, ev Event) error {
	entry := ToModel(ev)
	return l.db.WithContext(ctx).Create(&entry).Error
}

func (l *Logger) ListAuditLogs(
	ctx context.Context,
	filter Filter,
	offset int,
	limit int,
) ([]models.AuditLog, int64, error) {

	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.Entity != "" {
		q = q.Where("entity = ?", filter.Entity)
	}
	if filter.EntityID != nil {
		q = q.Where("entity_id = ?", *filter.EntityID)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at < ?", *filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// ToModel flattens an event into its table row. Metadata that fails to
// marshal is stored empty.
func ToModel(ev Event) models.AuditLog {
	var meta string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			meta = string(b)
		}
	}

	return models.AuditLog{
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  meta,
		CreatedAt: ev.OccurredAt,
	}
}

var (
	_ Sink  = (*Logger)(nil)
	_ Store = (*Logger)(nil)
)
