package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action   string     `gorm:"size:50;not null" json:"action"`
	Entity   string     `gorm:"size:50" json:"entity"`
	EntityID *uuid.UUID `gorm:"type:uuid" json:"entityId"`
	Metadata string     `gorm:"type:text" json:"metadata,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
