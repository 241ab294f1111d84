package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

type AuditLogDTO struct {
	ID        uint            `json:"id"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  *uuid.UUID      `json:"entityId,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

func ToAuditLogDTOs(list []models.AuditLog) []AuditLogDTO {
	out := make([]AuditLogDTO, 0, len(list))
	for _, l := range list {
		item := AuditLogDTO{
			ID:        l.ID,
			Action:    l.Action,
			Entity:    l.Entity,
			EntityID:  l.EntityID,
			CreatedAt: l.CreatedAt,
		}
		if l.Metadata != "" && json.Valid([]byte(l.Metadata)) {
			item.Metadata = json.RawMessage(l.Metadata)
		}
		out = append(out, item)
	}
	return out
}
