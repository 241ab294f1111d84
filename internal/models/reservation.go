package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reservation struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"clientId"`
	Client   *Client   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Vehicle string `gorm:"size:100;not null" json:"vehicle"`
	Service string `gorm:"size:30;not null" json:"service"`
	Status  string `gorm:"size:20;not null;default:'Pendiente'" json:"status"`

	ServiceDate *time.Time `json:"serviceDate,omitempty"`
	Notes       string     `gorm:"size:500" json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type ReservationPhoto struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReservationID uuid.UUID `gorm:"type:uuid;not null;index" json:"reservationId"`

	Key         string `gorm:"size:255;not null" json:"key"`
	URL         string `gorm:"size:512;not null" json:"url"`
	ContentType string `gorm:"size:50;not null" json:"contentType"`
	Size        int64  `json:"size"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *ReservationPhoto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
