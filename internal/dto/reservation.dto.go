package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

type CreateReservationRequest struct {
	ClientID    string  `json:"clientId" binding:"required,uuid"`
	Vehicle     string  `json:"vehicle" binding:"required,min=2,max=100"`
	Service     string  `json:"service" binding:"required,service"`
	Status      *string `json:"status" binding:"omitempty,status"`
	ServiceDate *string `json:"serviceDate" binding:"omitempty,isodate,future"`
	Notes       *string `json:"notes" binding:"omitempty,max=500"`
}

type UpdateReservationRequest struct {
	ClientID    *string `json:"clientId" binding:"omitempty,uuid"`
	Vehicle     *string `json:"vehicle" binding:"omitempty,min=2,max=100"`
	Service     *string `json:"service" binding:"omitempty,service"`
	Status      *string `json:"status" binding:"omitempty,status"`
	ServiceDate *string `json:"serviceDate" binding:"omitempty,isodate,future"`
	Notes       *string `json:"notes" binding:"omitempty,max=500"`
}

// ClientSummary is the slice of the owning client embedded in reservation responses.
type ClientSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

type ReservationDTO struct {
	ID          uuid.UUID      `json:"id"`
	ClientID    uuid.UUID      `json:"clientId"`
	Client      *ClientSummary `json:"client,omitempty"`
	Vehicle     string         `json:"vehicle"`
	Service     string         `json:"service"`
	Status      string         `json:"status"`
	ServiceDate *time.Time     `json:"serviceDate,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func ToReservationDTO(r *models.Reservation) ReservationDTO {
	out := ReservationDTO{
		ID:          r.ID,
		ClientID:    r.ClientID,
		Vehicle:     r.Vehicle,
		Service:     r.Service,
		Status:      r.Status,
		ServiceDate: r.ServiceDate,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	if r.Client != nil {
		out.Client = &ClientSummary{
			ID:    r.Client.ID,
			Name:  r.Client.Name,
			Email: r.Client.Email,
			Phone: r.Client.Phone,
		}
	}

	return out
}

func ToReservationDTOs(list []models.Reservation) []ReservationDTO {
	out := make([]ReservationDTO, 0, len(list))
	for i := range list {
		out = append(out, ToReservationDTO(&list[i]))
	}
	return out
}

type ReservationStatsResponse struct {
	TotalReservations int64                      `json:"totalReservations"`
	StatusStats       []reservation.StatusCount  `json:"statusStats"`
	ServiceStats      []reservation.ServiceCount `json:"serviceStats"`
	MonthlyStats      []reservation.MonthCount   `json:"monthlyStats"`
}
