package dto

import (
	"github.com/BruksfildServices01/autoservice-booking/internal/domain/client"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

type CreateClientRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Phone    string `json:"phone" binding:"required,phone"`
	Age      int    `json:"age" binding:"required,min=18,max=120"`
}

// UpdateClientRequest only touches the fields that are present.
type UpdateClientRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
	Phone    *string `json:"phone" binding:"omitempty,phone"`
	Age      *int    `json:"age" binding:"omitempty,min=18,max=120"`
}

type ClientStatsResponse struct {
	Client *models.Client `json:"client"`
	Stats  client.Stats   `json:"stats"`
}
