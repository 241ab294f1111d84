package dto

import "github.com/BruksfildServices01/autoservice-booking/internal/models"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt int64          `json:"expiresAt"`
	Client    *models.Client `json:"client"`
}
