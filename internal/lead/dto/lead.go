package dto

import (
	"time"

	leaddomain "leadscout-backend/internal/lead/domain"
)

type ConnectGmailRequest struct {
	Email        string    `json:"email"`
	AccessToken  string    `json:"access_token" binding:"required"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiryDate   time.Time `json:"expiry_date"`
}

type GmailStatusResponse struct {
	Connected bool   `json:"connected"`
	Email     string `json:"email,omitempty"`
}

type LeadsResponse struct {
	Leads  []*leaddomain.ContentRecord `json:"leads"`
	Limit  int                         `json:"limit"`
	Offset int                         `json:"offset"`
	Total  int64                       `json:"total"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
