package dto

import businessdomain "leadscout-backend/internal/business/domain"

type CreateBusinessRequest struct {
	Name     string   `json:"name" binding:"required"`
	Keywords []string `json:"keywords"`
}

type UpdateKeywordsRequest struct {
	Keywords []string `json:"keywords" binding:"required"`
}

type BusinessResponse struct {
	Business *businessdomain.Business `json:"business"`
	Keywords []string                 `json:"keywords"`
}

type BusinessesResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}
