package domain

import "time"

// Business is a tenant whose leads are collected.
type Business struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// KeywordSet is the lead keyword list for one business, managed by
// administrators and read by the matcher.
type KeywordSet struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	BusinessID string    `json:"business_id" gorm:"uniqueIndex;not null"`
	Keywords   []string  `json:"keywords" gorm:"serializer:json"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
