package domain

import "time"

// GmailConnection holds the OAuth tokens for the mailbox that receives F5Bot
// digests. The consent flow happens outside this service; tokens are posted
// in and refreshed tokens are written back by the provider.
type GmailConnection struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"-" gorm:"not null"`
	RefreshToken string    `json:"-"`
	TokenType    string    `json:"-"`
	ExpiryDate   time.Time `json:"expiry_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
