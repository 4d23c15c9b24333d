package domain

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// TokenUpdateFunc is called when a mail provider refreshes an OAuth token,
// so the new token can be written back to storage.
type TokenUpdateFunc func(token *oauth2.Token) error

// RawEmail is a plain-text email as returned by a mail provider. The body is
// the decoded text/plain part of the message; F5Bot sends its digests as
// plain text.
type RawEmail struct {
	ID      string    `json:"id"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Date    time.Time `json:"date"`
}

// MailProvider fetches recent emails for the connected account.
type MailProvider interface {
	FetchRecent(ctx context.Context, accessToken, refreshToken string, limit int64, onTokenRefresh TokenUpdateFunc) ([]RawEmail, error)
}
