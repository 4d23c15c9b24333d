package repository

import (
	leaddomain "leadscout-backend/internal/lead/domain"

	"golang.org/x/oauth2"
)

// GmailConnectionRepository stores the OAuth tokens for the digest mailbox.
// A single connection row is kept; saving replaces it.
type GmailConnectionRepository interface {
	Get() (*leaddomain.GmailConnection, error)
	Save(conn *leaddomain.GmailConnection) error
	// UpdateTokens writes back tokens refreshed by the mail provider.
	UpdateTokens(token *oauth2.Token) error
}
