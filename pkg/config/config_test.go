package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "INBOX", cfg.IMAPMailbox)
	assert.Equal(t, int64(100), cfg.GmailFetchLimit)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GMAIL_FETCH_LIMIT", "5")
	t.Setenv("IMAP_HOST", "imap.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(5), cfg.GmailFetchLimit)
	assert.Equal(t, "imap.example.com", cfg.IMAPHost)
}
