package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DatabaseURL        string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSSLMode          string
	GoogleClientID     string
	GoogleClientSecret string
	GmailFetchLimit    int64
	IMAPHost           string
	IMAPPort           string
	IMAPUsername       string
	IMAPPassword       string
	IMAPMailbox        string
	IMAPFetchLimit     uint32
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	gmailLimit := int64(100)
	if v := os.Getenv("GMAIL_FETCH_LIMIT"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			gmailLimit = parsed
		}
	}

	imapLimit := uint32(100)
	if v := os.Getenv("IMAP_FETCH_LIMIT"); v != "" {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			imapLimit = uint32(parsed)
		}
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", "postgres"),
		DBName:             getEnv("DB_NAME", "leadscout"),
		DBSSLMode:          getEnv("DB_SSLMODE", "disable"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GmailFetchLimit:    gmailLimit,
		IMAPHost:           getEnv("IMAP_HOST", ""),
		IMAPPort:           getEnv("IMAP_PORT", "993"),
		IMAPUsername:       getEnv("IMAP_USERNAME", ""),
		IMAPPassword:       getEnv("IMAP_PASSWORD", ""),
		IMAPMailbox:        getEnv("IMAP_MAILBOX", "INBOX"),
		IMAPFetchLimit:     imapLimit,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
