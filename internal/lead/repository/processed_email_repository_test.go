package repository

import (
	"testing"

	leaddomain "leadscout-backend/internal/lead/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&leaddomain.ProcessedEmail{}))
	return db
}

func TestMarkProcessed_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewProcessedEmailRepository(db)

	require.NoError(t, repo.MarkProcessed("email-1"))
	require.NoError(t, repo.MarkProcessed("email-1"), "re-marking must not error")

	var count int64
	require.NoError(t, db.Model(&leaddomain.ProcessedEmail{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProcessedIDs(t *testing.T) {
	repo := NewProcessedEmailRepository(newTestDB(t))

	require.NoError(t, repo.MarkProcessed("email-1"))

	seen, err := repo.ProcessedIDs([]string{"email-1", "email-2"})
	require.NoError(t, err)
	assert.Contains(t, seen, "email-1")
	assert.NotContains(t, seen, "email-2")

	empty, err := repo.ProcessedIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
