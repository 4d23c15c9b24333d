package repository

import (
	"errors"
	"time"

	leaddomain "leadscout-backend/internal/lead/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// processedEmailRepository implements ProcessedEmailRepository interface
type processedEmailRepository struct {
	db *gorm.DB
}

// NewProcessedEmailRepository creates a new instance of processedEmailRepository
func NewProcessedEmailRepository(db *gorm.DB) ProcessedEmailRepository {
	return &processedEmailRepository{
		db: db,
	}
}

func (r *processedEmailRepository) ProcessedIDs(emailIDs []string) (map[string]struct{}, error) {
	seen := make(map[string]struct{}, len(emailIDs))
	if len(emailIDs) == 0 {
		return seen, nil
	}

	var rows []leaddomain.ProcessedEmail
	if err := r.db.Where("email_id IN ?", emailIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		seen[row.EmailID] = struct{}{}
	}
	return seen, nil
}

// MarkProcessed looks the email up by its ID alone before inserting, so
// re-marking an already-marked email is a no-op.
func (r *processedEmailRepository) MarkProcessed(emailID string) error {
	var row leaddomain.ProcessedEmail
	err := r.db.Where("email_id = ?", emailID).First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		now := time.Now()
		row = leaddomain.ProcessedEmail{
			ID:          uuid.New().String(),
			EmailID:     emailID,
			ProcessedAt: now,
			CreatedAt:   now,
		}
		return r.db.Create(&row).Error
	}

	return err
}
