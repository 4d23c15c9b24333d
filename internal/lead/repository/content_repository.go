package repository

import (
	"errors"
	"time"

	leaddomain "leadscout-backend/internal/lead/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contentRepository implements ContentRepository interface
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new instance of contentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{
		db: db,
	}
}

// UpsertBatch inserts records with update-on-conflict semantics keyed by
// the unique url column. A later detection of an already-stored URL updates
// the match fields in place; workflow fields (status) are left untouched.
func (r *contentRepository) UpsertBatch(records []*leaddomain.ContentRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	now := time.Now()
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		if rec.Status == "" {
			rec.Status = leaddomain.ContentStatusPending
		}
		rec.CreatedAt = now
		rec.UpdatedAt = now
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "url"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"business_id", "keyword", "type", "subreddit", "title",
			"content_body", "email_id", "email_date", "updated_at",
		}),
	}).Create(&records).Error
	if err != nil {
		return 0, err
	}

	return len(records), nil
}

func (r *contentRepository) List(businessID string, status leaddomain.ContentStatus, limit, offset int) ([]*leaddomain.ContentRecord, int64, error) {
	var records []*leaddomain.ContentRecord
	var total int64

	query := r.db.Model(&leaddomain.ContentRecord{})
	if businessID != "" {
		query = query.Where("business_id = ?", businessID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("email_date DESC").Limit(limit).Offset(offset).Find(&records).Error
	return records, total, err
}

func (r *contentRepository) ListAll() ([]*leaddomain.ContentRecord, error) {
	var records []*leaddomain.ContentRecord
	err := r.db.Order("email_date DESC").Find(&records).Error
	return records, err
}

func (r *contentRepository) FindByID(id string) (*leaddomain.ContentRecord, error) {
	var record leaddomain.ContentRecord
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *contentRepository) UpdateStatus(id string, status leaddomain.ContentStatus) error {
	return r.db.Model(&leaddomain.ContentRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
