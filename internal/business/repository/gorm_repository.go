package repository

import (
	"errors"
	"time"

	businessdomain "leadscout-backend/internal/business/domain"
	leaddomain "leadscout-backend/internal/lead/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormBusinessRepository implements BusinessRepository using GORM
type gormBusinessRepository struct {
	db *gorm.DB
}

// NewGormBusinessRepository creates a new GORM-based BusinessRepository
func NewGormBusinessRepository(db *gorm.DB) BusinessRepository {
	return &gormBusinessRepository{db: db}
}

func (r *gormBusinessRepository) Create(business *businessdomain.Business) error {
	if business.ID == "" {
		business.ID = uuid.New().String()
	}
	business.CreatedAt = time.Now()
	business.UpdatedAt = time.Now()
	return r.db.Create(business).Error
}

func (r *gormBusinessRepository) FindByID(id string) (*businessdomain.Business, error) {
	var business businessdomain.Business
	err := r.db.Where("id = ?", id).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

func (r *gormBusinessRepository) List() ([]*businessdomain.Business, error) {
	var businesses []*businessdomain.Business
	err := r.db.Order("created_at DESC").Find(&businesses).Error
	return businesses, err
}

func (r *gormBusinessRepository) ReplaceKeywords(businessID string, keywords []string) error {
	var set businessdomain.KeywordSet
	err := r.db.Where("business_id = ?", businessID).First(&set).Error

	now := time.Now()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		set = businessdomain.KeywordSet{
			ID:         uuid.New().String(),
			BusinessID: businessID,
			Keywords:   keywords,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return r.db.Create(&set).Error
	} else if err != nil {
		return err
	}

	set.Keywords = keywords
	set.UpdatedAt = now
	return r.db.Save(&set).Error
}

func (r *gormBusinessRepository) KeywordSets() ([]leaddomain.BusinessKeywords, error) {
	businesses, err := r.List()
	if err != nil {
		return nil, err
	}

	var sets []businessdomain.KeywordSet
	if err := r.db.Find(&sets).Error; err != nil {
		return nil, err
	}

	byBusiness := make(map[string][]string, len(sets))
	for _, set := range sets {
		byBusiness[set.BusinessID] = set.Keywords
	}

	// Preserve List() order; the matcher's first-match-wins policy depends
	// on it.
	result := make([]leaddomain.BusinessKeywords, 0, len(businesses))
	for _, business := range businesses {
		keywords := byBusiness[business.ID]
		if len(keywords) == 0 {
			continue
		}
		result = append(result, leaddomain.BusinessKeywords{
			BusinessID: business.ID,
			Keywords:   keywords,
		})
	}
	return result, nil
}
