package usecase

import (
	"errors"
	"fmt"

	businessdomain "leadscout-backend/internal/business/domain"
	"leadscout-backend/internal/business/repository"
	leaddomain "leadscout-backend/internal/lead/domain"
)

// BusinessUsecase defines the business administration use cases.
type BusinessUsecase interface {
	CreateBusiness(name string, keywords []string) (*businessdomain.Business, error)
	ListBusinesses() ([]*businessdomain.Business, map[string][]string, error)
	ReplaceKeywords(businessID string, keywords []string) error
	KeywordSets() ([]leaddomain.BusinessKeywords, error)
}

// businessUsecase implements BusinessUsecase interface
type businessUsecase struct {
	businessRepo repository.BusinessRepository
}

// NewBusinessUsecase creates a new instance of businessUsecase
func NewBusinessUsecase(businessRepo repository.BusinessRepository) BusinessUsecase {
	return &businessUsecase{
		businessRepo: businessRepo,
	}
}

func (u *businessUsecase) CreateBusiness(name string, keywords []string) (*businessdomain.Business, error) {
	if name == "" {
		return nil, errors.New("business name is required")
	}

	business := &businessdomain.Business{Name: name}
	if err := u.businessRepo.Create(business); err != nil {
		return nil, err
	}

	if len(keywords) > 0 {
		if err := u.businessRepo.ReplaceKeywords(business.ID, keywords); err != nil {
			return nil, err
		}
	}

	return business, nil
}

func (u *businessUsecase) ListBusinesses() ([]*businessdomain.Business, map[string][]string, error) {
	businesses, err := u.businessRepo.List()
	if err != nil {
		return nil, nil, err
	}

	sets, err := u.businessRepo.KeywordSets()
	if err != nil {
		return nil, nil, err
	}

	keywords := make(map[string][]string, len(sets))
	for _, set := range sets {
		keywords[set.BusinessID] = set.Keywords
	}

	return businesses, keywords, nil
}

func (u *businessUsecase) ReplaceKeywords(businessID string, keywords []string) error {
	business, err := u.businessRepo.FindByID(businessID)
	if err != nil {
		return err
	}
	if business == nil {
		return fmt.Errorf("business %s not found", businessID)
	}

	return u.businessRepo.ReplaceKeywords(businessID, keywords)
}

func (u *businessUsecase) KeywordSets() ([]leaddomain.BusinessKeywords, error) {
	return u.businessRepo.KeywordSets()
}
