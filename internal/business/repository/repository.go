package repository

import (
	businessdomain "leadscout-backend/internal/business/domain"
	leaddomain "leadscout-backend/internal/lead/domain"
)

// BusinessRepository defines persistence for businesses and their keyword
// sets.
type BusinessRepository interface {
	Create(business *businessdomain.Business) error
	FindByID(id string) (*businessdomain.Business, error)
	// List returns businesses newest first. The matcher relies on this
	// order for its first-match-wins policy.
	List() ([]*businessdomain.Business, error)
	// ReplaceKeywords overwrites the keyword list for a business.
	ReplaceKeywords(businessID string, keywords []string) error
	// KeywordSets returns every business's keyword list in List() order,
	// skipping businesses without keywords.
	KeywordSets() ([]leaddomain.BusinessKeywords, error)
}
