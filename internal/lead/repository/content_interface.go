package repository

import leaddomain "leadscout-backend/internal/lead/domain"

// ContentRepository defines persistence for Reddit lead records.
type ContentRepository interface {
	// UpsertBatch writes records keyed by their unique URL, updating the
	// match fields of an existing row on conflict. Returns the number of
	// rows written.
	UpsertBatch(records []*leaddomain.ContentRecord) (int, error)
	// List returns records newest-email-first, optionally filtered by
	// business and status.
	List(businessID string, status leaddomain.ContentStatus, limit, offset int) ([]*leaddomain.ContentRecord, int64, error)
	// ListAll returns every record, for in-memory search.
	ListAll() ([]*leaddomain.ContentRecord, error)
	FindByID(id string) (*leaddomain.ContentRecord, error)
	UpdateStatus(id string, status leaddomain.ContentStatus) error
}
