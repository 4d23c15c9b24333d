package domain

import "time"

// ProcessedEmail records digests that have already been parsed, so repeated
// fetches of the same mailbox do not reprocess them. Write-once, keyed by
// the provider's email ID.
type ProcessedEmail struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	EmailID     string    `json:"email_id" gorm:"uniqueIndex;not null"`
	ProcessedAt time.Time `json:"processed_at"`
	CreatedAt   time.Time `json:"created_at"`
}
