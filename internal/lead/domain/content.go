package domain

import "time"

// ContentStatus tracks a lead record through the review workflow.
type ContentStatus string

const (
	ContentStatusPending     ContentStatus = "pending"
	ContentStatusReplied     ContentStatus = "replied"
	ContentStatusNotRelevant ContentStatus = "not_relevant"
)

// ContentRecord is a persisted Reddit lead. One row per canonical URL; the
// unique index on URL backs the upsert that deduplicates repeated
// detections. Records are updated in place by the review workflow and are
// never deleted here.
type ContentRecord struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	BusinessID  string        `json:"business_id" gorm:"index;not null"`
	Keyword     string        `json:"keyword"`
	Type        string        `json:"type"`
	Subreddit   string        `json:"subreddit"`
	Title       string        `json:"title"`
	URL         string        `json:"url" gorm:"uniqueIndex;not null"`
	ContentBody string        `json:"content_body"`
	EmailID     string        `json:"email_id"`
	EmailDate   time.Time     `json:"email_date"`
	Status      ContentStatus `json:"status" gorm:"default:pending"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
