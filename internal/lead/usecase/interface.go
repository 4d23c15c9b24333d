package usecase

import (
	"context"

	leaddomain "leadscout-backend/internal/lead/domain"
)

// RunSummary reports what one fetch-and-process run did.
type RunSummary struct {
	EmailsFetched     int                      `json:"emails_fetched"`
	NewDigests        int                      `json:"new_digests"`
	PostsParsed       int                      `json:"posts_parsed"`
	PostsMatched      int                      `json:"posts_matched"`
	DuplicatesDropped int                      `json:"duplicates_dropped"`
	RecordsSaved      int                      `json:"records_saved"`
	Keywords          []string                 `json:"keywords"`
	Posts             []leaddomain.MatchedPost `json:"posts"`
}

// LeadUsecase defines the lead discovery use cases.
type LeadUsecase interface {
	// FetchAndProcess runs the pipeline once: fetch recent mail, filter to
	// unprocessed F5Bot digests, parse, match against business keywords,
	// dedupe by canonical URL, persist and mark the digests processed.
	FetchAndProcess(ctx context.Context) (*RunSummary, error)
	ListLeads(businessID string, status leaddomain.ContentStatus, limit, offset int) ([]*leaddomain.ContentRecord, int64, error)
	UpdateLeadStatus(id string, status leaddomain.ContentStatus) error
	SearchLeads(query string, limit int) ([]*leaddomain.ContentRecord, error)
	ConnectGmail(ctx context.Context, conn *leaddomain.GmailConnection) error
	GmailStatus() (*leaddomain.GmailConnection, error)
}

// GmailProvider is the primary mail source.
type GmailProvider interface {
	leaddomain.MailProvider
	ValidateToken(ctx context.Context, accessToken, refreshToken string, onTokenRefresh leaddomain.TokenUpdateFunc) error
}

// IMAPProvider is the fallback mail source for setups without Gmail tokens.
type IMAPProvider interface {
	Configured() bool
	FetchRecent(ctx context.Context, limit uint32) ([]leaddomain.RawEmail, error)
}
