package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	businessrepo "leadscout-backend/internal/business/repository"
	leaddomain "leadscout-backend/internal/lead/domain"
	"leadscout-backend/internal/lead/repository"
	"leadscout-backend/pkg/config"
	"leadscout-backend/pkg/f5bot"
	"leadscout-backend/pkg/fuzzy"
	"leadscout-backend/pkg/logging"
)

// leadUsecase implements LeadUsecase interface
type leadUsecase struct {
	contentRepo   repository.ContentRepository
	processedRepo repository.ProcessedEmailRepository
	connRepo      repository.GmailConnectionRepository
	businessRepo  businessrepo.BusinessRepository
	gmailProvider GmailProvider
	imapProvider  IMAPProvider
	config        *config.Config
}

// NewLeadUsecase creates a new instance of leadUsecase
func NewLeadUsecase(contentRepo repository.ContentRepository, processedRepo repository.ProcessedEmailRepository, connRepo repository.GmailConnectionRepository, businessRepo businessrepo.BusinessRepository, gmailProvider GmailProvider, imapProvider IMAPProvider, cfg *config.Config) LeadUsecase {
	return &leadUsecase{
		contentRepo:   contentRepo,
		processedRepo: processedRepo,
		connRepo:      connRepo,
		businessRepo:  businessRepo,
		gmailProvider: gmailProvider,
		imapProvider:  imapProvider,
		config:        cfg,
	}
}

// FetchAndProcess is synchronous and runs to completion; a failing mail
// fetch or database write aborts the run and propagates to the caller.
// Malformed digest content never does.
func (u *leadUsecase) FetchAndProcess(ctx context.Context) (*RunSummary, error) {
	emails, err := u.fetchEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch emails: %w", err)
	}

	// Narrow down to F5Bot digests not yet in the processed ledger.
	var digests []leaddomain.RawEmail
	var digestIDs []string
	for _, email := range emails {
		if f5bot.IsDigest(email) {
			digests = append(digests, email)
			digestIDs = append(digestIDs, email.ID)
		}
	}

	processed, err := u.processedRepo.ProcessedIDs(digestIDs)
	if err != nil {
		return nil, fmt.Errorf("load processed ledger: %w", err)
	}

	var newDigests []leaddomain.RawEmail
	for _, digest := range digests {
		if _, ok := processed[digest.ID]; !ok {
			newDigests = append(newDigests, digest)
		}
	}

	summary := &RunSummary{EmailsFetched: len(emails), NewDigests: len(newDigests)}

	var posts []leaddomain.ParsedPost
	keywords := make(map[string]struct{})
	for _, digest := range newDigests {
		parsed := f5bot.Parse(digest)
		posts = append(posts, parsed...)
		for _, p := range parsed {
			if p.Keyword != "" {
				keywords[p.Keyword] = struct{}{}
			}
		}
	}
	summary.PostsParsed = len(posts)
	for kw := range keywords {
		summary.Keywords = append(summary.Keywords, kw)
	}
	sort.Strings(summary.Keywords)

	businesses, err := u.businessRepo.KeywordSets()
	if err != nil {
		return nil, fmt.Errorf("load business keywords: %w", err)
	}

	matched := MatchPosts(posts, businesses)
	summary.Posts = matched
	for _, post := range matched {
		if post.BusinessID != "" {
			summary.PostsMatched++
		}
	}

	deduped, dropped := DedupeByURL(matched)
	summary.DuplicatesDropped = dropped

	var records []*leaddomain.ContentRecord
	for _, post := range deduped {
		if post.BusinessID == "" {
			continue
		}
		records = append(records, &leaddomain.ContentRecord{
			BusinessID:  post.BusinessID,
			Keyword:     post.Keyword,
			Type:        post.Kind,
			Subreddit:   post.Subreddit,
			Title:       post.Title,
			URL:         post.URL,
			ContentBody: post.Body,
			EmailID:     post.SourceEmailID,
			EmailDate:   post.SourceEmailDate,
		})
	}

	saved, err := u.contentRepo.UpsertBatch(records)
	if err != nil {
		return nil, fmt.Errorf("save lead records: %w", err)
	}
	summary.RecordsSaved = saved

	// Mark every new digest as processed, including ones that yielded no
	// posts, so they are not re-parsed on the next fetch.
	for _, digest := range newDigests {
		if err := u.processedRepo.MarkProcessed(digest.ID); err != nil {
			return nil, fmt.Errorf("mark email %s processed: %w", digest.ID, err)
		}
	}

	logging.Log.WithFields(map[string]interface{}{
		"emails_fetched":     summary.EmailsFetched,
		"new_digests":        summary.NewDigests,
		"posts_parsed":       summary.PostsParsed,
		"posts_matched":      summary.PostsMatched,
		"duplicates_dropped": summary.DuplicatesDropped,
		"records_saved":      summary.RecordsSaved,
	}).Info("fetch-and-process run complete")

	return summary, nil
}

func (u *leadUsecase) fetchEmails(ctx context.Context) ([]leaddomain.RawEmail, error) {
	conn, err := u.connRepo.Get()
	if err != nil {
		return nil, err
	}

	if conn != nil {
		return u.gmailProvider.FetchRecent(ctx, conn.AccessToken, conn.RefreshToken, u.config.GmailFetchLimit, u.connRepo.UpdateTokens)
	}

	if u.imapProvider != nil && u.imapProvider.Configured() {
		return u.imapProvider.FetchRecent(ctx, u.config.IMAPFetchLimit)
	}

	return nil, errors.New("no mail source configured: connect Gmail or set IMAP credentials")
}

func (u *leadUsecase) ListLeads(businessID string, status leaddomain.ContentStatus, limit, offset int) ([]*leaddomain.ContentRecord, int64, error) {
	return u.contentRepo.List(businessID, status, limit, offset)
}

func (u *leadUsecase) UpdateLeadStatus(id string, status leaddomain.ContentStatus) error {
	switch status {
	case leaddomain.ContentStatusPending, leaddomain.ContentStatusReplied, leaddomain.ContentStatusNotRelevant:
	default:
		return fmt.Errorf("invalid status %q", status)
	}

	record, err := u.contentRepo.FindByID(id)
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("lead %s not found", id)
	}

	return u.contentRepo.UpdateStatus(id, status)
}

func (u *leadUsecase) SearchLeads(query string, limit int) ([]*leaddomain.ContentRecord, error) {
	records, err := u.contentRepo.ListAll()
	if err != nil {
		return nil, err
	}

	type scored struct {
		record *leaddomain.ContentRecord
		score  float64
	}

	var hits []scored
	for _, record := range records {
		if fuzzy.MatchLead(query, record.Title, record.Subreddit, record.Keyword, record.ContentBody) {
			hits = append(hits, scored{
				record: record,
				score:  fuzzy.ScoreLead(query, record.Title, record.Subreddit, record.Keyword),
			})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	results := make([]*leaddomain.ContentRecord, len(hits))
	for i, hit := range hits {
		results[i] = hit.record
	}
	return results, nil
}

func (u *leadUsecase) ConnectGmail(ctx context.Context, conn *leaddomain.GmailConnection) error {
	if conn.AccessToken == "" {
		return errors.New("access token is required")
	}

	if err := u.gmailProvider.ValidateToken(ctx, conn.AccessToken, conn.RefreshToken, nil); err != nil {
		return fmt.Errorf("gmail token rejected: %w", err)
	}

	return u.connRepo.Save(conn)
}

func (u *leadUsecase) GmailStatus() (*leaddomain.GmailConnection, error) {
	return u.connRepo.Get()
}
