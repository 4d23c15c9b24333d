package gmail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"time"

	"leadscout-backend/internal/lead/domain"
	"leadscout-backend/pkg/logging"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

type TokenUpdateFunc = domain.TokenUpdateFunc

// Service talks to the Gmail API on behalf of the connected digest mailbox.
type Service struct {
	clientID     string
	clientSecret string
}

type notifyTokenSource struct {
	src      oauth2.TokenSource
	current  *oauth2.Token
	callback TokenUpdateFunc
}

func (s *notifyTokenSource) Token() (*oauth2.Token, error) {
	t, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	if s.callback != nil && s.current.AccessToken != t.AccessToken {
		s.current = t
		if err := s.callback(t); err != nil {
			logging.Log.Warnf("failed to store refreshed token: %v", err)
		}
	}
	return t, nil
}

func NewService(clientID, clientSecret string) *Service {
	return &Service{
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// getGmailService creates a Gmail client from the stored tokens. Refreshed
// tokens are reported through onTokenRefresh so they can be written back.
func (s *Service) getGmailService(ctx context.Context, accessToken, refreshToken string, onTokenRefresh TokenUpdateFunc) (*gmail.Service, error) {
	token := &oauth2.Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}

	// Only force refresh if we have a refresh token
	if refreshToken != "" {
		token.Expiry = time.Now()
	}

	config := &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		Endpoint:     google.Endpoint,
	}

	wrappedSource := &notifyTokenSource{
		src:      config.TokenSource(ctx, token),
		current:  token,
		callback: onTokenRefresh,
	}

	client := oauth2.NewClient(ctx, wrappedSource)

	srv, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %v", err)
	}

	return srv, nil
}

// FetchRecent retrieves up to limit recent messages from the connected
// mailbox as plain-text RawEmails, newest first. Messages whose details
// cannot be fetched are skipped.
func (s *Service) FetchRecent(ctx context.Context, accessToken, refreshToken string, limit int64, onTokenRefresh TokenUpdateFunc) ([]domain.RawEmail, error) {
	srv, err := s.getGmailService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, err
	}

	user := "me"

	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500 // Gmail API maximum
	}

	listResp, err := srv.Users.Messages.List(user).MaxResults(limit).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve messages: %v", err)
	}
	if len(listResp.Messages) == 0 {
		return []domain.RawEmail{}, nil
	}

	type emailResult struct {
		email *domain.RawEmail
		err   error
	}

	emailChan := make(chan emailResult, len(listResp.Messages))

	// Fetch full messages in parallel with a small concurrency cap.
	semaphore := make(chan struct{}, 10)

	for _, msg := range listResp.Messages {
		go func(msgID string) {
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			fullMsg, err := srv.Users.Messages.Get(user, msgID).Format("full").Do()
			if err != nil {
				emailChan <- emailResult{nil, err}
				return
			}

			emailChan <- emailResult{convertMessage(fullMsg), nil}
		}(msg.Id)
	}

	emails := make([]domain.RawEmail, 0, len(listResp.Messages))
	for i := 0; i < len(listResp.Messages); i++ {
		result := <-emailChan
		if result.err != nil {
			logging.Log.Warnf("skipping unfetchable message: %v", result.err)
			continue
		}
		emails = append(emails, *result.email)
	}

	// Parallel fetching returns messages in random order.
	sort.Slice(emails, func(i, j int) bool {
		return emails[i].Date.After(emails[j].Date)
	})

	return emails, nil
}

// ValidateToken validates the access token by making a simple API call.
func (s *Service) ValidateToken(ctx context.Context, accessToken, refreshToken string, onTokenRefresh TokenUpdateFunc) error {
	srv, err := s.getGmailService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return err
	}

	_, err = srv.Users.GetProfile("me").Do()
	if err != nil {
		return errors.New("invalid or expired access token")
	}

	return nil
}

func convertMessage(msg *gmail.Message) *domain.RawEmail {
	return &domain.RawEmail{
		ID:      msg.Id,
		Subject: getHeader(msg.Payload.Headers, "Subject"),
		Body:    getPlainTextBody(msg.Payload),
		Date:    time.Unix(msg.InternalDate/1000, 0),
	}
}

func getHeader(headers []*gmail.MessagePartHeader, name string) string {
	for _, header := range headers {
		if header.Name == name {
			return header.Value
		}
	}
	return ""
}

// getPlainTextBody extracts the text/plain part of a message. F5Bot digests
// carry the parseable content in the plain-text part; the HTML part is only
// a fallback for messages that have no plain text at all.
func getPlainTextBody(payload *gmail.MessagePart) string {
	// Single-part message: the payload is the body.
	if payload.Body != nil && payload.Body.Data != "" && len(payload.Parts) == 0 {
		if data, err := base64.URLEncoding.DecodeString(payload.Body.Data); err == nil {
			return string(data)
		}
	}

	var plainBody string
	var htmlBody string

	var findBody func(parts []*gmail.MessagePart)
	findBody = func(parts []*gmail.MessagePart) {
		for _, part := range parts {
			if part.Body != nil && part.Body.Data != "" {
				if data, err := base64.URLEncoding.DecodeString(part.Body.Data); err == nil {
					switch part.MimeType {
					case "text/plain":
						if plainBody == "" {
							plainBody = string(data)
						}
					case "text/html":
						if htmlBody == "" {
							htmlBody = string(data)
						}
					}
				}
			}
			if len(part.Parts) > 0 {
				findBody(part.Parts)
			}
		}
	}

	findBody(payload.Parts)

	if plainBody != "" {
		return plainBody
	}
	return htmlBody
}
