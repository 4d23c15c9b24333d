package imap

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"leadscout-backend/internal/lead/domain"
	"leadscout-backend/pkg/logging"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-message/mail"
)

// Service is the IMAP fallback mail provider for setups without a Gmail
// connection. Each fetch opens a fresh session: connect, select, fetch the
// newest messages, logout.
type Service struct {
	host     string
	port     string
	username string
	password string
	mailbox  string
}

func NewService(host, port, username, password, mailbox string) *Service {
	if mailbox == "" {
		mailbox = "INBOX"
	}
	return &Service{
		host:     host,
		port:     port,
		username: username,
		password: password,
		mailbox:  mailbox,
	}
}

// Configured reports whether IMAP credentials are present.
func (s *Service) Configured() bool {
	return s.host != "" && s.username != ""
}

// FetchRecent retrieves up to limit of the newest messages in the configured
// mailbox as plain-text RawEmails, newest first. Messages that cannot be
// parsed are skipped.
func (s *Service) FetchRecent(ctx context.Context, limit uint32) ([]domain.RawEmail, error) {
	cl, err := client.DialTLS(s.host+":"+s.port, nil)
	if err != nil {
		return nil, fmt.Errorf("IMAP connection error: %w", err)
	}
	defer cl.Logout()

	if err := cl.Login(s.username, s.password); err != nil {
		return nil, fmt.Errorf("IMAP login error: %w", err)
	}

	mbox, err := cl.Select(s.mailbox, true)
	if err != nil {
		return nil, fmt.Errorf("unable to select mailbox %s: %w", s.mailbox, err)
	}
	if mbox.Messages == 0 {
		return []domain.RawEmail{}, nil
	}

	if limit == 0 {
		limit = 100
	}
	from := uint32(1)
	if mbox.Messages > limit {
		from = mbox.Messages - limit + 1
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddRange(from, mbox.Messages)

	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{section.FetchItem(), imap.FetchInternalDate, imap.FetchUid}

	messages := make(chan *imap.Message, limit)
	done := make(chan error, 1)
	go func() {
		done <- cl.Fetch(seqSet, items, messages)
	}()

	var emails []domain.RawEmail
	for msg := range messages {
		email, err := parseMessage(msg, section)
		if err != nil {
			logging.Log.Warnf("skipping unparseable IMAP message UID %d: %v", msg.Uid, err)
			continue
		}
		emails = append(emails, *email)
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("error fetching messages: %w", err)
	}

	// Newest first, matching the Gmail provider.
	for i, j := 0, len(emails)-1; i < j; i, j = i+1, j-1 {
		emails[i], emails[j] = emails[j], emails[i]
	}

	return emails, nil
}

func parseMessage(msg *imap.Message, section *imap.BodySectionName) (*domain.RawEmail, error) {
	r := msg.GetBody(section)
	if r == nil {
		return nil, io.EOF
	}

	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, err
	}

	header := mr.Header

	email := &domain.RawEmail{
		ID:      strings.Trim(header.Get("Message-Id"), "<>"),
		Subject: header.Get("Subject"),
		Date:    msg.InternalDate,
	}
	if email.ID == "" {
		email.ID = fmt.Sprintf("imap-%d", msg.Uid)
	}
	if email.Date.IsZero() {
		if d, err := header.Date(); err == nil {
			email.Date = d
		} else {
			email.Date = time.Now()
		}
	}

	// Take the first text/plain part.
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if h, ok := p.Header.(*mail.InlineHeader); ok {
			contentType, _, err := h.ContentType()
			if err != nil {
				continue
			}
			if contentType == "text/plain" {
				body, err := io.ReadAll(p.Body)
				if err != nil {
					continue
				}
				email.Body = string(body)
				break
			}
		}
	}

	return email, nil
}
