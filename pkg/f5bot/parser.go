package f5bot

import (
	"net/url"
	"regexp"
	"strings"

	"leadscout-backend/internal/lead/domain"
	"leadscout-backend/pkg/logging"
)

// SubjectMarker identifies F5Bot digest emails. Anything else yields no
// posts and no error.
const SubjectMarker = "F5Bot found something"

var (
	keywordRe = regexp.MustCompile(`Keyword: "([^"]+)"`)
	postRe    = regexp.MustCompile(`Reddit Posts \(/r/([^)]+)\): `)
	urlRe     = regexp.MustCompile(`https://[^\s]+`)
)

// Lines that start the digest footer. Body reassembly stops here.
var footerMarkers = []string{
	"Do you have comments",
	"You are receiving this email",
}

// IsDigest reports whether the email is an F5Bot digest.
func IsDigest(email domain.RawEmail) bool {
	return strings.Contains(email.Subject, SubjectMarker)
}

// Parse scans an F5Bot digest body and reconstructs one ParsedPost per
// recognized Reddit post announcement, in order of appearance. It is a pure
// function over the email; malformed blocks are skipped, never fatal.
//
// The digest format interleaves "Keyword:" lines with announcement blocks.
// A keyword line applies to every announcement until the next keyword line.
// Reddit comment announcements are skipped; only posts are collected.
func Parse(email domain.RawEmail) []domain.ParsedPost {
	if !IsDigest(email) {
		return nil
	}

	lines := strings.Split(email.Body, "\n")
	var posts []domain.ParsedPost
	currentKeyword := ""

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		if strings.HasPrefix(trimmed, "Keyword:") {
			if m := keywordRe.FindStringSubmatch(trimmed); m != nil {
				// F5Bot can list several keywords in one line; only the
				// first one is kept.
				currentKeyword = strings.TrimSpace(strings.SplitN(m[1], ",", 2)[0])
			}
			continue
		}

		// Comment announcements lack the word "Posts" and fall through here.
		if !strings.Contains(lines[i], "Reddit Posts") || !strings.Contains(lines[i], "/r/") {
			continue
		}
		m := postRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		subreddit := m[1]
		title := titleAfterSeparator(lines[i])

		// The post URL must be on the immediately following line, otherwise
		// the whole block is dropped.
		if i+1 >= len(lines) {
			break
		}
		rawURL := urlRe.FindString(lines[i+1])
		if rawURL == "" {
			logging.Log.WithField("email_id", email.ID).
				Debugf("post block %q has no URL line, dropping", title)
			continue
		}

		body, next := reassembleBody(lines, i+2)

		posts = append(posts, domain.ParsedPost{
			Keyword:         currentKeyword,
			Kind:            domain.PostKindPosts,
			Subreddit:       subreddit,
			Title:           title,
			URL:             unwrapRedirect(rawURL, email.ID),
			Body:            body,
			SourceEmailID:   email.ID,
			SourceEmailDate: email.Date,
		})

		// Body lines are consumed; resume at the terminating line so a
		// "Keyword:" terminator is still seen by the walk.
		i = next - 1
	}

	return posts
}

// titleAfterSeparator returns the title portion of an announcement line. The
// subreddit part always ends in "): " and titles occasionally contain the
// same separator, so the split happens at its last occurrence.
func titleAfterSeparator(line string) string {
	idx := strings.LastIndex(line, "): ")
	return strings.TrimSpace(line[idx+3:])
}

// reassembleBody joins the trimmed non-empty lines starting at start until a
// "Keyword:" line, another announcement line, a footer marker or the end of
// input. Empty lines are skipped but do not terminate the body. Returns the
// body and the index of the line that terminated it, so the main walk can
// re-examine that line.
func reassembleBody(lines []string, start int) (string, int) {
	var parts []string
	i := start
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "Keyword:") || isAnnouncement(trimmed) || isFooter(trimmed) {
			break
		}
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, " "), i
}

// isAnnouncement matches both post and comment announcement lines.
func isAnnouncement(line string) bool {
	return strings.Contains(line, "Reddit") && strings.Contains(line, "(/r/")
}

func isFooter(line string) bool {
	for _, marker := range footerMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// unwrapRedirect recovers the real destination from a click-tracking
// redirect URL. F5Bot wraps post links in a tracker that carries the target
// in the "u" query parameter. Failures fall back to the wrapped URL.
func unwrapRedirect(rawURL, emailID string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		logging.Log.WithField("email_id", emailID).
			Debugf("unparseable post URL %q, keeping as-is", rawURL)
		return rawURL
	}

	// Direct reddit links need no unwrapping.
	if strings.HasSuffix(u.Hostname(), "reddit.com") {
		return rawURL
	}

	target := u.Query().Get("u")
	if target == "" {
		return rawURL
	}

	if parsed, err := url.Parse(target); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		logging.Log.WithField("email_id", emailID).
			Warnf("redirect target %q is not a valid URL, keeping %q", target, rawURL)
		return rawURL
	}

	return target
}
