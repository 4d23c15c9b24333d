package domain

import "time"

// PostKindPosts is the only announcement kind the digest parser emits.
// F5Bot also announces Reddit comments; those are skipped on purpose.
const PostKindPosts = "posts"

// ParsedPost is one Reddit post announcement reconstructed from an F5Bot
// digest email. URL is always the de-redirected canonical form.
type ParsedPost struct {
	Keyword         string    `json:"keyword"`
	Kind            string    `json:"kind"`
	Subreddit       string    `json:"subreddit"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	Body            string    `json:"body"`
	SourceEmailID   string    `json:"source_email_id"`
	SourceEmailDate time.Time `json:"source_email_date"`
}

// MatchedPost is a ParsedPost after business assignment. BusinessID is empty
// when no business keyword matched; such posts are kept in the run output
// for inspection but are never persisted.
type MatchedPost struct {
	ParsedPost
	BusinessID string `json:"business_id"`
}

// BusinessKeywords is one business's lead keyword list. The matcher receives
// these as an ordered slice; first match wins, so the order is part of the
// assignment policy.
type BusinessKeywords struct {
	BusinessID string   `json:"business_id"`
	Keywords   []string `json:"keywords"`
}
