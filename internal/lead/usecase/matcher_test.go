package usecase

import (
	"testing"

	leaddomain "leadscout-backend/internal/lead/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(keyword, url string) leaddomain.ParsedPost {
	return leaddomain.ParsedPost{
		Keyword:   keyword,
		Kind:      leaddomain.PostKindPosts,
		Subreddit: "startups",
		Title:     "some post",
		URL:       url,
	}
}

func TestMatchPosts_BidirectionalContainment(t *testing.T) {
	businesses := []leaddomain.BusinessKeywords{
		{BusinessID: "biz-1", Keywords: []string{"saas tools"}},
	}

	tests := []struct {
		name        string
		postKeyword string
		wantMatch   bool
	}{
		{"post keyword inside business keyword", "SaaS", true},
		{"business keyword inside post keyword", "best saas tools 2025", true},
		{"case insensitive", "SAAS TOOLS", true},
		{"no overlap", "woodworking", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := MatchPosts([]leaddomain.ParsedPost{post(tt.postKeyword, "https://example.com/1")}, businesses)
			require.Len(t, matched, 1)
			if tt.wantMatch {
				assert.Equal(t, "biz-1", matched[0].BusinessID)
			} else {
				assert.Empty(t, matched[0].BusinessID)
			}
		})
	}
}

func TestMatchPosts_FirstMatchWins(t *testing.T) {
	businesses := []leaddomain.BusinessKeywords{
		{BusinessID: "biz-a", Keywords: []string{"invoicing"}},
		{BusinessID: "biz-b", Keywords: []string{"invoicing software"}},
	}

	matched := MatchPosts([]leaddomain.ParsedPost{post("invoicing", "https://example.com/2")}, businesses)
	require.Len(t, matched, 1)
	assert.Equal(t, "biz-a", matched[0].BusinessID)
}

func TestMatchPosts_EmptyKeywordMatchesNothing(t *testing.T) {
	businesses := []leaddomain.BusinessKeywords{
		{BusinessID: "biz-1", Keywords: []string{"anything"}},
	}

	matched := MatchPosts([]leaddomain.ParsedPost{post("", "https://example.com/3")}, businesses)
	require.Len(t, matched, 1)
	assert.Empty(t, matched[0].BusinessID)
}

func TestMatchPosts_UnmatchedPostsArePreserved(t *testing.T) {
	matched := MatchPosts([]leaddomain.ParsedPost{
		post("alpha", "https://example.com/4"),
		post("beta", "https://example.com/5"),
	}, nil)
	require.Len(t, matched, 2)
	assert.Empty(t, matched[0].BusinessID)
	assert.Empty(t, matched[1].BusinessID)
}

func TestDedupeByURL(t *testing.T) {
	url := "https://www.reddit.com/r/startups/comments/1/shared/"
	posts := []leaddomain.MatchedPost{
		{ParsedPost: post("first", url), BusinessID: "biz-a"},
		{ParsedPost: post("second", url), BusinessID: "biz-b"},
		{ParsedPost: post("third", "https://www.reddit.com/r/startups/comments/2/other/"), BusinessID: "biz-a"},
	}

	deduped, dropped := DedupeByURL(posts)
	require.Len(t, deduped, 2)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, "first", deduped[0].Keyword)
	assert.Equal(t, "biz-a", deduped[0].BusinessID)
	assert.Equal(t, "third", deduped[1].Keyword)
}
