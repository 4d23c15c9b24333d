package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, LevenshteinDistance("crm", "crm"))
	assert.Equal(t, 0, LevenshteinDistance("CRM", "crm"))
	assert.Equal(t, 1, LevenshteinDistance("saas", "sass"))
	assert.Equal(t, 3, LevenshteinDistance("", "crm"))
	assert.Equal(t, 3, LevenshteinDistance("kitten", "sitting"))
}

func TestFuzzyMatch(t *testing.T) {
	assert.True(t, FuzzyMatch("invoicing", "Need an invoicing tool", 2), "substring match")
	assert.True(t, FuzzyMatch("invoice", "Need an invoicing tool", 3), "word distance within threshold")
	assert.False(t, FuzzyMatch("invoice", "Need an invoicing tool", 2), "word distance 3 exceeds threshold")
	assert.True(t, FuzzyMatch("invocie", "invoice software", 2), "transposition within threshold")
	assert.True(t, FuzzyMatch("inv", "invoice software", 1), "prefix match")
	assert.True(t, FuzzyMatch("invoce", "invoice", 0), "short text overall distance tolerance")
	assert.False(t, FuzzyMatch("kubernetes", "Need an invoicing tool", 2))
}

func TestMatchLead(t *testing.T) {
	title := "Looking for a project management tool"
	subreddit := "startups"
	keyword := "project management"
	body := "We are a small team and spreadsheets are not cutting it anymore."

	assert.True(t, MatchLead("project", title, subreddit, keyword, body))
	assert.True(t, MatchLead("startups", title, subreddit, keyword, body))
	assert.True(t, MatchLead("spreadsheets", title, subreddit, keyword, body))
	assert.True(t, MatchLead("projct", title, subreddit, keyword, body), "typo in query")
	assert.False(t, MatchLead("databases", title, subreddit, keyword, body))
}

func TestScoreLeadRanksTitleAboveKeyword(t *testing.T) {
	titleScore := ScoreLead("crm", "Best CRM for startups", "sales", "email tool")
	keywordScore := ScoreLead("crm", "Need recommendations", "sales", "crm software")

	assert.Greater(t, titleScore, keywordScore)
	assert.Zero(t, ScoreLead("crm", "unrelated title", "gaming", "video editing"))
}
