package usecase

import (
	"strings"

	leaddomain "leadscout-backend/internal/lead/domain"
)

// MatchPosts assigns each parsed post to a business. Assignment policy:
// businesses are tried in slice order and the first match wins; a business
// matches when any of its keywords and the post's keyword contain each
// other case-insensitively, in either direction. Posts that match nothing
// keep an empty BusinessID and stay in the output for inspection.
func MatchPosts(posts []leaddomain.ParsedPost, businesses []leaddomain.BusinessKeywords) []leaddomain.MatchedPost {
	matched := make([]leaddomain.MatchedPost, 0, len(posts))
	for _, post := range posts {
		matched = append(matched, leaddomain.MatchedPost{
			ParsedPost: post,
			BusinessID: findBusiness(post.Keyword, businesses),
		})
	}
	return matched
}

func findBusiness(postKeyword string, businesses []leaddomain.BusinessKeywords) string {
	// An empty post keyword is a post that never saw a "Keyword:" line.
	// Without the guard it would substring-match every business keyword.
	if postKeyword == "" {
		return ""
	}

	pk := strings.ToLower(postKeyword)
	for _, business := range businesses {
		for _, keyword := range business.Keywords {
			k := strings.ToLower(strings.TrimSpace(keyword))
			if k == "" {
				continue
			}
			if strings.Contains(pk, k) || strings.Contains(k, pk) {
				return business.BusinessID
			}
		}
	}
	return ""
}

// DedupeByURL keeps the first-seen post per canonical URL and drops the
// rest, including later detections that matched a different business.
// Returns the survivors and the number of dropped duplicates.
func DedupeByURL(posts []leaddomain.MatchedPost) ([]leaddomain.MatchedPost, int) {
	seen := make(map[string]struct{}, len(posts))
	deduped := make([]leaddomain.MatchedPost, 0, len(posts))
	for _, post := range posts {
		if _, ok := seen[post.URL]; ok {
			continue
		}
		seen[post.URL] = struct{}{}
		deduped = append(deduped, post)
	}
	return deduped, len(posts) - len(deduped)
}
