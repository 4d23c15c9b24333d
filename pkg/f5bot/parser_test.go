package f5bot

import (
	"testing"
	"time"

	"leadscout-backend/internal/lead/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digest(body string) domain.RawEmail {
	return domain.RawEmail{
		ID:      "msg-1",
		Subject: "F5Bot found something!",
		Body:    body,
		Date:    time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestParse_SubjectFilter(t *testing.T) {
	email := domain.RawEmail{
		ID:      "msg-2",
		Subject: "Your weekly newsletter",
		Body:    "Keyword: \"saas\"\nReddit Posts (/r/startups): Title\nhttps://www.reddit.com/r/startups/comments/x/y/",
	}
	assert.Empty(t, Parse(email))
}

func TestParse_SinglePost(t *testing.T) {
	body := `Keyword: "project management"
Reddit Posts (/r/startups): Looking for PM tool): Need a PM tool recommendation
https://www.reddit.com/r/startups/comments/abc123/need_a_pm_tool/
I've tried three tools and none fit my team's workflow.
Keyword: "time tracking"
`
	posts := Parse(digest(body))
	require.Len(t, posts, 1)

	p := posts[0]
	assert.Equal(t, "project management", p.Keyword)
	assert.Equal(t, domain.PostKindPosts, p.Kind)
	assert.Equal(t, "startups", p.Subreddit)
	assert.Equal(t, "Need a PM tool recommendation", p.Title)
	assert.Equal(t, "https://www.reddit.com/r/startups/comments/abc123/need_a_pm_tool/", p.URL)
	assert.Equal(t, "I've tried three tools and none fit my team's workflow.", p.Body)
	assert.Equal(t, "msg-1", p.SourceEmailID)
}

func TestParse_KeywordCarryOver(t *testing.T) {
	body := `Keyword: "a"
Reddit Posts (/r/golang): First post
https://www.reddit.com/r/golang/comments/1/first/
Reddit Posts (/r/rust): Second post
https://www.reddit.com/r/rust/comments/2/second/
`
	posts := Parse(digest(body))
	require.Len(t, posts, 2)
	assert.Equal(t, "a", posts[0].Keyword)
	assert.Equal(t, "a", posts[1].Keyword)
}

func TestParse_BodyStopsAtNextAnnouncement(t *testing.T) {
	body := `Keyword: "a"
Reddit Posts (/r/golang): First post
https://www.reddit.com/r/golang/comments/1/first/
Some body text.
Reddit Comments (/r/golang): A comment in between
https://www.reddit.com/r/golang/comments/1/first/comment/
Reddit Posts (/r/rust): Second post
https://www.reddit.com/r/rust/comments/2/second/
`
	posts := Parse(digest(body))
	require.Len(t, posts, 2)
	assert.Equal(t, "Some body text.", posts[0].Body)
	assert.Equal(t, "Second post", posts[1].Title)
	assert.Equal(t, "a", posts[1].Keyword)
}

func TestParse_FirstKeywordOfCommaList(t *testing.T) {
	body := `Keyword: "invoicing, billing, accounting"
Reddit Posts (/r/smallbusiness): Invoicing question
https://www.reddit.com/r/smallbusiness/comments/3/inv/
`
	posts := Parse(digest(body))
	require.Len(t, posts, 1)
	assert.Equal(t, "invoicing", posts[0].Keyword)
}

func TestParse_CommentsAreSkipped(t *testing.T) {
	body := `Keyword: "saas"
Reddit Comments (/r/startups): A comment about saas
https://www.reddit.com/r/startups/comments/4/thread/comment1/
Reddit Posts (/r/startups): A post about saas
https://www.reddit.com/r/startups/comments/5/post/
`
	posts := Parse(digest(body))
	require.Len(t, posts, 1)
	assert.Equal(t, "A post about saas", posts[0].Title)
}

func TestParse_MissingURLDropsBlock(t *testing.T) {
	body := `Keyword: "saas"
Reddit Posts (/r/startups): No url follows
This is just prose, not a link.
`
	assert.Empty(t, Parse(digest(body)))
}

func TestParse_RedirectUnwrap(t *testing.T) {
	body := `Keyword: "saas"
Reddit Posts (/r/startups): Wrapped link
https://click.f5bot.com/track?u=https%3A%2F%2Fwww.reddit.com%2Fr%2Fstartups%2Fcomments%2F6%2Fwrapped%2F&sig=deadbeef
`
	posts := Parse(digest(body))
	require.Len(t, posts, 1)
	assert.Equal(t, "https://www.reddit.com/r/startups/comments/6/wrapped/", posts[0].URL)
}

func TestParse_RedirectUnwrapFallsBackOnBadTarget(t *testing.T) {
	raw := "https://click.f5bot.com/track?u=not-a-url"
	body := "Keyword: \"saas\"\nReddit Posts (/r/startups): Bad target\n" + raw + "\n"
	posts := Parse(digest(body))
	require.Len(t, posts, 1)
	assert.Equal(t, raw, posts[0].URL)
}

func TestParse_BodyReassembly(t *testing.T) {
	body := `Keyword: "saas"
Reddit Posts (/r/startups): Multi line body
https://www.reddit.com/r/startups/comments/7/multi/
First line of the post.

  Second line, indented.
Do you have comments or suggestions? Reply to this email.
`
	posts := Parse(digest(body))
	require.Len(t, posts, 1)
	assert.Equal(t, "First line of the post. Second line, indented.", posts[0].Body)
}

func TestParse_FooterTerminatesBody(t *testing.T) {
	body := `Keyword: "saas"
Reddit Posts (/r/startups): Footer test
https://www.reddit.com/r/startups/comments/8/footer/
Some content.
You are receiving this email because you signed up for F5Bot.
Reddit Posts (/r/startups): should not appear as body
`
	posts := Parse(digest(body))
	require.NotEmpty(t, posts)
	assert.Equal(t, "Some content.", posts[0].Body)
}

func TestParse_NoKeywordSeenYieldsEmptyKeyword(t *testing.T) {
	body := `Reddit Posts (/r/startups): Orphan post
https://www.reddit.com/r/startups/comments/9/orphan/
`
	posts := Parse(digest(body))
	require.Len(t, posts, 1)
	assert.Equal(t, "", posts[0].Keyword)
}

func TestParse_Idempotent(t *testing.T) {
	email := digest(`Keyword: "a"
Reddit Posts (/r/golang): Twice parsed
https://www.reddit.com/r/golang/comments/10/twice/
Body text here.
`)
	first := Parse(email)
	second := Parse(email)
	assert.Equal(t, first, second)
}
