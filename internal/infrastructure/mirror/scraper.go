package mirror

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"ProfileScope/internal/domain"
	"ProfileScope/internal/source"
)

// Mirrors render timestamps like "Jan 2, 2006 · 3:04 PM UTC" in the title
// attribute of each tweet-date anchor.
const mirrorTimeLayout = "Jan 2, 2006 · 3:04 PM UTC"

const joinLayout = "2 Jan 2006"

var mentionExpr = regexp.MustCompile(`@([A-Za-z0-9_]{1,30})`)

const maxPosts = 120

// Strategy scrapes one read-only mirror host. Mirrors rate-limit
// aggressively, so requests against the same host are paced through a
// limiter shared by all fetches of this strategy.
type Strategy struct {
	name    string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

var _ source.Strategy = (*Strategy)(nil)

// New wires a mirror strategy; the client defaults to a 15s timeout and the
// limiter to one request per two seconds.
func New(name, baseURL string, client *http.Client) *Strategy {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Strategy{
		name:    name,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// Name identifies the strategy inside the fallback chain.
func (s *Strategy) Name() string {
	return s.name
}

// TryFetch loads the profile page and extracts bio, profile metadata and
// the visible timeline. A 404 or an error panel is reported as a not-found
// source error; anything else that goes wrong is a plain failure that the
// chain treats as "advance to the next strategy".
func (s *Strategy) TryFetch(ctx context.Context, handle domain.Handle) (domain.AccountText, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return domain.AccountText{}, err
	}

	pageURL := fmt.Sprintf("%s/%s", s.baseURL, handle)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return domain.AccountText{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; ProfileScope/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.AccountText{}, fmt.Errorf("request profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.AccountText{}, &domain.SourceError{Reason: domain.ReasonNotFound}
	}
	if resp.StatusCode != http.StatusOK {
		return domain.AccountText{}, fmt.Errorf("mirror %s returned %s", s.name, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return domain.AccountText{}, fmt.Errorf("parse document: %w", err)
	}

	if err := CheckErrorPanel(doc); err != nil {
		return domain.AccountText{}, fmt.Errorf("mirror %s: %w", s.name, err)
	}

	return ParseProfile(doc), nil
}

// CheckErrorPanel inspects the mirror's error panel, if present.
// "not found" and "suspended" panels are reported as a not-found source
// error; any other panel is a plain failure.
func CheckErrorPanel(doc *goquery.Document) error {
	panel := doc.Find(".error-panel").First()
	if panel.Length() == 0 {
		return nil
	}
	text := strings.ToLower(panel.Text())
	if strings.Contains(text, "not found") || strings.Contains(text, "suspended") {
		return &domain.SourceError{Reason: domain.ReasonNotFound}
	}
	return fmt.Errorf("error panel: %s", domain.Snippet(strings.TrimSpace(panel.Text())))
}

// ParseProfile extracts bio, profile metadata and the visible timeline from
// a mirror profile document. Shared with the headless-render fallback,
// which produces the same markup.
func ParseProfile(doc *goquery.Document) domain.AccountText {
	account := domain.AccountText{
		Bio:      strings.TrimSpace(doc.Find(".profile-bio").First().Text()),
		Location: strings.TrimSpace(doc.Find(".profile-location").First().Text()),
	}

	joinText := strings.TrimSpace(doc.Find(".profile-joindate").First().Text())
	joinText = strings.TrimSpace(strings.TrimPrefix(joinText, "Joined"))
	if joined, err := time.Parse(joinLayout, joinText); err == nil {
		account.JoinedAt = joined
	} else if joined, err := time.Parse("January 2006", joinText); err == nil {
		account.JoinedAt = joined
	}

	doc.Find(".timeline-item").EachWithBreak(func(i int, item *goquery.Selection) bool {
		if len(account.Posts) >= maxPosts {
			return false
		}
		post := parsePost(item)
		if post.Text == "" && len(post.Mentions) == 0 {
			return true
		}
		account.Posts = append(account.Posts, post)
		return true
	})

	return account
}

func parsePost(item *goquery.Selection) domain.Post {
	post := domain.Post{
		Text:   strings.TrimSpace(item.Find(".tweet-content").First().Text()),
		Client: strings.TrimSpace(item.Find(".tweet-source").First().Text()),
	}

	if title, ok := item.Find(".tweet-date a").First().Attr("title"); ok {
		if ts, err := time.Parse(mirrorTimeLayout, strings.TrimSpace(title)); err == nil {
			post.Timestamp = ts
		}
	}

	post.Mentions = extractMentions(item, post.Text)
	return post
}

// extractMentions merges explicit mention markup with textual @handle
// occurrences into one per-post set.
func extractMentions(item *goquery.Selection, text string) []domain.Handle {
	seen := map[domain.Handle]struct{}{}
	var mentions []domain.Handle

	add := func(raw string) {
		handle, err := domain.NormalizeHandle(raw)
		if err != nil {
			return
		}
		if _, ok := seen[handle]; ok {
			return
		}
		seen[handle] = struct{}{}
		mentions = append(mentions, handle)
	}

	item.Find(".tweet-content a.mention, .tweet-content a[href^=\"/\"]").Each(func(i int, link *goquery.Selection) {
		candidate := strings.TrimSpace(link.Text())
		if strings.HasPrefix(candidate, "@") {
			add(candidate)
		}
	})

	for _, match := range mentionExpr.FindAllStringSubmatch(text, -1) {
		add(match[1])
	}

	return mentions
}
