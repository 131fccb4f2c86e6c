package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ProfileScope/internal/domain"
	"ProfileScope/internal/infrastructure/mirror"
	"ProfileScope/internal/source"
)

// Strategy is the headless-render fallback: it drives a real browser
// through the primary mirror so JS interstitials that block plain HTTP
// fetches get executed, then parses the settled document the same way the
// mirror scraper does. Any render fault resets the session so the next job
// starts from a fresh browser.
type Strategy struct {
	session *Session
	baseURL string
}

var _ source.Strategy = (*Strategy)(nil)

// NewStrategy wires the shared session against a mirror base URL.
func NewStrategy(session *Session, baseURL string) *Strategy {
	return &Strategy{
		session: session,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Name identifies the strategy inside the fallback chain.
func (s *Strategy) Name() string {
	return "browser"
}

// TryFetch renders the profile page and extracts the account text.
func (s *Strategy) TryFetch(ctx context.Context, handle domain.Handle) (domain.AccountText, error) {
	html, err := s.session.Render(ctx, fmt.Sprintf("%s/%s", s.baseURL, handle))
	if err != nil {
		s.session.Reset()
		return domain.AccountText{}, fmt.Errorf("render profile: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return domain.AccountText{}, fmt.Errorf("parse rendered html: %w", err)
	}

	if err := mirror.CheckErrorPanel(doc); err != nil {
		return domain.AccountText{}, fmt.Errorf("browser: %w", err)
	}

	return mirror.ParseProfile(doc), nil
}
