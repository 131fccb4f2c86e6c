package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProfileScope/internal/domain"
)

type fakeSource struct {
	account domain.AccountText
	err     error
}

func (s *fakeSource) Fetch(ctx context.Context, handle domain.Handle) (domain.AccountText, error) {
	return s.account, s.err
}

type fakeSummarizer struct {
	summary domain.Summary
	facts   domain.Facts
	called  bool
}

func (s *fakeSummarizer) Summarize(ctx context.Context, handle domain.Handle, account domain.AccountText, facts domain.Facts) domain.Summary {
	s.called = true
	s.facts = facts
	return s.summary
}

func TestProcessProducesFullReport(t *testing.T) {
	t.Parallel()

	account := domain.AccountText{
		Bio:      "Plays a lot of fifa.",
		Location: "",
		JoinedAt: time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC),
		Posts: []domain.Post{
			{Text: "my birthday is today!", Timestamp: time.Date(2023, time.March, 14, 0, 0, 0, 0, time.UTC)},
			{Text: "good game tonight", Mentions: []domain.Handle{"ahmed"}, Client: "Twitter for iPhone"},
		},
	}
	summarizer := &fakeSummarizer{summary: domain.Summary{
		Bio: "gamer", Topics: "football", Personality: "upbeat",
		Hobbies: "gaming", SecurityNote: "nothing", Text: "an upbeat gamer",
	}}

	pipeline := NewPipeline(PipelineDeps{Source: &fakeSource{account: account}, Summarizer: summarizer})
	text, err := pipeline.Process(context.Background(), "someone")
	require.NoError(t, err)

	assert.True(t, summarizer.called)
	assert.True(t, summarizer.facts.Birthday.Found, "extracted facts must reach the summarizer")

	assert.Contains(t, text, "@someone")
	assert.Contains(t, text, "March 14")
	assert.Contains(t, text, "@ahmed (1)")
	assert.Contains(t, text, "an upbeat gamer")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(text), "· · · end of report · · ·"))
}

func TestProcessSourceFailureIsTerminal(t *testing.T) {
	t.Parallel()

	srcErr := &domain.SourceError{Reason: domain.ReasonNotFound}
	summarizer := &fakeSummarizer{}
	pipeline := NewPipeline(PipelineDeps{Source: &fakeSource{err: srcErr}, Summarizer: summarizer})

	_, err := pipeline.Process(context.Background(), "ghost")
	require.Error(t, err)

	var got *domain.SourceError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, domain.ReasonNotFound, got.Reason)
	assert.False(t, summarizer.called, "no summary call after a fetch failure")
}

func TestProcessWithoutSummarizerStillRenders(t *testing.T) {
	t.Parallel()

	account := domain.AccountText{
		Bio:   "just here",
		Posts: []domain.Post{{Text: "a perfectly ordinary post"}},
	}
	pipeline := NewPipeline(PipelineDeps{Source: &fakeSource{account: account}})

	text, err := pipeline.Process(context.Background(), "someone")
	require.NoError(t, err)
	assert.Contains(t, text, "🤖 AI Summary")
	assert.Contains(t, text, domain.Unclear)
}
