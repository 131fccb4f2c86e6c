package usecase

import (
	"context"
	"log/slog"

	"ProfileScope/internal/domain"
	"ProfileScope/internal/extract"
	"ProfileScope/internal/ports"
	"ProfileScope/internal/report"
)

// PipelineDeps wires the driven adapters into the per-job orchestration.
type PipelineDeps struct {
	Source     ports.AccountSource
	Summarizer ports.Summarizer
	Logger     *slog.Logger
}

// Pipeline implements the fetch → extract → summarize → assemble workflow
// for one handle. It holds no per-job state; the worker serializes calls.
type Pipeline struct {
	source     ports.AccountSource
	summarizer ports.Summarizer
	logger     *slog.Logger
}

var _ ports.Processor = (*Pipeline)(nil)

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		summarizer: deps.Summarizer,
		logger:     deps.Logger,
	}
}

// Process runs one job end-to-end and returns the rendered report text.
// Only a source failure is terminal; a missing AI summary degrades the
// report instead of failing it.
func (p *Pipeline) Process(ctx context.Context, handle domain.Handle) (string, error) {
	account, err := p.source.Fetch(ctx, handle)
	if err != nil {
		return "", err
	}
	p.debug("account fetched", "handle", string(handle), "posts", len(account.Posts))

	facts := extract.Extract(account)

	summary := domain.UnclearSummary()
	if p.summarizer != nil {
		summary = p.summarizer.Summarize(ctx, handle, account, facts)
	}

	assembled := report.Assemble(handle, account, facts, summary)
	return assembled.Render(), nil
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
