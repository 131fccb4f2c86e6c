package ports

import (
	"context"

	"ProfileScope/internal/domain"
)

// AccountSource obtains raw account text for a handle, trying whatever
// backends it owns. Exhaustion is reported as *domain.SourceError.
type AccountSource interface {
	Fetch(ctx context.Context, handle domain.Handle) (domain.AccountText, error)
}

// Summarizer produces the AI section of a report. It never fails: transport
// or parse trouble degrades into sentinel-filled summaries instead.
type Summarizer interface {
	Summarize(ctx context.Context, handle domain.Handle, account domain.AccountText, facts domain.Facts) domain.Summary
}

// Notifier delivers text to a chat destination. Splitting oversized
// messages is the notifier's concern, not the pipeline's.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

// Processor runs one job's pipeline end-to-end and returns the rendered
// report text.
type Processor interface {
	Process(ctx context.Context, handle domain.Handle) (string, error)
}
