package source

import (
	"context"

	"ProfileScope/internal/domain"
)

// Strategy captures a single backend-specific attempt to obtain account
// text (read-only mirror, headless render, etc.). Implementations own
// their request timeouts; one bounded attempt per call, no internal
// retries.
type Strategy interface {
	Name() string
	TryFetch(ctx context.Context, handle domain.Handle) (domain.AccountText, error)
}
