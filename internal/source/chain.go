package source

import (
	"context"
	"errors"
	"log/slog"

	"ProfileScope/internal/domain"
	"ProfileScope/internal/ports"
)

// Chain tries strategies in fixed priority order and returns the first
// success. A strategy failure (error, empty body, content below the
// minimum threshold) advances to the next strategy.
type Chain struct {
	strategies []Strategy
	minContent int
	logger     *slog.Logger
}

var _ ports.AccountSource = (*Chain)(nil)

// NewChain wires the ordered strategy list. minContent is the minimum
// number of characters (bio plus posts) a result must carry to count as
// analyzable; non-positive values fall back to a small default.
func NewChain(strategies []Strategy, minContent int, logger *slog.Logger) *Chain {
	if minContent <= 0 {
		minContent = 24
	}
	return &Chain{strategies: strategies, minContent: minContent, logger: logger}
}

// Fetch walks the chain. When every strategy fails, the returned
// *domain.SourceError distinguishes a missing account from unreachable
// backends from content too sparse to analyze.
func (c *Chain) Fetch(ctx context.Context, handle domain.Handle) (domain.AccountText, error) {
	var sawNotFound, sawSparse bool

	for _, strategy := range c.strategies {
		if err := ctx.Err(); err != nil {
			return domain.AccountText{}, err
		}

		account, err := strategy.TryFetch(ctx, handle)
		if err != nil {
			var srcErr *domain.SourceError
			if errors.As(err, &srcErr) && srcErr.Reason == domain.ReasonNotFound {
				sawNotFound = true
			}
			c.debug("strategy failed", "strategy", strategy.Name(), "handle", string(handle), "error", err)
			continue
		}

		if contentLength(account) < c.minContent {
			sawSparse = true
			c.debug("strategy returned sparse content", "strategy", strategy.Name(), "handle", string(handle))
			continue
		}

		c.debug("strategy succeeded", "strategy", strategy.Name(), "handle", string(handle), "posts", len(account.Posts))
		return account, nil
	}

	switch {
	case sawNotFound:
		return domain.AccountText{}, &domain.SourceError{Reason: domain.ReasonNotFound}
	case sawSparse:
		return domain.AccountText{}, &domain.SourceError{Reason: domain.ReasonTooSparse}
	default:
		return domain.AccountText{}, &domain.SourceError{Reason: domain.ReasonUnreachable}
	}
}

func contentLength(account domain.AccountText) int {
	total := len(account.Bio)
	for _, post := range account.Posts {
		total += len(post.Text)
	}
	return total
}

func (c *Chain) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
