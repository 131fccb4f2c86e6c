package domain

import (
	"errors"
	"fmt"
	"time"
)

// Post is a single public message as delivered by a source, newest-first.
type Post struct {
	Text      string
	Timestamp time.Time // zero when the source omits it
	Mentions  []Handle
	Client    string // per-post client label, empty when not exposed
}

// AccountText is the raw material every extractor works from. Sources are
// free to return between 0 and ~120 posts; order is preserved as delivered
// but neither completeness nor gap-freeness is guaranteed.
type AccountText struct {
	Bio      string
	Location string // self-declared profile location, not inferred
	JoinedAt time.Time
	Posts    []Post
}

// FailReason classifies why no source could produce account text.
type FailReason string

const (
	ReasonNotFound    FailReason = "not_found"   // account missing or suspended
	ReasonUnreachable FailReason = "unreachable" // every backend errored out
	ReasonTooSparse   FailReason = "too_sparse"  // fetched, but nothing to analyze
)

// ErrSourceFailed is the sentinel wrapped by every SourceError.
var ErrSourceFailed = errors.New("source failed")

// SourceError is the typed failure returned when the whole fallback chain
// is exhausted.
type SourceError struct {
	Reason FailReason
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source failed: %s", e.Reason)
}

func (e *SourceError) Unwrap() error {
	return ErrSourceFailed
}
