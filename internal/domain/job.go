package domain

import "time"

// Job binds a chat destination to a handle. Consumed exactly once by the
// worker, never retried automatically; once terminal, a job is discarded.
type Job struct {
	ID         string
	ChatID     int64
	Handle     Handle
	EnqueuedAt time.Time
}
