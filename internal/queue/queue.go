// Package queue serializes handle-processing jobs: many producers, one
// consumer, strict FIFO. The channel is the only thing producers and the
// worker share.
package queue

import (
	"context"
	"errors"
	"sync"

	"ProfileScope/internal/domain"
)

// ErrQueueFull is returned when the buffered handoff cannot take another
// job; callers may resubmit later.
var ErrQueueFull = errors.New("queue full")

// Queue is a channel-backed FIFO with a depth counter so submitters learn
// their position synchronously.
type Queue struct {
	ch chan domain.Job

	mu    sync.Mutex
	ahead int // queued jobs plus the one currently processing
}

// New builds a queue with the given capacity (defaults to 64).
func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 64
	}
	return &Queue{ch: make(chan domain.Job, capacity)}
}

// Submit enqueues the job and returns how many jobs are ahead of it,
// counting the one the worker may be processing. Zero means processing
// starts immediately.
func (q *Queue) Submit(job domain.Job) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	select {
	case q.ch <- job:
		position := q.ahead
		q.ahead++
		return position, nil
	default:
		return 0, ErrQueueFull
	}
}

// Next blocks until a job is available or the context ends. The returned
// job is owned solely by the caller until it reports Done.
func (q *Queue) Next(ctx context.Context) (domain.Job, error) {
	select {
	case <-ctx.Done():
		return domain.Job{}, ctx.Err()
	case job := <-q.ch:
		return job, nil
	}
}

// Done marks the most recently dequeued job terminal, shrinking the depth
// seen by new submitters.
func (q *Queue) Done() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ahead > 0 {
		q.ahead--
	}
}

// Depth reports how many jobs are queued or processing right now.
func (q *Queue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ahead
}
