package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ProfileScope/internal/domain"
	"ProfileScope/internal/queue"
)

// Submission validates raw handles and hands jobs to the queue. Invalid
// handles are rejected synchronously and never enqueued.
type Submission struct {
	queue  *queue.Queue
	logger *slog.Logger
}

// NewSubmission wires the submission surface.
func NewSubmission(q *queue.Queue, logger *slog.Logger) *Submission {
	return &Submission{queue: q, logger: logger}
}

// Submit normalizes and validates rawHandle, enqueues a job on success and
// returns the synchronous reply text either way.
func (s *Submission) Submit(ctx context.Context, chatID int64, rawHandle string) string {
	handle, err := domain.NormalizeHandle(rawHandle)
	if err != nil {
		return fmt.Sprintf("❌ %q is not a valid handle", rawHandle)
	}

	job := domain.Job{
		ID:         uuid.NewString(),
		ChatID:     chatID,
		Handle:     handle,
		EnqueuedAt: time.Now().UTC(),
	}

	position, err := s.queue.Submit(job)
	if err != nil {
		s.warn("submission rejected", "handle", string(handle), "error", err)
		return "⚠️ the queue is full right now, try again in a few minutes"
	}

	s.debug("job enqueued", "job", job.ID, "handle", string(handle), "position", position)

	if position == 0 {
		return fmt.Sprintf("✅ @%s accepted — processing starts immediately", handle)
	}
	return fmt.Sprintf("✅ @%s accepted — %d job(s) ahead of you", handle, position)
}

// QueueStatus describes the current backlog for the /queue command.
func (s *Submission) QueueStatus() string {
	depth := s.queue.Depth()
	if depth == 0 {
		return "queue is empty"
	}
	return fmt.Sprintf("%d job(s) queued or processing", depth)
}

func (s *Submission) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Submission) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
