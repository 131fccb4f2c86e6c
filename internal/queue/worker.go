package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ProfileScope/internal/domain"
	"ProfileScope/internal/ports"
)

// Worker is the single perpetual consumer. It processes exactly one job
// end-to-end before dequeuing the next, which is the backpressure policy:
// slow backends (headless rendering in particular) make concurrency-of-one
// the only way to bound resource usage.
type Worker struct {
	queue     *Queue
	processor ports.Processor
	notifier  ports.Notifier
	logger    *slog.Logger
}

// NewWorker wires the consumer loop.
func NewWorker(queue *Queue, processor ports.Processor, notifier ports.Notifier, logger *slog.Logger) *Worker {
	return &Worker{queue: queue, processor: processor, notifier: notifier, logger: logger}
}

// Run blocks until the context ends. A fault inside one job is converted
// into a failure notification and never crashes the loop or leaks into the
// next job.
func (w *Worker) Run(ctx context.Context) error {
	for {
		job, err := w.queue.Next(ctx)
		if err != nil {
			return err
		}
		w.handle(ctx, job)
		w.queue.Done()
	}
}

func (w *Worker) handle(ctx context.Context, job domain.Job) {
	defer func() {
		if r := recover(); r != nil {
			w.error("pipeline panic", "job", job.ID, "handle", string(job.Handle), "panic", r)
			w.notify(ctx, job.ChatID, fmt.Sprintf("⚠️ analysis of @%s failed: internal error", job.Handle))
		}
	}()

	w.notify(ctx, job.ChatID, fmt.Sprintf("🔍 processing @%s ...", job.Handle))

	text, err := w.processor.Process(ctx, job.Handle)
	if err != nil {
		w.error("job failed", "job", job.ID, "handle", string(job.Handle), "error", err)
		w.notify(ctx, job.ChatID, failureText(job.Handle, err))
		return
	}

	w.notify(ctx, job.ChatID, text)
	w.debug("job delivered", "job", job.ID, "handle", string(job.Handle))
}

// failureText maps terminal errors onto the user-facing notice.
func failureText(handle domain.Handle, err error) string {
	var srcErr *domain.SourceError
	if errors.As(err, &srcErr) {
		switch srcErr.Reason {
		case domain.ReasonNotFound:
			return fmt.Sprintf("⚠️ @%s: account not found or suspended", handle)
		case domain.ReasonTooSparse:
			return fmt.Sprintf("⚠️ @%s: account has too little public content to analyze", handle)
		default:
			return fmt.Sprintf("⚠️ @%s: all data sources unreachable, try again later", handle)
		}
	}
	return fmt.Sprintf("⚠️ analysis of @%s failed: %v", handle, err)
}

func (w *Worker) notify(ctx context.Context, chatID int64, text string) {
	if w.notifier == nil {
		return
	}
	if err := w.notifier.Notify(ctx, chatID, text); err != nil {
		w.error("notify failed", "chat", chatID, "error", err)
	}
}

func (w *Worker) debug(msg string, args ...any) {
	if w.logger != nil {
		w.logger.Debug(msg, args...)
	}
}

func (w *Worker) error(msg string, args ...any) {
	if w.logger != nil {
		w.logger.Error(msg, args...)
	}
}
