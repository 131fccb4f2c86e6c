package app

import (
	"context"
	"log/slog"
	"time"

	"ProfileScope/internal/config"
	"ProfileScope/internal/infrastructure/browser"
	"ProfileScope/internal/infrastructure/llm"
	"ProfileScope/internal/infrastructure/mirror"
	"ProfileScope/internal/infrastructure/telegram"
	"ProfileScope/internal/logging"
	"ProfileScope/internal/ports"
	"ProfileScope/internal/queue"
	"ProfileScope/internal/source"
	"ProfileScope/internal/usecase"
)

// Application wires configuration into the queue, worker and transports.
type Application struct {
	cfg      config.Config
	queue    *queue.Queue
	worker   *queue.Worker
	listener *telegram.Listener
	session  *browser.Session
	logger   *slog.Logger
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	strategies := make([]source.Strategy, 0, len(cfg.Mirrors)+1)
	for _, m := range cfg.Mirrors {
		strategies = append(strategies, mirror.New(m.Name, m.BaseURL, nil))
	}

	var session *browser.Session
	if cfg.Browser.Enabled {
		session = browser.NewSession(browser.Config{
			Bin:               cfg.Browser.Bin,
			Headless:          cfg.Browser.Headless,
			NavigationTimeout: time.Duration(cfg.Browser.NavigationTimeoutMs) * time.Millisecond,
		})
		strategies = append(strategies, browser.NewStrategy(session, cfg.Browser.BaseURL))
	}

	chain := source.NewChain(strategies, cfg.Source.MinContentLen, baseLogger.With("component", "source"))

	var summarizer ports.Summarizer
	if cfg.Summarizer.APIKey != "" {
		summarizer = llm.NewDeepSeekClient(cfg.Summarizer, baseLogger.With("component", "summarizer"))
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     chain,
		Summarizer: summarizer,
		Logger:     baseLogger.With("component", "pipeline"),
	})

	jobQueue := queue.New(cfg.Queue.Capacity)
	notifier := telegram.NewNotifier(cfg.Telegram.BotToken)
	worker := queue.NewWorker(jobQueue, pipeline, notifier, baseLogger.With("component", "worker"))

	submission := usecase.NewSubmission(jobQueue, baseLogger.With("component", "submission"))
	listener := telegram.NewListener(cfg.Telegram.BotToken, submission, notifier, baseLogger.With("component", "listener"))

	return &Application{
		cfg:      cfg,
		queue:    jobQueue,
		worker:   worker,
		listener: listener,
		session:  session,
		logger:   baseLogger,
	}
}

// Run starts the inbound listener and blocks on the worker loop until the
// context ends.
func (a *Application) Run(ctx context.Context) error {
	defer func() {
		if a.session != nil {
			_ = a.session.Close()
		}
	}()

	go func() {
		if err := a.listener.Run(ctx); err != nil && ctx.Err() == nil {
			a.logger.Error("listener stopped", "error", err)
		}
	}()

	err := a.worker.Run(ctx)
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
