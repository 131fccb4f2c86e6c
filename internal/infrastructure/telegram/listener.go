package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Submitter is the submission surface the listener drives; implemented by
// the application layer.
type Submitter interface {
	// Submit validates and enqueues a raw handle. The returned text is the
	// synchronous reply (queue position, rejection reason, ...).
	Submit(ctx context.Context, chatID int64, rawHandle string) string
	// QueueStatus describes the current queue depth.
	QueueStatus() string
}

const welcomeText = "👋 Send /scan <handle> to analyze a public account. /queue shows the current backlog."

// Listener long-polls getUpdates and dispatches bot commands into the
// submission interface. It is a thin driving adapter: delivery retries and
// richer command handling stay out of scope.
type Listener struct {
	botToken  string
	submitter Submitter
	notifier  *Notifier
	client    *http.Client
	logger    *slog.Logger

	offset int64
}

// NewListener wires the long-poll loop.
func NewListener(botToken string, submitter Submitter, notifier *Notifier, logger *slog.Logger) *Listener {
	return &Listener{
		botToken:  botToken,
		submitter: submitter,
		notifier:  notifier,
		client:    &http.Client{Timeout: 40 * time.Second},
		logger:    logger,
	}
}

type update struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
	} `json:"message"`
}

// Run polls until the context ends. Poll errors back off and retry; they
// never terminate the loop.
func (l *Listener) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		updates, err := l.poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.warn("poll failed", "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(3 * time.Second):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= l.offset {
				l.offset = u.UpdateID + 1
			}
			if u.Message == nil {
				continue
			}
			l.dispatch(ctx, u.Message.Chat.ID, u.Message.Text)
		}
	}
}

func (l *Listener) poll(ctx context.Context) ([]update, error) {
	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates", l.botToken)
	form := url.Values{}
	form.Set("timeout", "30")
	form.Set("offset", strconv.FormatInt(l.offset, 10))
	form.Set("allowed_updates", `["message"]`)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("telegram error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var decoded struct {
		OK     bool     `json:"ok"`
		Result []update `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	if !decoded.OK {
		return nil, fmt.Errorf("telegram answered not-ok")
	}
	return decoded.Result, nil
}

func (l *Listener) dispatch(ctx context.Context, chatID int64, text string) {
	command, arg := parseCommand(text)

	var reply string
	switch command {
	case "/start":
		reply = welcomeText
	case "/queue":
		reply = l.submitter.QueueStatus()
	case "/scan":
		if arg == "" {
			reply = "usage: /scan <handle or profile URL>"
			break
		}
		reply = l.submitter.Submit(ctx, chatID, arg)
	default:
		return
	}

	if l.notifier == nil || reply == "" {
		return
	}
	if err := l.notifier.Notify(ctx, chatID, reply); err != nil {
		l.warn("reply failed", "chat", chatID, "error", err)
	}
}

// parseCommand splits "/scan@BotName foo bar" into "/scan" and "foo bar".
func parseCommand(text string) (string, string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", ""
	}
	command, arg, _ := strings.Cut(text, " ")
	if i := strings.Index(command, "@"); i > 0 {
		command = command[:i]
	}
	return strings.ToLower(command), strings.TrimSpace(arg)
}

func (l *Listener) warn(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}
}
