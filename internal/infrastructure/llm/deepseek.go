package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ProfileScope/internal/config"
	"ProfileScope/internal/domain"
	"ProfileScope/internal/ports"
)

// FailureNotice is the fixed human-readable text shipped in place of the
// AI summary when the remote call fails. The report still goes out.
const FailureNotice = "AI summary unavailable (summarizer did not respond)."

const (
	promptPostCap  = 40
	rawSummaryCap  = 700
	errorBodyLimit = 1024
)

// DeepSeekClient implements ports.Summarizer against an OpenAI-compatible
// chat-completions endpoint. It is deliberately failure-proof: every
// transport or parse problem degrades into sentinel values.
type DeepSeekClient struct {
	endpoint     string
	model        string
	apiKey       string
	systemPrompt string
	httpClient   *http.Client
	logger       *slog.Logger
}

var _ ports.Summarizer = (*DeepSeekClient)(nil)

// NewDeepSeekClient builds a client from configuration.
func NewDeepSeekClient(cfg config.SummarizerConfig, logger *slog.Logger) *DeepSeekClient {
	return &DeepSeekClient{
		endpoint:     cfg.Endpoint,
		model:        cfg.Model,
		apiKey:       cfg.APIKey,
		systemPrompt: safePrompt(cfg.SystemPrompt),
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
		logger: logger,
	}
}

// Summarize sends one bounded request and normalizes whatever comes back
// into the fixed Summary field set. It never returns an error to the
// pipeline; a degraded AI section is an acceptable report.
func (c *DeepSeekClient) Summarize(ctx context.Context, handle domain.Handle, account domain.AccountText, facts domain.Facts) domain.Summary {
	content, err := c.complete(ctx, buildPrompt(handle, account, facts))
	if err != nil {
		c.warn("summarizer call failed", "handle", string(handle), "error", err)
		result := domain.UnclearSummary()
		result.Text = FailureNotice
		return result
	}
	return parseSummary(content)
}

func (c *DeepSeekClient) complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" || c.endpoint == "" || c.model == "" {
		return "", fmt.Errorf("summarizer client misconfigured")
	}

	body, err := json.Marshal(map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": c.systemPrompt},
			{"role": "user", "content": prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return "", fmt.Errorf("summarizer error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var decoded struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("summarizer returned no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}

// buildPrompt embeds the bio, the most recent posts up to a fixed cap, and
// the locally computed facts so the model is steered rather than left to
// invent its own.
func buildPrompt(handle domain.Handle, account domain.AccountText, facts domain.Facts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Account: @%s\n", handle)
	fmt.Fprintf(&b, "Bio: %s\n", account.Bio)

	b.WriteString("Locally extracted signals:\n")
	writeFact(&b, "birthday", facts.Birthday)
	writeFact(&b, "location", facts.Location)
	writeFact(&b, "personality", facts.Personality)
	writeFact(&b, "hobbies", facts.Hobbies)
	writeFact(&b, "security", facts.Security)
	writeFact(&b, "device", facts.Device)
	if len(facts.Friends) > 0 {
		b.WriteString("- friends:")
		for _, friend := range facts.Friends {
			fmt.Fprintf(&b, " @%s(%d)", friend.Handle, friend.Count)
		}
		b.WriteString("\n")
	}

	b.WriteString("Recent posts:\n")
	for i, post := range account.Posts {
		if i >= promptPostCap {
			break
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, post.Text)
	}

	b.WriteString("\nRespond with a JSON object holding exactly these keys: ")
	b.WriteString(`"bio", "topics", "personality", "hobbies", "security_note", "summary".`)
	return b.String()
}

func writeFact(b *strings.Builder, label string, finding domain.Finding) {
	if !finding.Found {
		fmt.Fprintf(b, "- %s: not found\n", label)
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, finding.Value)
}

// parseSummary tolerates the model replying with fenced, prefixed or
// outright non-JSON content. On parse failure the raw text (bounded)
// becomes the summary and everything else stays at the sentinel.
func parseSummary(content string) domain.Summary {
	result := domain.UnclearSummary()

	var decoded map[string]any
	if err := json.Unmarshal([]byte(stripFences(content)), &decoded); err != nil {
		text := strings.TrimSpace(content)
		if runes := []rune(text); len(runes) > rawSummaryCap {
			text = string(runes[:rawSummaryCap])
		}
		if text == "" {
			text = domain.Unclear
		}
		result.Text = text
		return result
	}

	assign := func(dst *string, key string) {
		if value, ok := decoded[key].(string); ok && strings.TrimSpace(value) != "" {
			*dst = strings.TrimSpace(value)
		}
	}
	assign(&result.Bio, "bio")
	assign(&result.Topics, "topics")
	assign(&result.Personality, "personality")
	assign(&result.Hobbies, "hobbies")
	assign(&result.SecurityNote, "security_note")
	assign(&result.Text, "summary")
	return result
}

func stripFences(content string) string {
	s := strings.TrimSpace(content)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func safePrompt(prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "You summarize public social-media activity into short, factual notes. Use only the provided material."
	}
	return prompt
}

func (c *DeepSeekClient) warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
