package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		command string
		arg     string
	}{
		{"/start", "/start", ""},
		{"/scan someone", "/scan", "someone"},
		{"/scan   someone  ", "/scan", "someone"},
		{"/scan@ScopeBot someone", "/scan", "someone"},
		{"/SCAN someone", "/scan", "someone"},
		{"/scan a handle with spaces", "/scan", "a handle with spaces"},
		{"hello there", "", ""},
		{"", "", ""},
	}

	for _, tc := range cases {
		command, arg := parseCommand(tc.input)
		assert.Equal(t, tc.command, command, "input %q", tc.input)
		assert.Equal(t, tc.arg, arg, "input %q", tc.input)
	}
}

func TestSplitMessageShortTextUntouched(t *testing.T) {
	t.Parallel()

	chunks := splitMessage("short report", 4096)
	assert.Equal(t, []string{"short report"}, chunks)
}

func TestSplitMessagePrefersNewlineBoundary(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("x", 90) + "\n" + strings.Repeat("y", 90)
	chunks := splitMessage(text, 100)

	assert.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("x", 90)+"\n", chunks[0])
	assert.Equal(t, strings.Repeat("y", 90), chunks[1])
}

func TestSplitMessageHardCutWithoutNewline(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("a", 250)
	chunks := splitMessage(text, 100)

	assert.Equal(t, []string{
		strings.Repeat("a", 100),
		strings.Repeat("a", 100),
		strings.Repeat("a", 50),
	}, chunks)
}

func TestSplitMessageRuneSafe(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("é", 150)
	chunks := splitMessage(text, 100)

	assert.Len(t, chunks, 2)
	for _, chunk := range chunks {
		assert.True(t, strings.HasPrefix(chunk, "é"), "chunks must start on a rune boundary")
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}
