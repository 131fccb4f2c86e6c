package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidHandle marks submissions rejected before they reach the queue.
var ErrInvalidHandle = errors.New("invalid handle")

// Handle is a normalized account identifier: lowercase, no leading @,
// no URL scheme/host/path remnants.
type Handle string

var handleExpr = regexp.MustCompile(`^[a-z0-9_]{1,30}$`)

// NormalizeHandle lowercases the input, strips an optional URL prefix and
// leading @, and validates the remainder. Anything containing whitespace or
// a slash after prefix stripping is rejected.
func NormalizeHandle(raw string) (Handle, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", ErrInvalidHandle
	}

	for _, scheme := range []string{"https://", "http://"} {
		if !strings.HasPrefix(s, scheme) {
			continue
		}
		s = strings.TrimPrefix(s, scheme)
		if i := strings.Index(s, "/"); i >= 0 {
			s = s[i+1:]
		} else {
			s = ""
		}
		break
	}

	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSuffix(s, "/")
	s = strings.TrimPrefix(s, "@")

	if !handleExpr.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHandle, raw)
	}
	return Handle(s), nil
}
