// Package extract holds the heuristic fact extractors. Every extractor is
// a pure function over domain.AccountText, driven by declarative rule
// tables so individual rules can be tested and swapped without touching
// orchestration. All of them degrade gracefully on an empty post list.
package extract

import (
	"strings"

	"ProfileScope/internal/domain"
)

// Extract runs the whole battery and copies evidence snippets out, so the
// raw account text can be discarded afterwards.
func Extract(account domain.AccountText) domain.Facts {
	return domain.Facts{
		Birthday:    Birthday(account),
		Location:    Location(account),
		Friends:     Friends(account),
		Personality: Personality(account),
		Hobbies:     Hobbies(account),
		Security:    Security(account),
		Device:      Device(account),
	}
}

// joinedText concatenates bio and post texts, lowercased, for the
// extractors that score aggregate keyword hits.
func joinedText(account domain.AccountText) string {
	var b strings.Builder
	b.WriteString(account.Bio)
	for _, post := range account.Posts {
		b.WriteString("\n")
		b.WriteString(post.Text)
	}
	return strings.ToLower(b.String())
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
