package extract

import (
	"strings"

	"ProfileScope/internal/domain"
)

// Self-referential birthday phrases, English and Arabic. Matching is
// case-insensitive substring containment over each post.
var birthdayPhrases = []string{
	"my birthday",
	"it's my birthday",
	"its my birthday",
	"my bday",
	"happy birthday to me",
	"born on",
	"عيد ميلادي",
	"يوم ميلادي",
	"ميلادي اليوم",
}

// Birthday returns the first post that self-references a birthday, in the
// delivered post order. No scoring across candidates: first match wins.
func Birthday(account domain.AccountText) domain.Finding {
	for _, post := range account.Posts {
		text := strings.ToLower(post.Text)
		for _, phrase := range birthdayPhrases {
			if !strings.Contains(text, phrase) {
				continue
			}
			value := "birthday mention"
			if !post.Timestamp.IsZero() {
				value = post.Timestamp.Format("January 2")
			}
			return domain.NewFinding(value, post.Text, post.Timestamp)
		}
	}
	return domain.NotFound
}
