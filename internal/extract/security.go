package extract

import (
	"strings"
	"unicode"

	"ProfileScope/internal/domain"
)

// Flagged terms for the content-safety scan.
var flaggedTerms = []string{
	"leaked database",
	"combo list",
	"carding",
	"phishing",
	"ddos",
	"spam bot",
	"account takeover",
	"بيع حسابات",
	"تسريب بيانات",
}

const cleanValue = "clean"

// Security scans posts for flagged terms. Unlike the optional-evidence
// categories this one always resolves: either a hit carrying the flagged
// post's date and a redacted snippet, or an explicit clean finding.
func Security(account domain.AccountText) domain.Finding {
	for _, post := range account.Posts {
		text := string(foldLower(post.Text))
		for _, term := range flaggedTerms {
			if !strings.Contains(text, term) {
				continue
			}
			finding := domain.NewFinding("flagged language", redact(post.Text, term), post.Timestamp)
			return finding
		}
	}
	return domain.Finding{Found: true, Value: cleanValue}
}

// foldLower lowercases rune-by-rune, so the result aligns with the
// original rune positions. strings.ToLower has special cases (İ) that
// change length and would misalign the mask.
func foldLower(text string) []rune {
	runes := []rune(text)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

// redact masks every occurrence of the flagged term, keeping its first
// rune, before the snippet is bounded. Matching and masking both operate
// on rune indices of the same slice.
func redact(text, term string) string {
	runes := []rune(text)
	lowered := foldLower(text)
	termRunes := []rune(term)

	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); {
		if runesMatchAt(lowered, termRunes, i) {
			out = append(out, runes[i])
			for j := 1; j < len(termRunes); j++ {
				out = append(out, '*')
			}
			i += len(termRunes)
			continue
		}
		out = append(out, runes[i])
		i++
	}
	return string(out)
}

func runesMatchAt(haystack, needle []rune, at int) bool {
	if at+len(needle) > len(haystack) {
		return false
	}
	for i, r := range needle {
		if haystack[at+i] != r {
			return false
		}
	}
	return true
}
