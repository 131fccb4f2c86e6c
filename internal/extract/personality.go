package extract

import (
	"strings"

	"ProfileScope/internal/domain"
)

// Marker tables for the four independent keyword-hit counts. Every
// occurrence counts, not just the first.
var (
	aggressionMarkers = []string{
		"idiot", "stupid", "shut up", "trash", "pathetic", "hate you",
		"غبي", "تافه", "اسكت", "حقير",
	}
	warmthMarkers = []string{
		"thank you", "thanks", "love this", "appreciate", "congrats", "proud of",
		"شكرا", "أحبكم", "احبكم", "مبروك",
	}
	selfMarkers = []string{
		"i think", "i believe", "in my opinion", "my take", "i always",
		"أعتقد", "اعتقد", "برأيي", "رأيي",
	}
	analyticalMarkers = []string{
		"because", "therefore", "the data", "evidence", "on the other hand", "statistics",
		"السبب", "بالتالي", "الأرقام", "تحليل",
	}
)

const (
	selfAssuredThreshold = 4
	analyticalThreshold  = 4
)

const balancedTrait = "balanced"

// Personality scores the aggregated text against the marker tables and
// emits the traits in fixed rule order: tone first, then self-reference,
// then analytical. When no rule fires the single default trait is emitted.
func Personality(account domain.AccountText) domain.Finding {
	text := joinedText(account)

	aggression := countHits(text, aggressionMarkers)
	warmth := countHits(text, warmthMarkers)
	selfRef := countHits(text, selfMarkers)
	analytical := countHits(text, analyticalMarkers)

	var traits []string
	switch {
	case aggression > warmth:
		traits = append(traits, "tends sharp/confrontational")
	case warmth > aggression:
		traits = append(traits, "tends warm/supportive")
	}
	if selfRef > selfAssuredThreshold {
		traits = append(traits, "self-assured/vocal about own views")
	}
	if analytical > analyticalThreshold {
		traits = append(traits, "analytical/reflective")
	}
	if len(traits) == 0 {
		traits = append(traits, balancedTrait)
	}

	return domain.Finding{Found: true, Value: strings.Join(traits, "; ")}
}

func countHits(text string, markers []string) int {
	total := 0
	for _, marker := range markers {
		total += strings.Count(text, marker)
	}
	return total
}
