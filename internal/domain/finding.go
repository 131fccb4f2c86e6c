package domain

import "time"

// Unclear is the sentinel printed wherever a field could not be determined.
const Unclear = "unclear"

const maxEvidenceLen = 100

// Finding is one extractor's result: either absent, or a value with the
// evidence snippet it was derived from. Evidence is copied out of the post
// text so AccountText can be discarded after extraction.
type Finding struct {
	Found    bool
	Value    string
	Evidence string
	Date     time.Time // zero when the evidencing post had no timestamp
}

// NotFound is the zero Finding.
var NotFound = Finding{}

// NewFinding builds a present finding, bounding the evidence snippet.
func NewFinding(value, evidence string, date time.Time) Finding {
	return Finding{Found: true, Value: value, Evidence: Snippet(evidence), Date: date}
}

// Snippet truncates text to the evidence length cap, rune-safe.
func Snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= maxEvidenceLen {
		return text
	}
	return string(runes[:maxEvidenceLen])
}

// FriendCount is one entry of the mention ranking.
type FriendCount struct {
	Handle Handle
	Count  int
}

// Facts is the immutable output of the extraction stage.
type Facts struct {
	Birthday    Finding
	Location    Finding
	Friends     []FriendCount
	Personality Finding
	Hobbies     Finding
	Security    Finding
	Device      Finding
}

// Summary is the normalized shape of the external summarizer's answer.
// Every field defaults to the Unclear sentinel; extra keys in the remote
// response are dropped during parsing.
type Summary struct {
	Bio          string
	Topics       string
	Personality  string
	Hobbies      string
	SecurityNote string
	Text         string
}

// UnclearSummary returns a Summary with every field set to the sentinel.
func UnclearSummary() Summary {
	return Summary{
		Bio:          Unclear,
		Topics:       Unclear,
		Personality:  Unclear,
		Hobbies:      Unclear,
		SecurityNote: Unclear,
		Text:         Unclear,
	}
}
