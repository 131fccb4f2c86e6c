// Package report turns pipeline outputs into the fixed-order report
// structure. Assembly is pure: identical inputs produce byte-identical
// rendered text.
package report

import (
	"fmt"
	"strings"

	"ProfileScope/internal/domain"
)

// Per-category phrases used when a finding is absent. Section presence is
// total: an empty finding renders its phrase, the section never disappears.
const (
	noBioPhrase      = "no bio on record"
	noBirthdayPhrase = "no birthday signal found"
	noLocationPhrase = "no location signal found"
	noFriendsPhrase  = "no frequent correspondents found"
	noDevicePhrase   = "unknown device"
	terminatorMark   = "· · · end of report · · ·"
)

// Assemble merges source output, extracted facts and the AI summary into
// the report. Section order is invariant across all inputs.
func Assemble(handle domain.Handle, account domain.AccountText, facts domain.Facts, summary domain.Summary) domain.Report {
	return domain.Report{
		Handle: handle,
		Sections: []domain.Section{
			{Label: "🎯 Target", Body: "@" + string(handle)},
			{Label: "📝 Bio", Body: orPhrase(account.Bio, noBioPhrase)},
			{Label: "📌 Account", Body: accountLine(account, facts.Device)},
			{Label: "🎂 Birthday", Body: findingBody(facts.Birthday, noBirthdayPhrase)},
			{Label: "🗺 Location", Body: findingBody(facts.Location, noLocationPhrase)},
			{Label: "👥 Friends", Body: friendsBody(facts.Friends)},
			{Label: "🧠 Personality", Body: findingBody(facts.Personality, domain.Unclear)},
			{Label: "🎮 Hobbies", Body: findingBody(facts.Hobbies, domain.Unclear)},
			{Label: "🚩 Security", Body: securityBody(facts.Security)},
			{Label: "🤖 AI Summary", Body: summaryBody(summary)},
			{Label: "", Body: terminatorMark},
		},
	}
}

func orPhrase(value, phrase string) string {
	if strings.TrimSpace(value) == "" {
		return phrase
	}
	return value
}

// accountLine is the official-profile line: declared location, dominant
// device and join date, in that order.
func accountLine(account domain.AccountText, device domain.Finding) string {
	location := orPhrase(account.Location, domain.Unclear)
	deviceValue := noDevicePhrase
	if device.Found {
		deviceValue = device.Value
	}
	joined := domain.Unclear
	if !account.JoinedAt.IsZero() {
		joined = account.JoinedAt.Format("Jan 2006")
	}
	return fmt.Sprintf("location: %s | device: %s | joined: %s", location, deviceValue, joined)
}

func findingBody(finding domain.Finding, phrase string) string {
	if !finding.Found {
		return phrase
	}
	body := finding.Value
	if finding.Evidence != "" {
		body += "\nevidence: “" + finding.Evidence + "”"
	}
	if !finding.Date.IsZero() {
		body += "\ndated: " + finding.Date.Format("2006-01-02")
	}
	return body
}

func friendsBody(friends []domain.FriendCount) string {
	if len(friends) == 0 {
		return noFriendsPhrase
	}
	parts := make([]string, 0, len(friends))
	for _, friend := range friends {
		parts = append(parts, fmt.Sprintf("@%s (%d)", friend.Handle, friend.Count))
	}
	return strings.Join(parts, ", ")
}

func securityBody(finding domain.Finding) string {
	if !finding.Found || finding.Value == "clean" {
		return "clean — no flagged language"
	}
	body := finding.Value
	if finding.Evidence != "" {
		body += "\nredacted: “" + finding.Evidence + "”"
	}
	if !finding.Date.IsZero() {
		body += fmt.Sprintf("\nyear: %d", finding.Date.Year())
	}
	return body
}

func summaryBody(summary domain.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "bio: %s\n", summary.Bio)
	fmt.Fprintf(&b, "topics: %s\n", summary.Topics)
	fmt.Fprintf(&b, "personality: %s\n", summary.Personality)
	fmt.Fprintf(&b, "hobbies: %s\n", summary.Hobbies)
	fmt.Fprintf(&b, "security note: %s\n", summary.SecurityNote)
	fmt.Fprintf(&b, "%s", summary.Text)
	return b.String()
}
