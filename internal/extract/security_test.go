package extract

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProfileScope/internal/domain"
)

func TestSecurityFlagsExactPost(t *testing.T) {
	t.Parallel()

	flaggedAt := time.Date(2021, time.August, 9, 0, 0, 0, 0, time.UTC)

	var posts []domain.Post
	for i := 0; i < 10; i++ {
		ts := time.Date(2024, time.January, 1+i, 0, 0, 0, 0, time.UTC)
		posts = append(posts, post("harmless daily update", ts))
	}
	posts[3] = post("selling a fresh combo list, dm me", flaggedAt)

	finding := Security(domain.AccountText{Posts: posts})
	require.True(t, finding.Found)
	assert.Equal(t, "flagged language", finding.Value)
	assert.Equal(t, flaggedAt, finding.Date)
	assert.LessOrEqual(t, len([]rune(finding.Evidence)), 100)
	assert.NotContains(t, strings.ToLower(finding.Evidence), "combo list")
	assert.Contains(t, finding.Evidence, "c*********")
}

func TestSecurityCleanIsExplicit(t *testing.T) {
	t.Parallel()

	var posts []domain.Post
	for i := 0; i < 10; i++ {
		posts = append(posts, post("nothing suspicious here", time.Time{}))
	}

	finding := Security(domain.AccountText{Posts: posts})
	require.True(t, finding.Found, "clean must be an explicit finding, never NotFound")
	assert.Equal(t, "clean", finding.Value)
	assert.Empty(t, finding.Evidence)
}

func TestRedactMasksEveryOccurrence(t *testing.T) {
	t.Parallel()

	got := redact("phishing kit and more phishing", "phishing")
	assert.Equal(t, "p******* kit and more p*******", got)
}

func TestRedactSurvivesLengthChangingCase(t *testing.T) {
	t.Parallel()

	// İ grows from 2 to 3 bytes under strings.ToLower; the mask must stay
	// aligned and the text valid UTF-8 regardless.
	got := redact("İİİİ phishing", "phishing")
	assert.Equal(t, "İİİİ p*******", got)
	assert.True(t, utf8.ValidString(got))

	got = redact("PHISHING", "phishing")
	assert.Equal(t, "P*******", got)
}

func TestSecurityEvidenceStaysRedactedWithUnicodePrefix(t *testing.T) {
	t.Parallel()

	finding := Security(domain.AccountText{Posts: []domain.Post{
		post("İİİİ phishing", time.Time{}),
	}})
	require.True(t, finding.Found)
	assert.True(t, utf8.ValidString(finding.Evidence))
	assert.NotContains(t, strings.ToLower(finding.Evidence), "hing")
	assert.Contains(t, finding.Evidence, "p*******")
}
