package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProfileScope/internal/domain"
)

func post(text string, ts time.Time, mentions ...domain.Handle) domain.Post {
	return domain.Post{Text: text, Timestamp: ts, Mentions: mentions}
}

func TestExtractEmptyPostList(t *testing.T) {
	t.Parallel()

	facts := Extract(domain.AccountText{Bio: "just a bio"})

	assert.False(t, facts.Birthday.Found)
	assert.False(t, facts.Location.Found)
	assert.Empty(t, facts.Friends)
	assert.Equal(t, "balanced", facts.Personality.Value)
	assert.Equal(t, domain.Unclear, facts.Hobbies.Value)
	assert.Equal(t, "clean", facts.Security.Value)
	assert.False(t, facts.Device.Found)
}

func TestBirthdayFirstMatchWins(t *testing.T) {
	t.Parallel()

	first := time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC)
	second := time.Date(2023, time.March, 14, 12, 0, 0, 0, time.UTC)

	account := domain.AccountText{Posts: []domain.Post{
		post("nothing to see here", time.Time{}),
		post("it's my birthday today!!", first),
		post("remembering my birthday last year", second),
	}}

	finding := Birthday(account)
	require.True(t, finding.Found)
	assert.Equal(t, "March 14", finding.Value)
	assert.Equal(t, first, finding.Date)
	assert.Contains(t, finding.Evidence, "my birthday")
}

func TestBirthdayArabicPhrase(t *testing.T) {
	t.Parallel()

	account := domain.AccountText{Posts: []domain.Post{
		post("اليوم عيد ميلادي 🎂", time.Time{}),
	}}

	finding := Birthday(account)
	require.True(t, finding.Found)
	assert.Equal(t, "birthday mention", finding.Value)
}

func TestLocationFirstMatch(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	account := domain.AccountText{Posts: []domain.Post{
		post("great coffee in Jeddah this morning", ts),
		post("flying to Dubai next week", ts),
	}}

	finding := Location(account)
	require.True(t, finding.Found)
	assert.Equal(t, "Jeddah", finding.Value)
	assert.Equal(t, ts, finding.Date)
	assert.LessOrEqual(t, len([]rune(finding.Evidence)), 100)
}

func TestPersonalityRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want string
	}{
		{"warm", "thank you all, love this community, congrats everyone", "tends warm/supportive"},
		{"sharp", "shut up, what a pathetic take, trash opinion", "tends sharp/confrontational"},
		{"balanced on tie", "a completely neutral post", "balanced"},
		{
			"self assured",
			"i think x. i think y. i believe z. in my opinion w. i always say this.",
			"self-assured/vocal about own views",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			account := domain.AccountText{Posts: []domain.Post{post(tc.text, time.Time{})}}
			finding := Personality(account)
			require.True(t, finding.Found)
			assert.Contains(t, finding.Value, tc.want)
		})
	}
}

func TestPersonalityEmissionOrder(t *testing.T) {
	t.Parallel()

	// Warm tone plus enough self-reference and analytical markers to fire
	// every rule; emission order is fixed.
	text := "thanks! thank you! appreciate it! " +
		"i think a. i think b. i believe c. my take d. i always e. " +
		"because x. because y. therefore z. the data w. evidence v."
	account := domain.AccountText{Posts: []domain.Post{post(text, time.Time{})}}

	finding := Personality(account)
	assert.Equal(t,
		"tends warm/supportive; self-assured/vocal about own views; analytical/reflective",
		finding.Value)
}

func TestHobbiesOrderAndClubDetection(t *testing.T) {
	t.Parallel()

	account := domain.AccountText{Posts: []domain.Post{
		post("watching the match, great goal from Al Hilal in the league", time.Time{}),
		post("new ps5 game is out", time.Time{}),
	}}

	finding := Hobbies(account)
	require.True(t, finding.Found)
	// gaming is checked before football, regardless of post order
	assert.Equal(t, "gaming; football (supports Al Hilal)", finding.Value)
}

func TestHobbiesUnclear(t *testing.T) {
	t.Parallel()

	account := domain.AccountText{Posts: []domain.Post{post("plain everyday words", time.Time{})}}
	assert.Equal(t, domain.Unclear, Hobbies(account).Value)
}

func TestDeviceBucketsMostFrequent(t *testing.T) {
	t.Parallel()

	account := domain.AccountText{Posts: []domain.Post{
		{Text: "a", Client: "Twitter for iPhone"},
		{Text: "b", Client: "Twitter Web App"},
		{Text: "c", Client: "Twitter for iPhone"},
	}}

	finding := Device(account)
	require.True(t, finding.Found)
	assert.Equal(t, "iPhone", finding.Value)
}

func TestDeviceTieBrokenByFirstEncountered(t *testing.T) {
	t.Parallel()

	account := domain.AccountText{Posts: []domain.Post{
		{Text: "a", Client: "Twitter Web App"},
		{Text: "b", Client: "Twitter for Android"},
	}}

	finding := Device(account)
	require.True(t, finding.Found)
	assert.Equal(t, "Web", finding.Value)
}

func TestDeviceUnknownLabel(t *testing.T) {
	t.Parallel()

	account := domain.AccountText{Posts: []domain.Post{{Text: "a", Client: "TweetDeck"}}}
	assert.Equal(t, "other/unknown", Device(account).Value)
}
