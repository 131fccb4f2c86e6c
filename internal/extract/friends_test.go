package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProfileScope/internal/domain"
)

func TestFriendsRankingDeterministic(t *testing.T) {
	t.Parallel()

	// mentions a, a, b, a, b, twitter — the platform account is denylisted
	account := domain.AccountText{Posts: []domain.Post{
		{Text: "1", Mentions: []domain.Handle{"ahmed"}},
		{Text: "2", Mentions: []domain.Handle{"ahmed"}},
		{Text: "3", Mentions: []domain.Handle{"badr"}},
		{Text: "4", Mentions: []domain.Handle{"ahmed"}},
		{Text: "5", Mentions: []domain.Handle{"badr"}},
		{Text: "6", Mentions: []domain.Handle{"twitter"}},
	}}

	ranking := Friends(account)
	require.Equal(t, []domain.FriendCount{
		{Handle: "ahmed", Count: 3},
		{Handle: "badr", Count: 2},
	}, ranking)
}

func TestFriendsTieBrokenByFirstSeen(t *testing.T) {
	t.Parallel()

	account := domain.AccountText{Posts: []domain.Post{
		{Text: "1", Mentions: []domain.Handle{"zuhair", "adel"}},
		{Text: "2", Mentions: []domain.Handle{"adel", "zuhair"}},
	}}

	ranking := Friends(account)
	require.Len(t, ranking, 2)
	assert.Equal(t, domain.Handle("zuhair"), ranking[0].Handle)
	assert.Equal(t, domain.Handle("adel"), ranking[1].Handle)
}

func TestFriendsBoundedToTopFive(t *testing.T) {
	t.Parallel()

	var posts []domain.Post
	for i := 0; i < 8; i++ {
		handle := domain.Handle(fmt.Sprintf("user_%d", i))
		// user_0 mentioned 8 times, user_7 once
		for j := 0; j < 8-i; j++ {
			posts = append(posts, domain.Post{Text: "x", Mentions: []domain.Handle{handle}})
		}
	}

	ranking := Friends(domain.AccountText{Posts: posts})
	require.Len(t, ranking, 5)
	assert.Equal(t, domain.Handle("user_0"), ranking[0].Handle)
	assert.Equal(t, 8, ranking[0].Count)
	assert.Equal(t, domain.Handle("user_4"), ranking[4].Handle)
}
