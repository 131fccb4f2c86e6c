package extract

import (
	"sort"

	"ProfileScope/internal/domain"
)

const maxFriends = 5

// Platform and system accounts excluded from the ranking.
var friendDenylist = map[domain.Handle]struct{}{
	"twitter":   {},
	"x":         {},
	"support":   {},
	"verified":  {},
	"youtube":   {},
	"instagram": {},
	"tiktok":    {},
}

// Friends counts mentioned handles across every post and returns the top
// five, count descending, ties broken by first-seen order. Each post's
// mention set is already merged (markup plus textual @handles) by the
// source layer.
func Friends(account domain.AccountText) []domain.FriendCount {
	counts := map[domain.Handle]int{}
	firstSeen := map[domain.Handle]int{}
	order := 0

	for _, post := range account.Posts {
		for _, mention := range post.Mentions {
			if _, denied := friendDenylist[mention]; denied {
				continue
			}
			if _, ok := counts[mention]; !ok {
				firstSeen[mention] = order
				order++
			}
			counts[mention]++
		}
	}

	ranking := make([]domain.FriendCount, 0, len(counts))
	for handle, count := range counts {
		ranking = append(ranking, domain.FriendCount{Handle: handle, Count: count})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return firstSeen[ranking[i].Handle] < firstSeen[ranking[j].Handle]
	})

	if len(ranking) > maxFriends {
		ranking = ranking[:maxFriends]
	}
	return ranking
}
