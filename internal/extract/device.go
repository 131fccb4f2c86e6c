package extract

import (
	"strings"

	"ProfileScope/internal/domain"
)

type deviceBucket struct {
	Name  string
	Terms []string
}

// Client labels bucket by substring match, in this order.
var deviceBuckets = []deviceBucket{
	{"iPhone", []string{"iphone", "ios", "ipad"}},
	{"Android", []string{"android"}},
	{"Web", []string{"web"}},
}

const otherDevice = "other/unknown"

// Device counts per-post client labels, picks the most frequent one (ties
// broken by first-encountered label) and buckets it. Sources that expose
// no client metadata yield NotFound.
func Device(account domain.AccountText) domain.Finding {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	order := 0

	for _, post := range account.Posts {
		label := strings.TrimSpace(post.Client)
		if label == "" {
			continue
		}
		if _, ok := counts[label]; !ok {
			firstSeen[label] = order
			order++
		}
		counts[label]++
	}

	if len(counts) == 0 {
		return domain.NotFound
	}

	best := ""
	for label, count := range counts {
		if best == "" {
			best = label
			continue
		}
		if count > counts[best] || (count == counts[best] && firstSeen[label] < firstSeen[best]) {
			best = label
		}
	}

	return domain.Finding{Found: true, Value: bucket(best), Evidence: best}
}

func bucket(label string) string {
	lower := strings.ToLower(label)
	for _, b := range deviceBuckets {
		if containsAny(lower, b.Terms) {
			return b.Name
		}
	}
	return otherDevice
}
