package extract

import (
	"strings"

	"ProfileScope/internal/domain"
)

type hobbyTopic struct {
	Name  string
	Terms []string
}

// Topic sets, tested independently in this fixed order. Every matching set
// contributes one segment to the finding.
var hobbyTopics = []hobbyTopic{
	{"gaming", []string{"fifa", "fortnite", "playstation", "ps5", "xbox", "gamer", "قيمر", "لعبة"}},
	{"football", []string{"football", "goal", "match", "league", "الدوري", "كورة", "مباراة", "هدف"}},
	{"technology/security", []string{"programming", "coding", "linux", "cyber", "security", "برمجة", "اختراق", "تقنية"}},
	{"anime/entertainment", []string{"anime", "manga", "netflix", "series", "انمي", "مسلسل", "فيلم"}},
	{"cars", []string{"car", "drift", "engine", "horsepower", "سيارة", "تفحيط", "محرك"}},
}

// Club sub-detection for the football topic, first match in priority order.
var footballClubs = []hobbyTopic{
	{"Al Hilal", []string{"al hilal", "الهلال"}},
	{"Al Nassr", []string{"al nassr", "النصر"}},
	{"Al Ittihad", []string{"al ittihad", "الاتحاد"}},
	{"Al Ahli", []string{"al ahli", "الأهلي", "الاهلي"}},
	{"Real Madrid", []string{"real madrid", "ريال مدريد"}},
	{"Barcelona", []string{"barcelona", "برشلونة"}},
	{"Liverpool", []string{"liverpool", "ليفربول"}},
	{"Manchester United", []string{"manchester united", "مان يونايتد"}},
}

// Hobbies tests the aggregated text against each topic set. Matching
// topics appear in check order; the football topic additionally names the
// first detected club. No match yields the single unclear finding.
func Hobbies(account domain.AccountText) domain.Finding {
	text := joinedText(account)

	var segments []string
	for _, topic := range hobbyTopics {
		if !containsAny(text, topic.Terms) {
			continue
		}
		segment := topic.Name
		if topic.Name == "football" {
			for _, club := range footballClubs {
				if containsAny(text, club.Terms) {
					segment += " (supports " + club.Name + ")"
					break
				}
			}
		}
		segments = append(segments, segment)
	}

	if len(segments) == 0 {
		return domain.Finding{Found: true, Value: domain.Unclear}
	}
	return domain.Finding{Found: true, Value: strings.Join(segments, "; ")}
}
