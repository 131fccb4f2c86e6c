package extract

import (
	"strings"

	"ProfileScope/internal/domain"
)

type place struct {
	Name  string
	Terms []string
}

// Fixed gazetteer, checked in table order within each post. English and
// Arabic spellings map to one canonical name.
var gazetteer = []place{
	{"Riyadh", []string{"riyadh", "الرياض"}},
	{"Jeddah", []string{"jeddah", "جدة", "جده"}},
	{"Mecca", []string{"mecca", "makkah", "مكة"}},
	{"Dammam", []string{"dammam", "الدمام"}},
	{"Dubai", []string{"dubai", "دبي"}},
	{"Abu Dhabi", []string{"abu dhabi", "أبوظبي", "ابوظبي"}},
	{"Kuwait City", []string{"kuwait", "الكويت"}},
	{"Doha", []string{"doha", "الدوحة"}},
	{"Manama", []string{"manama", "المنامة"}},
	{"Cairo", []string{"cairo", "القاهرة"}},
	{"Alexandria", []string{"alexandria", "الإسكندرية", "الاسكندرية"}},
	{"Amman", []string{"amman", "عمان"}},
	{"Baghdad", []string{"baghdad", "بغداد"}},
	{"Istanbul", []string{"istanbul", "اسطنبول", "إسطنبول"}},
	{"London", []string{"london", "لندن"}},
	{"Paris", []string{"paris", "باريس"}},
	{"New York", []string{"new york", "نيويورك"}},
}

// Location returns the first post mentioning any gazetteer entry, with the
// evidencing snippet and that post's date. First-match-wins over the
// delivered post order; no frequency scoring.
func Location(account domain.AccountText) domain.Finding {
	for _, post := range account.Posts {
		text := strings.ToLower(post.Text)
		for _, entry := range gazetteer {
			if containsAny(text, entry.Terms) {
				return domain.NewFinding(entry.Name, post.Text, post.Timestamp)
			}
		}
	}
	return domain.NotFound
}
