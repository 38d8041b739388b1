package catalog

import "strings"

const minScore = 50.0

// similarKeywords gives half credit when a requested style does not appear
// verbatim in a row's tags but a related tag does.
var similarKeywords = map[string][]string{
	"healing":      {"nature", "park", "spa", "walk"},
	"food tour":    {"restaurant", "street food", "market"},
	"history":      {"museum", "palace", "heritage", "temple"},
	"cafe tour":    {"cafe", "dessert", "bakery"},
	"popup stores": {"shopping", "popup", "market"},
	"romantic":     {"night view", "river", "observatory"},
	"activity":     {"leisure", "sports", "theme park"},
}

// scoreTags rates a catalog row against a request. Every row starts at a
// base score; style matches add up to 30 points and requirement matches up
// to 20. Rows scoring below minScore are filtered out by the caller.
func scoreTags(tags, styles, requirements []string) float64 {
	score := 50.0

	if len(styles) > 0 {
		matched := 0.0
		for _, style := range styles {
			want := strings.ToLower(strings.TrimSpace(style))
			switch {
			case hasTag(tags, want):
				matched++
			case hasSimilarTag(tags, want):
				matched += 0.5
			}
		}
		score += matched / float64(len(styles)) * 30
	}

	if len(requirements) > 0 {
		matched := 0.0
		for _, req := range requirements {
			if hasTag(tags, strings.ToLower(strings.TrimSpace(req))) {
				matched++
			}
		}
		score += matched / float64(len(requirements)) * 20
	}

	return score
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), want) {
			return true
		}
	}
	return false
}

func hasSimilarTag(tags []string, want string) bool {
	for _, similar := range similarKeywords[want] {
		if hasTag(tags, similar) {
			return true
		}
	}
	return false
}
