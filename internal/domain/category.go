package domain

import "strings"

// Category is the closed set of location kinds the planner schedules.
type Category string

const (
	CategorySight   Category = "sight"
	CategoryDining  Category = "dining"
	CategoryCafe    Category = "cafe"
	CategoryLodging Category = "lodging"
)

// categorySynonyms maps raw catalog type tags onto canonical categories.
// Catalog rows carry a mix of legacy English tags and source-database tags.
var categorySynonyms = map[string]Category{
	"sight":      CategorySight,
	"activity":   CategorySight,
	"attraction": CategorySight,
	"museum":     CategorySight,
	"shopping":   CategorySight,
	"관광지":        CategorySight,
	"문화시설":       CategorySight,
	"레저스포츠":      CategorySight,

	"dining":     CategoryDining,
	"restaurant": CategoryDining,
	"eatery":     CategoryDining,
	"음식점":        CategoryDining,

	"cafe": CategoryCafe,
	"카페":   CategoryCafe,

	"lodging": CategoryLodging,
	"hotel":   CategoryLodging,
	"숙박":      CategoryLodging,
}

// NormalizeCategory maps a raw type tag to its canonical category.
// The second return value reports whether the tag was recognized.
func NormalizeCategory(raw string) (Category, bool) {
	c, ok := categorySynonyms[strings.ToLower(strings.TrimSpace(raw))]
	return c, ok
}

func (c Category) Valid() bool {
	switch c {
	case CategorySight, CategoryDining, CategoryCafe, CategoryLodging:
		return true
	}
	return false
}
