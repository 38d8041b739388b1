package domain

import "testing"

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		raw  string
		want Category
		ok   bool
	}{
		{"sight", CategorySight, true},
		{"Attraction", CategorySight, true},
		{"  museum  ", CategorySight, true},
		{"관광지", CategorySight, true},
		{"restaurant", CategoryDining, true},
		{"음식점", CategoryDining, true},
		{"cafe", CategoryCafe, true},
		{"카페", CategoryCafe, true},
		{"hotel", CategoryLodging, true},
		{"숙박", CategoryLodging, true},
		{"parking lot", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, ok := NormalizeCategory(c.raw)
		if ok != c.ok {
			t.Fatalf("NormalizeCategory(%q) ok = %v, want %v", c.raw, ok, c.ok)
		}
		if got != c.want {
			t.Fatalf("NormalizeCategory(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategorySight, CategoryDining, CategoryCafe, CategoryLodging} {
		if !c.Valid() {
			t.Fatalf("expected %q to be valid", c)
		}
	}
	if Category("parking").Valid() {
		t.Fatal("expected unknown category to be invalid")
	}
}
