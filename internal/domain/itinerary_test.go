package domain

import "testing"

func TestItineraryCloneIsDeep(t *testing.T) {
	it := Itinerary{
		ID: "trip",
		Days: []Day{
			{Number: 1, Items: []Item{{ID: "a", Name: "Museum", Day: 1}}},
			{Number: 2},
		},
	}

	cp := it.Clone()
	cp.Days[0].Items[0].Name = "Park"
	cp.Days[1].Number = 9

	if it.Days[0].Items[0].Name != "Museum" {
		t.Fatalf("clone shares item storage: %q", it.Days[0].Items[0].Name)
	}
	if it.Days[1].Number != 2 {
		t.Fatalf("clone shares day storage: %d", it.Days[1].Number)
	}
	if cp.Days[1].Items != nil {
		t.Fatalf("nil items should stay nil, got %v", cp.Days[1].Items)
	}
}

func TestItineraryFindItem(t *testing.T) {
	it := Itinerary{Days: []Day{
		{Number: 1, Items: []Item{{ID: "a"}}},
		{Number: 2, Items: []Item{{ID: "b"}, {ID: "c"}}},
	}}

	di, ii, ok := it.FindItem("c")
	if !ok || di != 1 || ii != 1 {
		t.Fatalf("FindItem(c) = %d, %d, %v", di, ii, ok)
	}
	if _, _, ok := it.FindItem("zzz"); ok {
		t.Fatal("FindItem should miss unknown ids")
	}
	if got := it.DayIndex(2); got != 1 {
		t.Fatalf("DayIndex(2) = %d, want 1", got)
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory(" Meal "); !ok || c != CategoryMeal {
		t.Fatalf("ParseCategory(Meal) = %q, %v", c, ok)
	}
	if _, ok := ParseCategory("lodging"); ok {
		t.Fatal("lodging is not a category")
	}
}
