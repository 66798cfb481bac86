package history

import (
	"testing"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
)

func testCatalog() *catalog.Store {
	cat := catalog.NewStore()
	cat.Replace([]catalog.Product{
		{ID: 1, Name: "Trail Shoes", Brand: "StrideOne", Category: "Shoes", Price: 74.95, Rating: 4.6},
		{ID: 2, Name: "Canvas Sneakers", Brand: "UrbanStep", Category: "Shoes", Price: 39.99, Rating: 4.1},
		{ID: 3, Name: "Bluetooth Speaker", Brand: "SoundWave", Category: "Electronics", Price: 45.0, Rating: 4.2},
	})
	return cat
}

func entryIDs(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Product.ID
	}
	return out
}

func TestEntriesDropUnresolvedIDs(t *testing.T) {
	s := NewStore(20)
	s.Record(1)
	s.Record(99) // not in catalog
	s.Record(3)

	got := s.Entries(testCatalog(), ViewOptions{})
	want := []int{3, 1}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", entryIDs(got), want)
	}
	for i := range want {
		if got[i].Product.ID != want[i] {
			t.Fatalf("got %v want %v", entryIDs(got), want)
		}
	}
}

func TestEntriesSearchFilter(t *testing.T) {
	s := NewStore(20)
	s.now = fakeClock()
	s.Record(1)
	s.Record(2)
	s.Record(3)

	got := s.Entries(testCatalog(), ViewOptions{Search: "SHOES"})
	// matches category "Shoes" (1, 2) and name "Trail Shoes" (1)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %v", entryIDs(got))
	}

	got = s.Entries(testCatalog(), ViewOptions{Search: "soundwave"})
	if len(got) != 1 || got[0].Product.ID != 3 {
		t.Fatalf("expected brand match on id 3, got %v", entryIDs(got))
	}
}

func TestEntriesCategoryAndFavoritesFilter(t *testing.T) {
	s := NewStore(20)
	s.Record(1)
	s.Record(2)
	s.Record(3)
	s.ToggleFavorite(2)

	got := s.Entries(testCatalog(), ViewOptions{Category: "Electronics"})
	if len(got) != 1 || got[0].Product.ID != 3 {
		t.Fatalf("category filter: got %v", entryIDs(got))
	}

	got = s.Entries(testCatalog(), ViewOptions{Category: CategoryFavorites})
	if len(got) != 1 || got[0].Product.ID != 2 {
		t.Fatalf("favorites filter: got %v", entryIDs(got))
	}

	got = s.Entries(testCatalog(), ViewOptions{Category: CategoryAll})
	if len(got) != 3 {
		t.Fatalf("all filter: got %v", entryIDs(got))
	}
}

func TestEntriesSortKeys(t *testing.T) {
	s := NewStore(20)
	s.now = fakeClock()
	s.Record(1) // oldest
	s.Record(2)
	s.Record(3) // newest

	cat := testCatalog()

	got := s.Entries(cat, ViewOptions{Sort: SortRecent})
	if ids := entryIDs(got); ids[0] != 3 || ids[2] != 1 {
		t.Fatalf("recent sort: got %v", ids)
	}

	got = s.Entries(cat, ViewOptions{Sort: SortName})
	if ids := entryIDs(got); ids[0] != 3 || ids[1] != 2 || ids[2] != 1 {
		// Bluetooth Speaker, Canvas Sneakers, Trail Shoes
		t.Fatalf("name sort: got %v", ids)
	}

	got = s.Entries(cat, ViewOptions{Sort: SortPrice})
	if ids := entryIDs(got); ids[0] != 2 || ids[2] != 1 {
		t.Fatalf("price sort: got %v", ids)
	}

	got = s.Entries(cat, ViewOptions{Sort: SortRating})
	if ids := entryIDs(got); ids[0] != 1 {
		t.Fatalf("rating sort: got %v", ids)
	}
}

func TestEntriesSortIsStableOnTies(t *testing.T) {
	cat := catalog.NewStore()
	cat.Replace([]catalog.Product{
		{ID: 1, Name: "Same", Price: 10, Rating: 4},
		{ID: 2, Name: "Same", Price: 10, Rating: 4},
		{ID: 3, Name: "Same", Price: 10, Rating: 4},
	})

	s := NewStore(20)
	s.now = fakeClock()
	s.Record(1)
	s.Record(2)
	s.Record(3)

	// all keys equal: name sort must keep the recency order 3, 2, 1
	got := s.Entries(cat, ViewOptions{Sort: SortName})
	want := []int{3, 2, 1}
	for i := range want {
		if got[i].Product.ID != want[i] {
			t.Fatalf("stability broken: got %v want %v", entryIDs(got), want)
		}
	}
}
