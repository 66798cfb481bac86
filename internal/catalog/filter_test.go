package catalog

import "testing"

func sampleProducts() []Product {
	return []Product{
		{ID: 1, Name: "Trail Shoes", Brand: "StrideOne", Category: "Shoes", Price: 74.95, Rating: 4.6},
		{ID: 2, Name: "Canvas Sneakers", Brand: "UrbanStep", Category: "Shoes", Price: 39.99, Rating: 4.1},
		{ID: 3, Name: "Bluetooth Speaker", Brand: "SoundWave", Category: "Electronics", Price: 45.0, Rating: 4.2},
		{ID: 4, Name: "Headphones", Brand: "SoundWave", Category: "Electronics", Price: 129.99, Rating: 4.7},
		{ID: 5, Name: "Cotton T-Shirt", Brand: "PureWear", Category: "Clothing", Price: 19.99, Rating: 4.0},
	}
}

func ids(products []Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterEmptyQueryPreservesInput(t *testing.T) {
	products := sampleProducts()
	got := Filter(products, Query{PriceRange: PriceRangeAll})
	if len(got) != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), len(got))
	}
	for i := range got {
		if got[i].ID != products[i].ID {
			t.Fatalf("order changed at %d: got id %d want %d", i, got[i].ID, products[i].ID)
		}
	}
}

func TestFilterSingletonCategory(t *testing.T) {
	got := Filter(sampleProducts(), Query{Categories: []string{"Electronics"}})
	if len(got) == 0 {
		t.Fatal("expected electronics products")
	}
	for _, p := range got {
		if p.Category != "Electronics" {
			t.Fatalf("product %d leaked category %q", p.ID, p.Category)
		}
	}
}

func TestFilterPriceBuckets(t *testing.T) {
	products := []Product{{ID: 1, Name: "Runner", Brand: "X", Category: "Shoes", Price: 30, Rating: 4}}

	got := Filter(products, Query{PriceRange: PriceRangeLow})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected product 1 in 0-50 bucket, got %v", ids(got))
	}

	got = Filter(products, Query{PriceRange: PriceRangeMid})
	if len(got) != 0 {
		t.Fatalf("expected empty result in 50-100 bucket, got %v", ids(got))
	}
}

func TestFilterSearchMatchesNameCategoryBrand(t *testing.T) {
	products := sampleProducts()

	for _, tc := range []struct {
		search string
		want   []int
	}{
		{"sneakers", []int{2}},
		{"SHOES", []int{1, 2}},         // category match, case-insensitive
		{"soundwave", []int{3, 4}},     // brand match
		{"", []int{1, 2, 3, 4, 5}},     // empty matches all
		{"no-such-thing", []int{}},
	} {
		got := ids(Filter(products, Query{Search: tc.search}))
		if len(got) != len(tc.want) {
			t.Fatalf("search %q: got %v want %v", tc.search, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("search %q: got %v want %v", tc.search, got, tc.want)
			}
		}
	}
}

func TestFilterCombinesWithAnd(t *testing.T) {
	got := Filter(sampleProducts(), Query{
		Search:     "sound",
		Categories: []string{"Electronics"},
		Brands:     []string{"SoundWave"},
		PriceRange: PriceRangeLow,
		MinRating:  4.0,
	})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected only product 3, got %v", ids(got))
	}
}

func TestFilterMinRating(t *testing.T) {
	got := Filter(sampleProducts(), Query{MinRating: 4.5})
	want := []int{1, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", ids(got), want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("got %v want %v", ids(got), want)
		}
	}
}

func TestPriceRangeBoundsUnknownActsLikeAll(t *testing.T) {
	min, max := PriceRange("5-10 potatoes").Bounds()
	if min != 0 || max < 1e6 {
		t.Fatalf("unexpected bounds %v..%v", min, max)
	}
}
