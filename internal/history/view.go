package history

import (
	"sort"
	"strings"
	"time"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
)

// Entry is one derived history row: the raw id resolved against the catalog
// and enriched with session-local state.
type Entry struct {
	Product   catalog.Product `json:"product"`
	ViewedAt  time.Time       `json:"viewedAt"`
	ViewCount int             `json:"viewCount"`
	Favorite  bool            `json:"favorite"`
}

// CategoryFavorites is the special category filter selecting only favorited
// entries; CategoryAll (or an empty string) disables category filtering.
const (
	CategoryAll       = "all"
	CategoryFavorites = "favorites"
)

// Sort keys for the derived history view.
const (
	SortRecent = "recent"
	SortName   = "name"
	SortPrice  = "price"
	SortRating = "rating"
)

// ViewOptions narrows and orders the derived entries.
type ViewOptions struct {
	Search   string
	Category string
	Sort     string
}

// Entries resolves the raw history against the catalog and applies the view
// options. Ids whose product has left the catalog are silently dropped. All
// sorts are stable so equal keys keep their recency order.
func (s *Store) Entries(cat *catalog.Store, opts ViewOptions) []Entry {
	ids, viewedAt, counts, favorites := s.snapshot()

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		p, err := cat.GetByID(id)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Product:   p,
			ViewedAt:  viewedAt[id],
			ViewCount: counts[id],
			Favorite:  favorites[id],
		})
	}

	entries = filterEntries(entries, opts)
	sortEntries(entries, opts.Sort)
	return entries
}

func filterEntries(entries []Entry, opts ViewOptions) []Entry {
	search := strings.ToLower(strings.TrimSpace(opts.Search))
	category := opts.Category

	out := entries[:0]
	for _, e := range entries {
		if search != "" {
			p := e.Product
			if !strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.Brand), search) &&
				!strings.Contains(strings.ToLower(p.Category), search) {
				continue
			}
		}
		switch category {
		case "", CategoryAll:
		case CategoryFavorites:
			if !e.Favorite {
				continue
			}
		default:
			if e.Product.Category != category {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

func sortEntries(entries []Entry, key string) {
	switch key {
	case SortName:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Product.Name < entries[j].Product.Name
		})
	case SortPrice:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Product.Price < entries[j].Product.Price
		})
	case SortRating:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Product.Rating > entries[j].Product.Rating
		})
	default:
		// recency: timestamp descending
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].ViewedAt.After(entries[j].ViewedAt)
		})
	}
}
