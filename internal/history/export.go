package history

import "time"

// ExportEntry is the flattened row shape of the downloadable history
// document.
type ExportEntry struct {
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	ViewedAt string  `json:"viewedAt"`
	Favorite bool    `json:"favorite"`
}

// ExportDocument wraps the exported rows with the export timestamp. The
// export covers whatever the current view shows, filtered and sorted, and
// involves no network round trip.
type ExportDocument struct {
	ExportedAt string        `json:"exportedAt"`
	Count      int           `json:"count"`
	Entries    []ExportEntry `json:"entries"`
}

// BuildExport converts derived entries into the download document.
func BuildExport(entries []Entry, now time.Time) ExportDocument {
	rows := make([]ExportEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ExportEntry{
			Name:     e.Product.Name,
			Brand:    e.Product.Brand,
			Category: e.Product.Category,
			Price:    e.Product.Price,
			Rating:   e.Product.Rating,
			ViewedAt: e.ViewedAt.UTC().Format(time.RFC3339),
			Favorite: e.Favorite,
		})
	}
	return ExportDocument{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Count:      len(rows),
		Entries:    rows,
	}
}
