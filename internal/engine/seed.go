package engine

import "github.com/smartshop-labs/catalog-backend/internal/catalog"

// SeedProducts is the sample catalog used when no database is configured and
// by the dev reset endpoint.
func SeedProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Wireless Noise-Cancelling Headphones", Brand: "SoundWave", Category: "Electronics", Price: 129.99, Rating: 4.7, ReviewCount: 1843, DateAdded: "2025-05-02T00:00:00Z", IsSale: true, Discount: 15},
		{ID: 2, Name: "Smart Fitness Watch", Brand: "PulseTech", Category: "Electronics", Price: 89.5, Rating: 4.4, ReviewCount: 921, DateAdded: "2025-06-14T00:00:00Z", IsNew: true},
		{ID: 3, Name: "Portable Bluetooth Speaker", Brand: "SoundWave", Category: "Electronics", Price: 45.0, Rating: 4.2, ReviewCount: 655, DateAdded: "2025-03-20T00:00:00Z"},
		{ID: 4, Name: "Trail Running Shoes", Brand: "StrideOne", Category: "Shoes", Price: 74.95, Rating: 4.6, ReviewCount: 1287, DateAdded: "2025-04-11T00:00:00Z"},
		{ID: 5, Name: "Everyday Canvas Sneakers", Brand: "UrbanStep", Category: "Shoes", Price: 39.99, Rating: 4.1, ReviewCount: 432, DateAdded: "2025-01-30T00:00:00Z", IsSale: true, Discount: 10},
		{ID: 6, Name: "Leather Hiking Boots", Brand: "StrideOne", Category: "Shoes", Price: 119.0, Rating: 4.8, ReviewCount: 760, DateAdded: "2025-02-18T00:00:00Z"},
		{ID: 7, Name: "Organic Cotton T-Shirt", Brand: "PureWear", Category: "Clothing", Price: 19.99, Rating: 4.0, ReviewCount: 318, DateAdded: "2025-05-25T00:00:00Z"},
		{ID: 8, Name: "Water-Resistant Windbreaker", Brand: "NorthPeak", Category: "Clothing", Price: 64.5, Rating: 4.5, ReviewCount: 542, DateAdded: "2025-06-02T00:00:00Z", IsNew: true},
		{ID: 9, Name: "Merino Wool Beanie", Brand: "NorthPeak", Category: "Clothing", Price: 24.0, Rating: 4.3, ReviewCount: 205, DateAdded: "2024-12-05T00:00:00Z"},
		{ID: 10, Name: "Stainless Steel French Press", Brand: "BrewCraft", Category: "Home & Kitchen", Price: 34.95, Rating: 4.6, ReviewCount: 876, DateAdded: "2025-03-08T00:00:00Z"},
		{ID: 11, Name: "Cast Iron Skillet 12\"", Brand: "HearthLine", Category: "Home & Kitchen", Price: 42.0, Rating: 4.9, ReviewCount: 2310, DateAdded: "2024-11-21T00:00:00Z"},
		{ID: 12, Name: "Aromatherapy Essential Oil Diffuser", Brand: "CalmNest", Category: "Home & Kitchen", Price: 27.5, Rating: 4.2, ReviewCount: 489, DateAdded: "2025-04-29T00:00:00Z", IsSale: true, Discount: 20},
		{ID: 13, Name: "Yoga Mat with Alignment Lines", Brand: "FlexFlow", Category: "Sports", Price: 29.99, Rating: 4.4, ReviewCount: 711, DateAdded: "2025-05-17T00:00:00Z"},
		{ID: 14, Name: "Adjustable Dumbbell Pair", Brand: "IronCore", Category: "Sports", Price: 149.0, Rating: 4.7, ReviewCount: 1034, DateAdded: "2025-02-01T00:00:00Z"},
		{ID: 15, Name: "Insulated Water Bottle 1L", Brand: "FlexFlow", Category: "Sports", Price: 22.5, Rating: 4.5, ReviewCount: 1523, DateAdded: "2025-06-20T00:00:00Z", IsNew: true},
	}
}
