package catalog

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("product not found")

// Store holds the authoritative product list fetched from the upstream
// catalog. The shell replaces its contents wholesale on every (re)load;
// everything else only reads.
type Store struct {
	mu       sync.RWMutex
	products []Product
}

func NewStore() *Store {
	return &Store{products: make([]Product, 0)}
}

// Replace swaps the whole product list. A nil slice clears the catalog.
func (s *Store) Replace(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make([]Product, len(products))
	copy(s.products, products)
}

// List returns a copy of the catalog in upstream order.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) GetByID(id int) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Len reports the number of products currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
