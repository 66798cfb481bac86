package engine

import (
	"errors"
	"sync"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
)

var ErrNotFound = errors.New("product not found")

// Repository provides access to the engine's product catalog.
type Repository interface {
	List() ([]catalog.Product, error)
	GetByIDs(ids []int) ([]catalog.Product, error)
	Create(p catalog.Product) (catalog.Product, error)
	Update(id int, p catalog.Product) (catalog.Product, error)
	Delete(id int) error
	// Reset replaces all products with the provided list (used for dev / seeding)
	Reset(products []catalog.Product) error
}

// InMemoryRepository backs the engine when no database is configured and in
// tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []catalog.Product
	nextID  int
}

func NewInMemoryRepository(seed []catalog.Product) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]catalog.Product, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, p := range seed {
		r.storage = append(r.storage, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List() ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Product, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

// GetByIDs returns the products for the given ids in the order the ids were
// given, skipping unknown ids.
func (r *InMemoryRepository) GetByIDs(ids []int) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := make(map[int]catalog.Product, len(r.storage))
	for _, p := range r.storage {
		byID[p.ID] = p
	}

	out := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(p catalog.Product) (catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id int, p catalog.Product) (catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			p.ID = id
			r.storage[i] = p
			return p, nil
		}
	}
	return catalog.Product{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Reset(products []catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]catalog.Product, 0, len(products))
	maxID := 0
	for _, p := range products {
		if p.ID == 0 {
			p.ID = r.nextID
			r.nextID++
		}
		r.storage = append(r.storage, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	if maxID >= r.nextID {
		r.nextID = maxID + 1
	}
	return nil
}
