package preference

import "sync"

// Listener receives the full preference snapshot after every mutation.
type Listener func(Snapshot)

// Store holds the session's preference state. Toggles use set semantics
// (add if absent, remove if present) while keeping selection order, so the
// snapshot lists categories and brands in the order they were first chosen.
type Store struct {
	mu       sync.RWMutex
	snap     Snapshot
	listener Listener
}

func NewStore() *Store {
	return &Store{snap: Snapshot{
		Categories: make([]string, 0),
		Brands:     make([]string, 0),
		MaxPrice:   MaxPriceCeiling,
	}}
}

// OnChange registers the single change listener. The shell uses it to log
// preference churn; mutations notify synchronously under no lock ordering
// besides the store's own.
func (s *Store) OnChange(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = fn
}

// ToggleCategory adds the category if absent and removes it if present.
// Toggling twice returns the state to its original set.
func (s *Store) ToggleCategory(category string) Snapshot {
	s.mu.Lock()
	s.snap.Categories = toggle(s.snap.Categories, category)
	snap, fn := s.copySnapshotLocked(), s.listener
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
	return snap
}

// ToggleBrand behaves like ToggleCategory for the brand set.
func (s *Store) ToggleBrand(brand string) Snapshot {
	s.mu.Lock()
	s.snap.Brands = toggle(s.snap.Brands, brand)
	snap, fn := s.copySnapshotLocked(), s.listener
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
	return snap
}

// SetMaxPrice clamps the value to [0, MaxPriceCeiling] and stores it.
func (s *Store) SetMaxPrice(v float64) Snapshot {
	if v < 0 {
		v = 0
	}
	if v > MaxPriceCeiling {
		v = MaxPriceCeiling
	}

	s.mu.Lock()
	s.snap.MaxPrice = v
	snap, fn := s.copySnapshotLocked(), s.listener
	s.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
	return snap
}

// Snapshot returns a copy of the current preference state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copySnapshotLocked()
}

func (s *Store) copySnapshotLocked() Snapshot {
	out := Snapshot{
		Categories: make([]string, len(s.snap.Categories)),
		Brands:     make([]string, len(s.snap.Brands)),
		MaxPrice:   s.snap.MaxPrice,
	}
	copy(out.Categories, s.snap.Categories)
	copy(out.Brands, s.snap.Brands)
	return out
}

func toggle(set []string, v string) []string {
	for i, s := range set {
		if s == v {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, v)
}
