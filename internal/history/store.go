package history

import (
	"sync"
	"time"
)

// DefaultLimit caps the raw browsing history length.
const DefaultLimit = 20

// Store keeps the session's browsing history: an ordered, de-duplicated,
// capped list of viewed product ids, most-recent-first. Favorite flags and
// view counts live beside the list and survive eviction; they belong to the
// identifier, not to its current position in the history.
type Store struct {
	mu        sync.RWMutex
	limit     int
	ids       []int
	viewedAt  map[int]time.Time
	counts    map[int]int
	favorites map[int]bool
	now       func() time.Time
}

func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{
		limit:     limit,
		ids:       make([]int, 0, limit),
		viewedAt:  make(map[int]time.Time),
		counts:    make(map[int]int),
		favorites: make(map[int]bool),
		now:       time.Now,
	}
}

// Record registers a product view. A re-visited id moves to the front
// instead of appearing twice; when the list grows past the cap the oldest id
// falls off.
//
// Timestamp rule: an id entering the history gets "now", and whenever the
// front entry changes identity the promoted id is re-stamped. An id that is
// already at the front, or that sits deeper in the list without being
// promoted, keeps its existing timestamp.
func (s *Store) Record(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[id]++

	if len(s.ids) > 0 && s.ids[0] == id {
		// Front identity unchanged: no timestamp refresh.
		return
	}

	for i, existing := range s.ids {
		if existing == id {
			copy(s.ids[1:i+1], s.ids[:i])
			s.ids[0] = id
			s.viewedAt[id] = s.now()
			return
		}
	}

	s.ids = append([]int{id}, s.ids...)
	s.viewedAt[id] = s.now()
	if len(s.ids) > s.limit {
		evicted := s.ids[len(s.ids)-1]
		s.ids = s.ids[:len(s.ids)-1]
		delete(s.viewedAt, evicted)
	}
}

// IDs returns the raw history, most-recent-first.
func (s *Store) IDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// ToggleFavorite flips the local favorite flag for the id and returns the
// new value. The flag is independent of the catalog and of the history list
// itself.
func (s *Store) ToggleFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites[id] = !s.favorites[id]
	return s.favorites[id]
}

// Remove clears only the favorite flag for the id; the id itself stays in
// the history list.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.favorites, id)
}

// Favorites returns the set of ids currently flagged as favorites.
func (s *Store) Favorites() map[int]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]bool, len(s.favorites))
	for id, fav := range s.favorites {
		if fav {
			out[id] = true
		}
	}
	return out
}

// Len reports the raw history length.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// snapshot exposes a consistent view of the raw state for derivation.
func (s *Store) snapshot() (ids []int, viewedAt map[int]time.Time, counts map[int]int, favorites map[int]bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids = make([]int, len(s.ids))
	copy(ids, s.ids)
	viewedAt = make(map[int]time.Time, len(s.viewedAt))
	for k, v := range s.viewedAt {
		viewedAt[k] = v
	}
	counts = make(map[int]int, len(s.counts))
	for k, v := range s.counts {
		counts[k] = v
	}
	favorites = make(map[int]bool, len(s.favorites))
	for k, v := range s.favorites {
		favorites[k] = v
	}
	return ids, viewedAt, counts, favorites
}
