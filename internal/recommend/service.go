package recommend

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/smartshop-labs/catalog-backend/internal/history"
	"github.com/smartshop-labs/catalog-backend/internal/notification"
	"github.com/smartshop-labs/catalog-backend/internal/preference"
)

// ErrNoSignal is returned when there is nothing to base recommendations on:
// the browsing history and the selected categories are both empty. The guard
// fires before any network call.
var ErrNoSignal = errors.New("no browsing history or selected categories")

// Service drives the recommendation flow: guard, upstream call, and the held
// display list that the UI polls. A completed call always replaces the whole
// list; there is no request fencing, so a slow stale response can overwrite
// a fresher one.
type Service struct {
	client   *Client
	prefs    *preference.Store
	history  *history.Store
	notifier *notification.Center

	mu    sync.RWMutex
	items []DisplayItem
}

func NewService(client *Client, prefs *preference.Store, hist *history.Store, notifier *notification.Center) *Service {
	return &Service{
		client:   client,
		prefs:    prefs,
		history:  hist,
		notifier: notifier,
		items:    make([]DisplayItem, 0),
	}
}

// Refresh requests fresh recommendations. On success the display list is
// replaced; on failure it is left untouched and an error notification is
// pushed.
func (s *Service) Refresh(ctx context.Context) ([]DisplayItem, error) {
	snap := s.prefs.Snapshot()
	ids := s.history.IDs()

	if len(ids) == 0 && len(snap.Categories) == 0 {
		s.notifier.Warning("Select at least one category or browse some products first.")
		return nil, ErrNoSignal
	}

	recs, err := s.client.GetRecommendations(ctx, snap, ids)
	if err != nil {
		log.Error().Err(err).Msg("recommendation request failed")
		s.notifier.Error("Could not load recommendations. Please try again.")
		return nil, err
	}

	shaped := Shape(recs)
	s.mu.Lock()
	s.items = shaped
	s.mu.Unlock()

	log.Info().Int("count", len(shaped)).Msg("recommendations updated")
	s.notifier.Success("Recommendations updated.")
	return s.Current(), nil
}

// Current returns a copy of the held display list.
func (s *Service) Current() []DisplayItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]DisplayItem, len(s.items))
	copy(out, s.items)
	return out
}
