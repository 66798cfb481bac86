package shell

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
	"github.com/smartshop-labs/catalog-backend/internal/history"
	"github.com/smartshop-labs/catalog-backend/internal/notification"
	"github.com/smartshop-labs/catalog-backend/internal/preference"
	"github.com/smartshop-labs/catalog-backend/internal/recommend"
)

// State is the shell's lifecycle state. Product loading and recommendation
// loading are independent: recommendations only run from ready, products can
// be reloaded at any time.
type State string

const (
	StateIdle                   State = "idle"
	StateLoadingProducts        State = "loadingProducts"
	StateReady                  State = "ready"
	StateLoadingRecommendations State = "loadingRecommendations"
)

// ErrBusy is returned when a recommendation request is already in flight;
// the triggering control is expected to be disabled meanwhile.
var ErrBusy = errors.New("a recommendation request is already in flight")

// App owns the top-level state: the authoritative catalog, the preference
// and history stores, the recommendation service and the notification
// center. It orchestrates the two upstream calls.
type App struct {
	Catalog  *catalog.Store
	Prefs    *preference.Store
	History  *history.Store
	Recs     *recommend.Service
	Notifier *notification.Center

	client *recommend.Client

	mu         sync.Mutex
	state      State
	recLoading bool
}

func NewApp(client *recommend.Client, cat *catalog.Store, prefs *preference.Store, hist *history.Store, recs *recommend.Service, notifier *notification.Center) *App {
	app := &App{
		Catalog:  cat,
		Prefs:    prefs,
		History:  hist,
		Recs:     recs,
		Notifier: notifier,
		client:   client,
		state:    StateIdle,
	}
	prefs.OnChange(func(snap preference.Snapshot) {
		log.Debug().
			Strs("categories", snap.Categories).
			Strs("brands", snap.Brands).
			Float64("maxPrice", snap.MaxPrice).
			Msg("preferences changed")
	})
	return app
}

// LoadProducts runs the idle/ready -> loadingProducts -> ready transition.
// A failed fetch surfaces a notification and still lands in ready with an
// empty catalog.
func (a *App) LoadProducts(ctx context.Context) error {
	a.setState(StateLoadingProducts)

	products, err := a.client.FetchProducts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("loading products failed")
		a.Catalog.Replace(nil)
		a.Notifier.Error("Could not load the product catalog.")
		a.setState(StateReady)
		return err
	}

	a.Catalog.Replace(products)
	log.Info().Int("count", len(products)).Msg("catalog loaded")
	a.setState(StateReady)
	return nil
}

// GetRecommendations runs the ready -> loadingRecommendations -> ready
// transition. Only one request may be in flight at a time; the guard against
// an empty history plus empty category selection lives in the recommend
// service and never reaches the network.
func (a *App) GetRecommendations(ctx context.Context) ([]recommend.DisplayItem, error) {
	a.mu.Lock()
	if a.recLoading {
		a.mu.Unlock()
		return nil, ErrBusy
	}
	a.recLoading = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.recLoading = false
		a.mu.Unlock()
	}()

	return a.Recs.Refresh(ctx)
}

// Status reports the externally visible state.
func (a *App) Status() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.recLoading {
		return StateLoadingRecommendations
	}
	return a.state
}

func (a *App) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}
