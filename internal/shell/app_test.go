package shell

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/smartshop-labs/catalog-backend/internal/catalog"
	"github.com/smartshop-labs/catalog-backend/internal/history"
	"github.com/smartshop-labs/catalog-backend/internal/notification"
	"github.com/smartshop-labs/catalog-backend/internal/preference"
	"github.com/smartshop-labs/catalog-backend/internal/recommend"
)

func newTestShell(t *testing.T, upstream http.Handler) (*App, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	client := recommend.NewClient(recommend.ClientConfig{BaseURL: srv.URL})
	cat := catalog.NewStore()
	prefs := preference.NewStore()
	hist := history.NewStore(history.DefaultLimit)
	notifier := notification.NewCenter(time.Minute)
	recs := recommend.NewService(client, prefs, hist, notifier)

	return NewApp(client, cat, prefs, hist, recs, notifier), srv
}

func TestLoadProductsSuccess(t *testing.T) {
	app, _ := newTestShell(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Trail Shoes"},{"id":2,"name":"Canvas Sneakers"}]`))
	}))

	if err := app.LoadProducts(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status() != StateReady {
		t.Fatalf("expected ready, got %s", app.Status())
	}
	if app.Catalog.Len() != 2 {
		t.Fatalf("expected 2 products, got %d", app.Catalog.Len())
	}
}

func TestLoadProductsFailureLandsReadyWithEmptyCatalog(t *testing.T) {
	app, _ := newTestShell(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	// Seed the catalog so we can observe it being cleared.
	app.Catalog.Replace([]catalog.Product{{ID: 9, Name: "Old"}})

	if err := app.LoadProducts(context.Background()); err == nil {
		t.Fatal("expected error from failing upstream")
	}
	if app.Status() != StateReady {
		t.Fatalf("failure must still land in ready, got %s", app.Status())
	}
	if app.Catalog.Len() != 0 {
		t.Fatal("failed load must leave an empty catalog")
	}

	active := app.Notifier.Active()
	if len(active) != 1 || active[0].Severity != notification.SeverityError {
		t.Fatalf("expected one error notification, got %v", active)
	}
}

func TestGetRecommendationsSingleFlight(t *testing.T) {
	release := make(chan struct{})
	app, _ := newTestShell(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{"recommendations":[],"count":0}`))
	}))
	app.History.Record(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.GetRecommendations(context.Background())
	}()

	// Wait for the first request to hold the in-flight flag.
	deadline := time.Now().Add(2 * time.Second)
	for app.Status() != StateLoadingRecommendations {
		if time.Now().After(deadline) {
			t.Fatal("first request never took the in-flight flag")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := app.GetRecommendations(context.Background()); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(release)
	wg.Wait()

	if app.Status() == StateLoadingRecommendations {
		t.Fatal("in-flight flag must clear after completion")
	}
}

func TestGetRecommendationsGuardErrorPropagates(t *testing.T) {
	app, _ := newTestShell(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("network call should not happen")
	}))

	if _, err := app.GetRecommendations(context.Background()); !errors.Is(err, recommend.ErrNoSignal) {
		t.Fatalf("expected ErrNoSignal, got %v", err)
	}
}
