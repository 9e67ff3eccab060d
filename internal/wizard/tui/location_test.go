package tui

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muurk/ecotrip/internal/geo"
	"github.com/muurk/ecotrip/internal/trip"
)

type fakeResolver struct {
	result geo.Result
	err    error
	calls  atomic.Int32
}

func (f *fakeResolver) Resolve(ctx context.Context) (geo.Result, error) {
	f.calls.Add(1)
	return f.result, f.err
}

// resolve starts a lookup with ctrl+l and delivers its result
func resolve(t *testing.T, m AppModel) AppModel {
	t.Helper()

	updated, cmd := m.Update(keyMsg("ctrl+l"))
	m = updated.(AppModel)
	if !m.Planner.LocationLoading {
		t.Fatal("loading flag not set")
	}

	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(locationResultMsg); ok {
			return send(m, msg)
		}
	}
	t.Fatal("no location result message")
	return m
}

func TestLocationResults(t *testing.T) {
	tests := []struct {
		name      string
		resolver  LocationResolver
		wantLoc   string
		wantError string
	}{
		{
			name:     "address found",
			resolver: &fakeResolver{result: geo.Result{Address: "San José, Costa Rica", Found: true}},
			wantLoc:  "San José, Costa Rica",
		},
		{
			name:     "no results",
			resolver: &fakeResolver{result: geo.Result{Found: false}},
			wantLoc:  "Home",
		},
		{
			name: "missing key",
			resolver: &fakeResolver{err: &geo.LocationError{
				Kind:    geo.KindMissingConfiguration,
				Message: geo.KindMissingConfiguration.Message(),
			}},
			wantLoc:   "Home",
			wantError: "API key is missing.",
		},
		{
			name: "geocoding failed",
			resolver: &fakeResolver{err: &geo.LocationError{
				Kind:    geo.KindGeocodingError,
				Message: geo.KindGeocodingError.Message(),
				Err:     errors.New("boom"),
			}},
			wantLoc:   "Home",
			wantError: "Error fetching location details.",
		},
		{
			name:      "no resolver",
			wantLoc:   "Home",
			wantError: "Geolocation is not supported on this system.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestApp(trip.DefaultOptions(), 120, tt.resolver)
			m = focus(m, RowStartingLocation)
			m = press(m, "Home")

			m = resolve(t, m)

			if m.Planner.LocationLoading {
				t.Error("loading flag still set")
			}
			if got := m.Request().StartingLocation; got != tt.wantLoc {
				t.Errorf("starting location = %q, want %q", got, tt.wantLoc)
			}
			if got := m.Planner.LocationInput.Value(); got != tt.wantLoc {
				t.Errorf("location input = %q, want %q", got, tt.wantLoc)
			}
			if m.Planner.LocationError != tt.wantError {
				t.Errorf("error = %q, want %q", m.Planner.LocationError, tt.wantError)
			}
		})
	}
}

func TestLocationMissingKeyWithStaticLocator(t *testing.T) {
	// Nothing listens here; the key check must stop the lookup first
	r := geo.NewResolver(geo.NewStatic(9.748, -83.753), "", "http://127.0.0.1:1", time.Second)

	m := newTestApp(trip.DefaultOptions(), 120, r)
	m = resolve(t, m)

	if m.Planner.LocationError != "API key is missing." {
		t.Errorf("error = %q", m.Planner.LocationError)
	}
	if m.Planner.LocationLoading {
		t.Error("loading flag still set")
	}
	if m.Request().StartingLocation != "" {
		t.Errorf("starting location = %q, want empty", m.Request().StartingLocation)
	}
}

func TestLocationRequestIgnoredWhileLoading(t *testing.T) {
	r := &fakeResolver{result: geo.Result{Address: "Reykjavík", Found: true}}
	m := newTestApp(trip.DefaultOptions(), 120, r)

	updated, first := m.Update(keyMsg("ctrl+l"))
	m = updated.(AppModel)
	id := m.Planner.locationRequest

	updated, second := m.Update(keyMsg("ctrl+l"))
	m = updated.(AppModel)

	if first == nil {
		t.Fatal("first request returned no command")
	}
	if second != nil {
		t.Error("second request returned a command")
	}
	if m.Planner.locationRequest != id {
		t.Errorf("request id = %d, want %d", m.Planner.locationRequest, id)
	}
}

func TestStaleLocationResultDropped(t *testing.T) {
	m := newTestApp(trip.DefaultOptions(), 120, &fakeResolver{})

	updated, _ := m.Update(keyMsg("ctrl+l"))
	m = updated.(AppModel)
	stale := m.Planner.locationRequest

	// Cancel, then start a new lookup
	m = focus(m, RowUseLocation)
	m = press(m, "esc")
	if m.Planner.LocationLoading {
		t.Fatal("esc did not cancel the lookup")
	}
	m = send(m, locationResultMsg{requestID: stale, result: geo.Result{Address: "Old", Found: true}})
	if m.Request().StartingLocation != "" {
		t.Fatal("result of a cancelled lookup applied")
	}

	m = press(m, "enter")
	current := m.Planner.locationRequest
	if current == stale {
		t.Fatal("request id not advanced")
	}

	m = send(m, locationResultMsg{requestID: stale, result: geo.Result{Address: "Old", Found: true}})
	if m.Request().StartingLocation != "" || !m.Planner.LocationLoading {
		t.Fatal("superseded result applied")
	}

	m = send(m, locationResultMsg{requestID: current, result: geo.Result{Address: "New", Found: true}})
	if got := m.Request().StartingLocation; got != "New" {
		t.Errorf("starting location = %q, want New", got)
	}
}

type blockingResolver struct {
	done chan error
}

func (b *blockingResolver) Resolve(ctx context.Context) (geo.Result, error) {
	<-ctx.Done()
	b.done <- ctx.Err()
	return geo.Result{}, ctx.Err()
}

func TestQuitCancelsLookup(t *testing.T) {
	r := &blockingResolver{done: make(chan error, 1)}
	m := newTestApp(trip.DefaultOptions(), 120, r)

	updated, _ := m.Update(keyMsg("ctrl+l"))
	m = updated.(AppModel)

	go resolveLocationCmd(m.Planner.ctx, r, m.Planner.locationRequest)()

	updated, _ = m.Update(keyMsg("ctrl+c"))
	if !updated.(AppModel).Quitting {
		t.Fatal("ctrl+c did not quit")
	}

	select {
	case err := <-r.done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("resolver ctx error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("lookup context not cancelled on quit")
	}
}
