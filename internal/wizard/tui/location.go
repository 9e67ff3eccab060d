package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/ecotrip/internal/geo"
	"github.com/muurk/ecotrip/internal/logging"
	"github.com/muurk/ecotrip/internal/trip"
)

// LocationResolver turns the current position into an address.
// *geo.Resolver satisfies it.
type LocationResolver interface {
	Resolve(ctx context.Context) (geo.Result, error)
}

// locationResultMsg carries the outcome of one lookup back to Update
type locationResultMsg struct {
	requestID int
	result    geo.Result
	err       error
}

// resolveLocationCmd runs the resolver off the update loop
func resolveLocationCmd(ctx context.Context, r LocationResolver, id int) tea.Cmd {
	return func() tea.Msg {
		if r == nil {
			return locationResultMsg{
				requestID: id,
				err: &geo.LocationError{
					Kind:    geo.KindUnsupportedPlatform,
					Message: geo.KindUnsupportedPlatform.Message(),
				},
			}
		}
		res, err := r.Resolve(ctx)
		return locationResultMsg{requestID: id, result: res, err: err}
	}
}

// requestLocation starts a lookup unless one is already running
func (m PlannerModel) requestLocation() (PlannerModel, tea.Cmd) {
	if m.LocationLoading {
		return m, nil
	}

	parent := m.ctx
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	m.locationRequest++
	m.LocationLoading = true
	m.LocationError = ""
	m.cancelLocation = cancel

	logging.LogLocationRequest(m.Session, m.locationRequest, m.LocatorName)
	return m, tea.Batch(m.Spinner.Tick, resolveLocationCmd(ctx, m.Resolver, m.locationRequest))
}

// cancelLocationLookup abandons the running lookup. Its result will be
// dropped when it arrives.
func (m PlannerModel) cancelLocationLookup() PlannerModel {
	if m.cancelLocation != nil {
		m.cancelLocation()
		m.cancelLocation = nil
	}
	m.LocationLoading = false
	return m
}

// handleLocationResult applies a lookup outcome. Results of superseded or
// cancelled requests are ignored. The loading flag clears on every outcome.
func (m PlannerModel) handleLocationResult(msg locationResultMsg) PlannerModel {
	if !m.LocationLoading || msg.requestID != m.locationRequest {
		logging.Debug("Dropped stale location result",
			zap.String("session", m.Session),
			zap.Int("request_id", msg.requestID),
			zap.Int("current_request_id", m.locationRequest))
		return m
	}

	if m.cancelLocation != nil {
		m.cancelLocation()
		m.cancelLocation = nil
	}
	m.LocationLoading = false

	if msg.err != nil {
		m.LocationError = geo.UserMessage(msg.err)
		logging.LogLocationResult(m.Session, msg.requestID, geo.KindOf(msg.err).String(), false, msg.err)
		return m
	}

	logging.LogLocationResult(m.Session, msg.requestID, "", msg.result.Found, nil)
	if !msg.result.Found {
		return m
	}

	if m.setField(trip.FieldStartingLocation, msg.result.Address) {
		m.LocationInput.SetValue(msg.result.Address)
	}
	return m
}
