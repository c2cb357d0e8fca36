// Package mode defines the mode controller interface and shared services.
package mode

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"curato/internal/cachemanager"
	"curato/internal/config"
	"curato/internal/content"
	"curato/internal/registry"
	"curato/internal/store"
)

// Controller defines the interface all modes must implement.
type Controller interface {
	// Init returns initial commands for the mode.
	Init() tea.Cmd

	// Update handles messages and returns updated model and commands.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the mode's UI.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) Controller
}

// ListCache is the read-through cache for record listings, keyed by
// content-type ID ("" lists every type).
type ListCache = cachemanager.ReadThroughCache[string, []content.Record, string]

// Services contains shared dependencies injected into mode controllers.
type Services struct {
	Store      *store.Store
	Registry   *registry.Registry
	ListCache  *ListCache
	Config     *config.Config
	ConfigPath string
	DBPath     string

	// Ctx is the application lifetime context. Subscriptions tied to
	// it end when the program shuts down.
	Ctx context.Context
}
