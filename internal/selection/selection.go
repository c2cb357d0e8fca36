// Package selection holds the view selection state machine: which top-level
// mode is active, and which content-type tab is active within create mode.
//
// The controller is a plain object with explicit mutators so the navigation
// logic is unit-testable without a UI runtime. All transitions happen
// synchronously inside the caller's event handler.
package selection

import (
	"fmt"

	"curato/internal/registry"
)

// Mode is the top-level switch between creating new records and managing
// existing ones.
type Mode int

const (
	ModeCreate Mode = iota
	ModeManage
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeManage:
		return "manage"
	default:
		return "unknown"
	}
}

// Selection is a snapshot of the controller state. ActiveTypeID is
// meaningful only in create mode; in manage mode the value is retained but
// ignored.
type Selection struct {
	Mode         Mode
	ActiveTypeID string
}

// Controller owns the selection state. It is mutated only through
// SelectMode and SelectType.
type Controller struct {
	reg          *registry.Registry
	mode         Mode
	activeTypeID string
}

// NewController creates a controller in create mode with the first
// registered content type active.
func NewController(reg *registry.Registry) *Controller {
	c := &Controller{reg: reg, mode: ModeCreate}
	if first, ok := reg.First(); ok {
		c.activeTypeID = first.ID
	}
	return c
}

// NewControllerWithDefault creates a controller with defaultTypeID active.
// An empty or unregistered default falls back to the first registered type.
func NewControllerWithDefault(reg *registry.Registry, defaultTypeID string) *Controller {
	c := NewController(reg)
	if defaultTypeID != "" && reg.Contains(defaultTypeID) {
		c.activeTypeID = defaultTypeID
	}
	return c
}

// Selection returns the current selection snapshot.
func (c *Controller) Selection() Selection {
	return Selection{Mode: c.mode, ActiveTypeID: c.activeTypeID}
}

// Mode returns the active top-level mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// ActiveTypeID returns the active content-type id. The last-known id is
// kept while in manage mode so returning to create mode restores it.
func (c *Controller) ActiveTypeID() string {
	return c.activeTypeID
}

// SelectMode switches the top-level mode. Selecting the current mode is a
// no-op. The active type id is never touched, so create mode always comes
// back to the tab that was active before switching away.
func (c *Controller) SelectMode(m Mode) {
	c.mode = m
}

// SelectType switches the active content-type tab. Returns ErrUnknownType
// and leaves the selection unchanged when the id is not registered. The
// mode is never changed, even on success.
func (c *Controller) SelectType(id string) error {
	if !c.reg.Contains(id) {
		return fmt.Errorf("selecting type %q: %w", id, registry.ErrUnknownType)
	}
	c.activeTypeID = id
	return nil
}
