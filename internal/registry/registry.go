// Package registry defines the content-type registry: the single source of
// truth for which content types exist and what renders for each of them.
//
// The registry is populated once during command wiring, before the Bubble
// Tea program starts, and is read-only afterwards. That temporal invariant
// is enforced by startup ordering, not by locking.
package registry

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrDuplicateID reports a registration collision. This is a
	// configuration bug: startup must abort rather than overwrite.
	ErrDuplicateID = errors.New("duplicate content type id")

	// ErrUnknownType reports a lookup for an id that was never registered.
	ErrUnknownType = errors.New("unknown content type")
)

// Descriptor identifies a content type. ID is the stable key, Label the
// display name shown on its tab.
type Descriptor struct {
	ID    string
	Label string
}

// Form is the contract a content-type renderer must satisfy. The registry
// treats form internals (fields, validation, submission) as opaque.
type Form interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Form, tea.Cmd)
	View() string
	SetSize(width, height int) Form
}

// Renderer constructs the form component for a content type. Renderers take
// no arguments; any dependencies are captured at registration time.
type Renderer func() Form

// Registry maps content-type ids to descriptors and renderers, preserving
// registration order for tab display.
type Registry struct {
	order     []Descriptor
	renderers map[string]Renderer
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// Register associates a descriptor with a renderer.
// Returns ErrDuplicateID if the descriptor's id is already registered.
func (r *Registry) Register(desc Descriptor, render Renderer) error {
	if desc.ID == "" {
		return fmt.Errorf("registering content type: id must not be empty")
	}
	if render == nil {
		return fmt.Errorf("registering content type %q: renderer must not be nil", desc.ID)
	}
	if _, exists := r.renderers[desc.ID]; exists {
		return fmt.Errorf("registering content type %q: %w", desc.ID, ErrDuplicateID)
	}

	r.renderers[desc.ID] = render
	r.order = append(r.order, desc)
	return nil
}

// Resolve returns the renderer registered for id.
// Returns ErrUnknownType if the id was never registered.
func (r *Registry) Resolve(id string) (Renderer, error) {
	render, ok := r.renderers[id]
	if !ok {
		return nil, fmt.Errorf("resolving content type %q: %w", id, ErrUnknownType)
	}
	return render, nil
}

// ListAll returns the registered descriptors in registration order.
// The result is a copy; callers cannot mutate registry state through it.
func (r *Registry) ListAll() []Descriptor {
	out := make([]Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id string) bool {
	_, ok := r.renderers[id]
	return ok
}

// Len returns the number of registered content types.
func (r *Registry) Len() int {
	return len(r.order)
}

// First returns the first registered descriptor, used as the default tab.
// ok is false when the registry is empty.
func (r *Registry) First() (Descriptor, bool) {
	if len(r.order) == 0 {
		return Descriptor{}, false
	}
	return r.order[0], true
}
