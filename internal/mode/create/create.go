// Package create implements the create mode controller: a tab bar of
// registered content types with the active type's form hosted in a
// collapsible card.
package create

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"curato/internal/keys"
	"curato/internal/log"
	"curato/internal/mode"
	"curato/internal/registry"
	"curato/internal/selection"
	"curato/internal/ui/button"
	"curato/internal/ui/card"
	"curato/internal/ui/forms"
)

// tabZoneID returns the bubblezone ID for a content-type tab.
func tabZoneID(typeID string) string {
	return "create-tab-" + typeID
}

// Model holds the create mode state.
type Model struct {
	services mode.Services
	sel      *selection.Controller
	keyMap   keys.KeyMap

	tabs   []registry.Descriptor
	form   registry.Form
	card   card.Model
	counts map[string]int

	width  int
	height int
}

// New creates the mode with the selection's active type resolved to
// its form.
func New(services mode.Services, sel *selection.Controller) (Model, error) {
	m := Model{
		services: services,
		sel:      sel,
		keyMap:   keys.DefaultKeyMap(),
		tabs:     services.Registry.ListAll(),
	}
	if len(m.tabs) == 0 {
		return Model{}, fmt.Errorf("create mode: no content types registered")
	}
	m.card = card.New(card.Config{
		ID:          "create-card",
		Title:       "New " + activeLabel(m.tabs, sel.ActiveTypeID()),
		Variant:     card.VariantOutlined,
		Padding:     card.PaddingMedium,
		Collapsible: true,
	})

	var err error
	m.form, err = m.resolveForm(sel.ActiveTypeID())
	if err != nil {
		return Model{}, err
	}
	return m, nil
}

func activeLabel(tabs []registry.Descriptor, typeID string) string {
	for _, tab := range tabs {
		if tab.ID == typeID {
			return tab.Label
		}
	}
	return typeID
}

func (m Model) resolveForm(typeID string) (registry.Form, error) {
	render, err := m.services.Registry.Resolve(typeID)
	if err != nil {
		return nil, fmt.Errorf("create mode: %w", err)
	}
	return render(), nil
}

// countsMsg carries per-type record counts for the tab bar.
type countsMsg struct {
	counts map[string]int
	err    error
}

// loadCounts fetches record counts when the tab bar shows them.
func (m Model) loadCounts() tea.Cmd {
	if m.services.Store == nil || m.services.Config == nil || !m.services.Config.UI.ShowCounts {
		return nil
	}
	st := m.services.Store
	ctx := m.services.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return func() tea.Msg {
		counts, err := st.CountByType(ctx)
		return countsMsg{counts: counts, err: err}
	}
}

// Init returns the active form's initial command.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.loadCounts())
}

// ActiveTypeID returns the selected content-type tab.
func (m Model) ActiveTypeID() string {
	return m.sel.ActiveTypeID()
}

// Update handles create mode messages.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.NextTab):
			return m.switchTab(1)

		case key.Matches(msg, m.keyMap.PrevTab):
			return m.switchTab(-1)

		case key.Matches(msg, m.keyMap.Collapse):
			m.card = m.card.Toggle()
			return m, nil
		}

	case countsMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatMode, "loading record counts", msg.err)
			return m, nil
		}
		m.counts = msg.counts
		return m, nil

	case forms.SavedMsg:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, tea.Batch(cmd, m.loadCounts())

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for _, tab := range m.tabs {
				if z := zone.Get(tabZoneID(tab.ID)); z != nil && z.InBounds(msg) {
					return m.selectTab(tab.ID)
				}
			}
			if z := zone.Get(m.card.ID()); z != nil && z.InBounds(msg) && m.card.Collapsed() {
				m.card = m.card.Toggle()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// switchTab moves the active tab by delta, wrapping at both ends.
func (m Model) switchTab(delta int) (mode.Controller, tea.Cmd) {
	current := 0
	for i, tab := range m.tabs {
		if tab.ID == m.sel.ActiveTypeID() {
			current = i
			break
		}
	}
	next := (current + delta + len(m.tabs)) % len(m.tabs)
	return m.selectTab(m.tabs[next].ID)
}

// selectTab activates the tab for typeID and swaps in its form.
func (m Model) selectTab(typeID string) (mode.Controller, tea.Cmd) {
	if typeID == m.sel.ActiveTypeID() {
		return m, nil
	}
	if err := m.sel.SelectType(typeID); err != nil {
		log.ErrorErr(log.CatMode, "tab selection rejected", err, "type", typeID)
		return m, nil
	}

	form, err := m.resolveForm(typeID)
	if err != nil {
		log.ErrorErr(log.CatMode, "resolving form for tab", err, "type", typeID)
		return m, nil
	}
	m.form = form
	m.form = m.form.SetSize(m.contentWidth(), m.height)
	m.card = m.card.SetTitle("New " + activeLabel(m.tabs, typeID))
	log.Debug(log.CatMode, "tab switched", "type", typeID)
	return m, m.form.Init()
}

// SetSize stores the viewport size and resizes the hosted form.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	m.card = m.card.SetWidth(width - 4)
	m.form = m.form.SetSize(m.contentWidth(), height)
	return m
}

func (m Model) contentWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the tab bar above the form card.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		"",
		m.card.View(m.form.View()),
	)
}

// renderTabs renders one tab button per registered content type. Each
// button carries the tab's zone ID so mouse hits resolve back to the
// type.
func (m Model) renderTabs() string {
	rendered := make([]string, 0, len(m.tabs))
	for _, tab := range m.tabs {
		active := tab.ID == m.sel.ActiveTypeID()
		cfg := button.Config{
			ID:      tabZoneID(tab.ID),
			Label:   m.tabLabel(tab),
			Role:    button.RoleSecondary,
			Variant: button.VariantGhost,
			Size:    button.SizeSmall,
		}
		if active {
			cfg.Variant = button.VariantSubtle
		}
		btn := button.New(cfg).SetFocused(active)
		rendered = append(rendered, btn.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// tabLabel appends the record count when counts are loaded.
func (m Model) tabLabel(tab registry.Descriptor) string {
	if n, ok := m.counts[tab.ID]; ok {
		return fmt.Sprintf("%s (%d)", tab.Label, n)
	}
	return tab.Label
}
