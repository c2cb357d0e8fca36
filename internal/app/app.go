// Package app contains the root application model: mode switching,
// global key handling, toast notifications, and refresh plumbing from
// store events and the database watcher.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"curato/internal/content"
	"curato/internal/keys"
	"curato/internal/log"
	"curato/internal/mode"
	"curato/internal/mode/create"
	"curato/internal/mode/manage"
	"curato/internal/pubsub"
	"curato/internal/selection"
	"curato/internal/ui/forms"
	"curato/internal/ui/help"
	"curato/internal/ui/styles"
	"curato/internal/ui/toaster"
	"curato/internal/watcher"
)

// dbChangedMsg signals an external write to the records database.
type dbChangedMsg struct{}

// Model is the root application state.
type Model struct {
	services mode.Services
	sel      *selection.Controller
	keyMap   keys.KeyMap

	create create.Model
	manage manage.Model

	toaster       toaster.Model
	helpView      help.Model
	showHelp      bool
	showStatusBar bool

	// Store events drive cache invalidation and manage-mode refresh.
	recordListener *pubsub.ContinuousListener[content.Record]

	// Watcher picks up writes from outside this process.
	watcherHandle *watcher.Watcher
	watcherCh     <-chan struct{}

	width  int
	height int
}

// New wires the application model. The watcher is optional: when
// auto-refresh is disabled or the watcher fails to start, the app runs
// without it.
func New(services mode.Services, sel *selection.Controller) (Model, error) {
	createMode, err := create.New(services, sel)
	if err != nil {
		return Model{}, fmt.Errorf("building create mode: %w", err)
	}

	m := Model{
		services:       services,
		sel:            sel,
		keyMap:         keys.DefaultKeyMap(),
		create:         createMode,
		manage:         manage.New(services),
		toaster:        toaster.New(),
		helpView:       help.New(),
		showStatusBar:  services.Config == nil || services.Config.UI.ShowStatusBar,
		recordListener: pubsub.NewContinuousListener(services.Ctx, services.Store.Events()),
	}

	if services.Config != nil && services.Config.AutoRefresh && services.DBPath != "" {
		w, err := watcher.New(watcher.DefaultConfig(services.DBPath))
		if err != nil {
			log.Warn(log.CatWatcher, "Watcher unavailable, auto-refresh disabled", "error", err)
			return m, nil
		}
		ch, err := w.Start()
		if err != nil {
			log.Warn(log.CatWatcher, "Watcher failed to start, auto-refresh disabled", "error", err)
			_ = w.Stop()
			return m, nil
		}
		m.watcherHandle = w
		m.watcherCh = ch
	}

	return m, nil
}

// Init starts the active mode and the event listeners.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.create.Init(),
		m.manage.Init(),
		m.recordListener.Listen(),
	}
	if m.watcherCh != nil {
		cmds = append(cmds, m.listenWatcher())
	}
	return tea.Batch(cmds...)
}

func (m Model) listenWatcher() tea.Cmd {
	ch := m.watcherCh
	ctx := m.services.Ctx
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			return dbChangedMsg{}
		}
	}
}

// Mode returns the active top-level mode.
func (m Model) Mode() selection.Mode {
	return m.sel.Mode()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.create = m.create.SetSize(msg.Width, msg.Height-1).(create.Model)
		m.manage = m.manage.SetSize(msg.Width, msg.Height-1).(manage.Model)
		m.helpView = m.helpView.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.showHelp {
			switch {
			case key.Matches(msg, m.keyMap.Help),
				key.Matches(msg, m.keyMap.Escape),
				key.Matches(msg, m.keyMap.Quit):
				m.showHelp = false
			}
			return m, nil
		}
		if key.Matches(msg, m.keyMap.SwitchMode) {
			return m.switchMode()
		}
		// Plain-letter globals stay out of create mode, where they
		// would collide with form input. F1 still opens help there.
		if m.sel.Mode() == selection.ModeManage {
			switch {
			case key.Matches(msg, m.keyMap.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keyMap.ToggleStatus):
				m.showStatusBar = !m.showStatusBar
				return m, nil
			case key.Matches(msg, m.keyMap.Help):
				return m.openHelp()
			}
		} else if msg.String() == "f1" {
			return m.openHelp()
		}

	case forms.SavedMsg:
		var toastCmd tea.Cmd
		m.toaster, toastCmd = m.toaster.Success(msg.Record.Label() + " saved: " + msg.Record.Title)
		var modeCmd tea.Cmd
		var ctrl mode.Controller
		ctrl, modeCmd = m.create.Update(msg)
		m.create = ctrl.(create.Model)
		return m, tea.Batch(toastCmd, modeCmd)

	case forms.SaveFailedMsg:
		var toastCmd tea.Cmd
		m.toaster, toastCmd = m.toaster.Error("Save failed: " + msg.Err.Error())
		var modeCmd tea.Cmd
		var ctrl mode.Controller
		ctrl, modeCmd = m.create.Update(msg)
		m.create = ctrl.(create.Model)
		return m, tea.Batch(toastCmd, modeCmd)

	case manage.DeletedMsg:
		var toastCmd tea.Cmd
		m.toaster, toastCmd = m.toaster.Success(msg.Record.Label() + " deleted: " + msg.Record.Title)
		return m, toastCmd

	case manage.DeleteFailedMsg:
		var toastCmd tea.Cmd
		m.toaster, toastCmd = m.toaster.Error("Delete failed: " + msg.Err.Error())
		return m, toastCmd

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()
		return m, nil

	case pubsub.Event[content.Record]:
		return m.handleRecordEvent(msg)

	case dbChangedMsg:
		log.Debug(log.CatUI, "Database changed on disk, refreshing")
		return m.refreshAfterChange(m.listenWatcher())
	}

	return m.delegate(msg)
}

// handleRecordEvent reacts to a store write: the list cache is stale,
// and manage mode needs fresh rows if it is on screen.
func (m Model) handleRecordEvent(event pubsub.Event[content.Record]) (tea.Model, tea.Cmd) {
	log.Debug(log.CatCache, "Record event, flushing list cache", "kind", string(event.Kind))
	return m.refreshAfterChange(m.recordListener.Listen())
}

func (m Model) refreshAfterChange(relisten tea.Cmd) (tea.Model, tea.Cmd) {
	if err := m.services.ListCache.Flush(m.services.Ctx); err != nil {
		log.ErrorErr(log.CatCache, "flushing list cache", err)
	}

	cmds := []tea.Cmd{relisten}
	if m.sel.Mode() == selection.ModeManage {
		var modeCmd tea.Cmd
		var ctrl mode.Controller
		ctrl, modeCmd = m.manage.Update(manage.RefreshMsg{})
		m.manage = ctrl.(manage.Model)
		cmds = append(cmds, modeCmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) openHelp() (tea.Model, tea.Cmd) {
	if m.sel.Mode() == selection.ModeManage {
		m.helpView = m.helpView.SetMode(help.ModeManage)
	} else {
		m.helpView = m.helpView.SetMode(help.ModeCreate)
	}
	m.showHelp = true
	return m, nil
}

// switchMode toggles between create and manage. Manage reloads on
// entry so deletions and saves made elsewhere are visible.
func (m Model) switchMode() (tea.Model, tea.Cmd) {
	switch m.sel.Mode() {
	case selection.ModeCreate:
		m.sel.SelectMode(selection.ModeManage)
		log.Info(log.CatMode, "Switching mode", "from", "create", "to", "manage")
		var cmd tea.Cmd
		var ctrl mode.Controller
		ctrl, cmd = m.manage.Update(manage.RefreshMsg{})
		m.manage = ctrl.(manage.Model)
		return m, cmd

	default:
		m.sel.SelectMode(selection.ModeCreate)
		log.Info(log.CatMode, "Switching mode", "from", "manage", "to", "create")
		return m, nil
	}
}

// delegate routes a message to the active mode controller.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var ctrl mode.Controller
	switch m.sel.Mode() {
	case selection.ModeManage:
		ctrl, cmd = m.manage.Update(msg)
		m.manage = ctrl.(manage.Model)
	default:
		ctrl, cmd = m.create.Update(msg)
		m.create = ctrl.(create.Model)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var view string
	switch m.sel.Mode() {
	case selection.ModeManage:
		view = m.manage.View()
	default:
		view = m.create.View()
	}

	if m.showStatusBar {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.renderStatusBar())
	}

	if m.showHelp {
		view = m.helpView.Overlay(view)
	}

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	// Scan once at the top level so every zone.Mark in the tree maps
	// to screen coordinates for mouse routing.
	return zone.Scan(view)
}

func (m Model) renderStatusBar() string {
	text := m.sel.Mode().String()
	if m.sel.Mode() == selection.ModeCreate {
		if label, ok := content.Labels[m.sel.ActiveTypeID()]; ok {
			text += " · " + label
		}
	}
	text += " · ^space mode · tab type · ^z collapse"
	if m.sel.Mode() == selection.ModeManage {
		text = m.sel.Mode().String() + " · ^space mode · ←/→ filter · d delete · r refresh · q quit"
	}
	return styles.StatusBarStyle.Render(text)
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
	}
	return nil
}
