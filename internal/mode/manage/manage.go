// Package manage implements the manage mode controller: a browsable
// list of saved records with a detail pane and guarded deletion.
package manage

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	"curato/internal/content"
	"curato/internal/keys"
	"curato/internal/log"
	"curato/internal/mode"
	"curato/internal/ui/markdown"
	"curato/internal/ui/modal"
	"curato/internal/ui/styles"
)

// listCacheTTL bounds staleness of the record list between
// invalidations. Store events flush the cache, so this only matters
// for changes made outside the running process.
const listCacheTTL = 5 * time.Minute

// allTypes is the cache key and filter value for the unfiltered list.
const allTypes = ""

// recordsLoadedMsg delivers a (possibly cached) list load.
type recordsLoadedMsg struct {
	records []content.Record
	err     error
}

// RefreshMsg forces a reload, bypassing nothing but waiting for the
// cache, which the sender is expected to have invalidated.
type RefreshMsg struct{}

// DeletedMsg announces a completed deletion. The app surfaces it as a
// toast.
type DeletedMsg struct {
	Record content.Record
}

// DeleteFailedMsg announces a failed deletion.
type DeleteFailedMsg struct {
	Err error
}

type deleteResultMsg struct {
	record content.Record
	err    error
}

// Model holds the manage mode state.
type Model struct {
	services mode.Services
	keyMap   keys.KeyMap

	records []content.Record
	cursor  int
	filter  string // Content-type filter, allTypes shows everything
	loading bool
	loadErr error

	confirming bool
	confirm    modal.Model
	pendingID  uuid.UUID

	renderer *markdown.Renderer

	width  int
	height int
}

// New creates the mode. The record list loads on Init.
func New(services mode.Services) Model {
	return Model{
		services: services,
		keyMap:   keys.DefaultKeyMap(),
		filter:   allTypes,
		loading:  true,
	}
}

// Init kicks off the initial list load.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd loads the filtered record list through the read-through
// cache.
func (m Model) loadCmd() tea.Cmd {
	filter := m.filter
	services := m.services
	return func() tea.Msg {
		records, err := services.ListCache.Get(services.Ctx, filter, filter, listCacheTTL)
		return recordsLoadedMsg{records: records, err: err}
	}
}

func (m Model) deleteCmd(id uuid.UUID) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		rec, err := services.Store.Get(services.Ctx, id)
		if err == nil {
			err = services.Store.Delete(services.Ctx, id)
		}
		return deleteResultMsg{record: rec, err: err}
	}
}

// Selected returns the record under the cursor. ok is false when the
// list is empty.
func (m Model) Selected() (content.Record, bool) {
	if len(m.records) == 0 || m.cursor >= len(m.records) {
		return content.Record{}, false
	}
	return m.records[m.cursor], true
}

// Update handles manage mode messages.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	if m.confirming {
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case recordsLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err == nil {
			m.records = msg.records
			if m.cursor >= len(m.records) {
				m.cursor = max(0, len(m.records)-1)
			}
		}
		return m, nil

	case RefreshMsg:
		m.loading = true
		return m, m.loadCmd()

	case deleteResultMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatMode, "record deletion failed", msg.err)
			return m, func() tea.Msg { return DeleteFailedMsg{Err: msg.err} }
		}
		m.loading = true
		return m, tea.Batch(
			m.loadCmd(),
			func() tea.Msg { return DeletedMsg{Record: msg.record} },
		)
	}

	return m, nil
}

func (m Model) updateConfirm(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg.(type) {
	case modal.ConfirmedMsg:
		m.confirming = false
		id := m.pendingID
		return m, m.deleteCmd(id)

	case modal.CancelledMsg:
		m.confirming = false
		return m, nil
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	return m, cmd
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Down):
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Right):
		return m.cycleFilter(1)

	case key.Matches(msg, m.keyMap.Left):
		return m.cycleFilter(-1)

	case key.Matches(msg, m.keyMap.Refresh):
		m.loading = true
		services := m.services
		return m, tea.Sequence(
			func() tea.Msg {
				if err := services.ListCache.Flush(services.Ctx); err != nil {
					log.ErrorErr(log.CatCache, "flushing list cache", err)
				}
				return nil
			},
			m.loadCmd(),
		)

	case key.Matches(msg, m.keyMap.Delete):
		rec, ok := m.Selected()
		if !ok {
			return m, nil
		}
		m.pendingID = rec.ID
		m.confirming = true
		m.confirm = modal.New(modal.Config{
			Title:        "Delete " + rec.Label(),
			Message:      fmt.Sprintf("This permanently removes %q.", rec.Title),
			ConfirmLabel: "Delete",
			Danger:       true,
		}).SetSize(m.width, m.height)
		return m, m.confirm.Init()
	}

	return m, nil
}

// cycleFilter steps through all-types plus each registered type.
func (m Model) cycleFilter(delta int) (mode.Controller, tea.Cmd) {
	filters := []string{allTypes}
	for _, desc := range m.services.Registry.ListAll() {
		filters = append(filters, desc.ID)
	}

	current := 0
	for i, f := range filters {
		if f == m.filter {
			current = i
			break
		}
	}
	m.filter = filters[(current+delta+len(filters))%len(filters)]
	m.cursor = 0
	m.loading = true
	return m, m.loadCmd()
}

// SetSize stores the viewport size and rebuilds the markdown renderer
// at the detail pane width.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	if m.confirming {
		m.confirm = m.confirm.SetSize(width, height)
	}

	r, err := markdown.New(m.detailWidth()-4, m.markdownStyle())
	if err != nil {
		log.ErrorErr(log.CatUI, "building markdown renderer", err)
	} else {
		m.renderer = r
	}
	return m
}

func (m Model) markdownStyle() string {
	if m.services.Config == nil {
		return ""
	}
	return m.services.Config.UI.MarkdownStyle
}

func (m Model) listWidth() int {
	w := m.width * 2 / 5
	if w < 30 {
		w = 30
	}
	return w
}

func (m Model) detailWidth() int {
	w := m.width - m.listWidth() - 2
	if w < 30 {
		w = 30
	}
	return w
}

// View renders the list and detail panes side by side, with the
// delete confirmation overlaid when active.
func (m Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList(),
		" ",
		m.renderDetail(),
	)
	view := lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())

	if m.confirming {
		return m.confirm.Overlay(view)
	}
	return view
}

func (m Model) renderList() string {
	width := m.listWidth()
	titleWidth := width - 14

	var rows []string
	switch {
	case m.loadErr != nil:
		rows = append(rows, styles.ErrorStyle.Render("Load failed: "+m.loadErr.Error()))
	case m.loading && len(m.records) == 0:
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("Loading…"))
	case len(m.records) == 0:
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("No records yet."))
	}

	now := time.Now()
	for i, rec := range m.records {
		prefix := "  "
		if i == m.cursor {
			prefix = styles.SelectionIndicatorStyle.Render("> ")
		}
		row := prefix +
			typeBadge(rec.Type) + " " +
			styles.TruncateString(rec.Title, titleWidth) + " " +
			lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(styles.FormatAge(rec.UpdatedAt, now))
		rows = append(rows, row)
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderDetail() string {
	width := m.detailWidth()

	var body string
	if rec, ok := m.Selected(); ok {
		body = m.renderRecord(rec, width)
	} else {
		body = lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("Select a record to inspect it.")
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Padding(0, 1).
		Render(body)
}

func (m Model) renderRecord(rec content.Record, width int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor)
	labelStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	rows := []string{
		titleStyle.Render(styles.TruncateString(rec.Title, width-4)),
		typeBadge(rec.Type) + " " + labelStyle.Render("updated "+styles.FormatAge(rec.UpdatedAt, time.Now())+" ago"),
		"",
	}

	// Body markdown renders through glamour; everything else lists as
	// label/value pairs.
	for _, key := range []string{
		content.FieldAuthor,
		content.FieldCategory,
		content.FieldVideoURL,
		content.FieldDuration,
		content.FieldPosition,
		content.FieldDescription,
	} {
		if value := rec.Field(key); value != "" {
			rows = append(rows, wordwrap.String(labelStyle.Render(key+": ")+value, width-4))
		}
	}

	if body := rec.Field(content.FieldBody); body != "" {
		rows = append(rows, "")
		if m.renderer != nil {
			rows = append(rows, m.renderer.RenderOrRaw(body))
		} else {
			rows = append(rows, body)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderFooter() string {
	filterLabel := "all types"
	if m.filter != allTypes {
		filterLabel = content.Labels[m.filter]
	}
	text := fmt.Sprintf("%d records · %s", len(m.records), filterLabel)
	if m.loading {
		text += " · refreshing"
	}
	return styles.StatusBarStyle.Render(text)
}

func typeBadge(typeID string) string {
	label := "[" + typeID + "]"
	switch typeID {
	case content.TypeCategory:
		return styles.TypeCategoryStyle.Render(label)
	case content.TypeModule:
		return styles.TypeModuleStyle.Render(label)
	case content.TypeVideo:
		return styles.TypeVideoStyle.Render(label)
	case content.TypeArticle:
		return styles.TypeArticleStyle.Render(label)
	default:
		return lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Render(label)
	}
}
