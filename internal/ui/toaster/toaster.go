// Package toaster renders transient notifications over the main view.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"curato/internal/ui/overlay"
	"curato/internal/ui/styles"
)

// Level selects the toast's severity treatment.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
	LevelInfo
	LevelWarn
)

// DefaultDuration is how long a toast stays up before auto-dismissing.
const DefaultDuration = 3 * time.Second

// DismissMsg hides the current toast.
type DismissMsg struct{}

// Model holds the toast state.
type Model struct {
	message string
	level   Level
	visible bool
}

// New creates a hidden toaster.
func New() Model {
	return Model{}
}

// Show returns a copy displaying message at the given level, plus the
// command that auto-dismisses it.
func (m Model) Show(message string, level Level) (Model, tea.Cmd) {
	m.message = message
	m.level = level
	m.visible = true
	return m, tea.Tick(DefaultDuration, func(time.Time) tea.Msg {
		return DismissMsg{}
	})
}

// Success shows a success toast.
func (m Model) Success(message string) (Model, tea.Cmd) {
	return m.Show(message, LevelSuccess)
}

// Error shows an error toast.
func (m Model) Error(message string) (Model, tea.Cmd) {
	return m.Show(message, LevelError)
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible reports whether a toast is showing.
func (m Model) Visible() bool {
	return m.visible
}

// View renders the toast box. Empty when hidden.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	box := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var body string
	switch m.level {
	case LevelError:
		box = box.BorderForeground(styles.ToastBorderErrorColor)
		body = "❌ " + m.message
	case LevelInfo:
		box = box.BorderForeground(styles.ToastBorderInfoColor)
		body = "ℹ️ " + m.message
	case LevelWarn:
		box = box.BorderForeground(styles.ToastBorderWarnColor)
		body = "⚠️ " + m.message
	default:
		box = box.BorderForeground(styles.ToastBorderSuccessColor)
		body = "✅ " + m.message
	}

	return box.Render(body)
}

// Overlay composites the toast over bg at the bottom center. Returns
// bg unchanged when no toast is showing.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Bottom(m.View(), bg, width, height, 1)
}
