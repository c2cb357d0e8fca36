// Package modal provides a confirmation dialog rendered over the main
// view. Destructive confirmations style the confirm button in the
// error color.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"curato/internal/ui/overlay"
	"curato/internal/ui/styles"
)

// Config controls the dialog's content and treatment.
type Config struct {
	Title        string
	Message      string
	ConfirmLabel string // Defaults to "Confirm"
	Danger       bool   // Destructive action, confirm renders in error color
	MinWidth     int    // Defaults to 40
}

// ConfirmedMsg is sent when the user accepts the dialog.
type ConfirmedMsg struct{}

// CancelledMsg is sent when the user dismisses the dialog.
type CancelledMsg struct{}

// Field identifies the focused button.
type Field int

const (
	FieldConfirm Field = iota
	FieldCancel
)

// Model is the dialog state. Focus starts on Cancel so a stray Enter
// on a destructive dialog does nothing irreversible.
type Model struct {
	config  Config
	focused Field
	width   int
	height  int
}

// New creates a dialog from cfg.
func New(cfg Config) Model {
	focused := FieldConfirm
	if cfg.Danger {
		focused = FieldCancel
	}
	return Model{config: cfg, focused: focused}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Focused returns the focused button.
func (m Model) Focused() Field {
	return m.focused
}

// SetSize records the viewport size for overlay centering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Update handles dialog input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "tab", "shift+tab", "right", "l":
			if m.focused == FieldConfirm {
				m.focused = FieldCancel
			} else {
				m.focused = FieldConfirm
			}
			return m, nil

		case "enter":
			if m.focused == FieldConfirm {
				return m, func() tea.Msg { return ConfirmedMsg{} }
			}
			return m, func() tea.Msg { return CancelledMsg{} }

		case "esc":
			return m, func() tea.Msg { return CancelledMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the dialog box.
func (m Model) View() string {
	minWidth := m.config.MinWidth
	if minWidth < 40 {
		minWidth = 40
	}
	contentWidth := minWidth
	if w := lipgloss.Width(m.config.Title); w > contentWidth {
		contentWidth = w
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.TextPrimaryColor).
		PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(styles.BorderDefaultColor).
		Render(strings.Repeat("─", contentWidth+2))

	var body strings.Builder
	if m.config.Message != "" {
		body.WriteString(lipgloss.NewStyle().
			Foreground(styles.TextPrimaryColor).
			Width(contentWidth).
			Render(m.config.Message))
		body.WriteString("\n\n")
	}
	body.WriteString(m.renderButtons())

	var box strings.Builder
	box.WriteString(titleStyle.Render(m.config.Title))
	box.WriteString("\n")
	box.WriteString(divider)
	box.WriteString("\n")
	box.WriteString(lipgloss.NewStyle().Padding(1, 1).Render(body.String()))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Width(contentWidth + 2).
		Render(box.String())
}

func (m Model) renderButtons() string {
	confirmStyle := styles.PrimaryButtonStyle
	confirmFocused := styles.PrimaryButtonFocusedStyle
	if m.config.Danger {
		base := lipgloss.NewStyle().Padding(0, 2).Bold(true).
			Foreground(styles.ButtonTextColor).
			Background(styles.StatusErrorColor)
		confirmStyle = base
		confirmFocused = base.Underline(true).UnderlineSpaces(true)
	}

	confirm := confirmStyle
	if m.focused == FieldConfirm {
		confirm = confirmFocused
	}
	cancel := styles.SecondaryButtonStyle
	if m.focused == FieldCancel {
		cancel = styles.SecondaryButtonFocusedStyle
	}

	label := m.config.ConfirmLabel
	if label == "" {
		label = "Confirm"
	}
	return confirm.Render(label) + "  " + cancel.Render("Cancel")
}

// Overlay renders the dialog centered over bg.
func (m Model) Overlay(bg string) string {
	return overlay.Center(m.View(), bg, m.width, m.height)
}
