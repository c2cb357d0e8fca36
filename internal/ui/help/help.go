// Package help contains the help overlay component.
package help

import (
	"strings"

	"curato/internal/keys"
	"curato/internal/ui/overlay"
	"curato/internal/ui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.TextPrimaryColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.BorderDefaultColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.TextPrimaryColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.BorderDefaultColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// HelpMode indicates which mode's help to display.
type HelpMode int

const (
	ModeCreate HelpMode = iota
	ModeManage
)

// Model holds the help view state.
type Model struct {
	keys   keys.KeyMap
	mode   HelpMode
	width  int
	height int
}

// New creates a help view for create mode.
func New() Model {
	return Model{
		keys: keys.DefaultKeyMap(),
		mode: ModeCreate,
	}
}

// SetMode switches the displayed keybinding set.
func (m Model) SetMode(mode HelpMode) Model {
	m.mode = mode
	return m
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help overlay standalone, without a background.
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	helpBox := m.renderContent()

	if background == "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			helpBox,
		)
	}

	return overlay.Center(helpBox, background, m.width, m.height)
}

func (m Model) renderContent() string {
	if m.mode == ModeManage {
		return m.renderManageContent()
	}
	return m.renderCreateContent()
}

// renderCreateContent renders the create mode help.
func (m Model) renderCreateContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	var tabsCol strings.Builder
	tabsCol.WriteString(sectionStyle.Render("Content Types"))
	tabsCol.WriteString("\n")
	tabsCol.WriteString(m.renderBinding(m.keys.NextTab))
	tabsCol.WriteString(m.renderBinding(m.keys.PrevTab))
	tabsCol.WriteString(m.renderBinding(m.keys.Collapse))

	var formCol strings.Builder
	formCol.WriteString(sectionStyle.Render("Form"))
	formCol.WriteString("\n")
	formCol.WriteString(renderKeyDesc("ctrl+n", "next field"))
	formCol.WriteString(renderKeyDesc("enter", "submit / next"))
	formCol.WriteString(renderKeyDesc("j/k", "choose option"))
	formCol.WriteString(renderKeyDesc("esc", "reset form"))

	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(m.renderBinding(m.keys.SwitchMode))
	generalCol.WriteString(m.renderBinding(m.keys.Help))
	generalCol.WriteString(renderKeyDesc("ctrl+c", "quit"))

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(tabsCol.String()),
		columnStyle.Render(formCol.String()),
		generalCol.String(),
	)

	return m.renderBox("Create Mode", columns)
}

// renderManageContent renders the manage mode help.
func (m Model) renderManageContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	var navCol strings.Builder
	navCol.WriteString(sectionStyle.Render("Navigation"))
	navCol.WriteString("\n")
	navCol.WriteString(m.renderBinding(m.keys.Up))
	navCol.WriteString(m.renderBinding(m.keys.Down))
	navCol.WriteString(renderKeyDesc("h/l", "cycle filter"))

	var actionsCol strings.Builder
	actionsCol.WriteString(sectionStyle.Render("Actions"))
	actionsCol.WriteString("\n")
	actionsCol.WriteString(m.renderBinding(m.keys.Refresh))
	actionsCol.WriteString(m.renderBinding(m.keys.Delete))

	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(m.renderBinding(m.keys.SwitchMode))
	generalCol.WriteString(m.renderBinding(m.keys.ToggleStatus))
	generalCol.WriteString(m.renderBinding(m.keys.Help))
	generalCol.WriteString(m.renderBinding(m.keys.Quit))

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(navCol.String()),
		columnStyle.Render(actionsCol.String()),
		generalCol.String(),
	)

	return m.renderBox("Manage Mode", columns)
}

// renderBox wraps the keybinding columns in the titled help box.
func (m Model) renderBox(title, columns string) string {
	columnsWidth := lipgloss.Width(columns)
	boxWidth := columnsWidth + 4

	body := contentStyle.Render(columns + "\n" + footerStyle.Render("Press ? or Esc to close"))
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle.Render(title + " Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

func (m Model) renderBinding(b key.Binding) string {
	help := b.Help()
	return renderKeyDesc(help.Key, help.Desc)
}

func renderKeyDesc(key, desc string) string {
	return keyStyle.Render(key) + descStyle.Render(desc) + "\n"
}
