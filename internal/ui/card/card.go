// Package card renders titled content containers with a closed set of
// variant and padding options, and optional collapse behavior.
//
// A card always renders its header. When collapsible, the header
// carries a chevron affordance and owns the only mutation path for the
// collapsed flag: Toggle(). Nothing outside the card can flip the flag
// directly, so visibility of the content region is fully local state.
package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"curato/internal/ui/styles"
)

// Variant selects the visual treatment of the card frame.
type Variant int

const (
	VariantDefault Variant = iota
	VariantElevated
	VariantOutlined
)

// Padding selects the uniform inner padding applied to the header and
// content regions. Content top padding is suppressed so the separator
// sits flush under the header.
type Padding int

const (
	PaddingNone Padding = iota
	PaddingSmall
	PaddingMedium
	PaddingLarge
)

// Chevron glyphs for the collapse affordance.
const (
	chevronCollapsed = "▸"
	chevronExpanded  = "▾"
)

// Config describes a card.
type Config struct {
	// ID is the bubblezone zone ID marked on the header for mouse
	// click detection. Empty disables zone marking.
	ID string

	// Title is required and always renders in the header.
	Title string

	// Subtitle renders dimmed after the title.
	Subtitle string

	// Icon renders before the title.
	Icon string

	// TrailingAction is a pre-rendered region (typically a button
	// view) right-aligned in the header.
	TrailingAction string

	Variant Variant
	Padding Padding

	// Collapsible makes the header toggle the content region.
	Collapsible bool

	// DefaultCollapsed sets the initial collapsed state. Ignored
	// unless Collapsible is set.
	DefaultCollapsed bool

	// Width is the total rendered width including the frame.
	Width int
}

// Model is a card. Methods return an updated copy.
type Model struct {
	cfg       Config
	collapsed bool
}

// New creates a card from cfg.
func New(cfg Config) Model {
	return Model{
		cfg:       cfg,
		collapsed: cfg.Collapsible && cfg.DefaultCollapsed,
	}
}

// Toggle flips the collapsed state. No-op for non-collapsible cards.
func (m Model) Toggle() Model {
	if !m.cfg.Collapsible {
		return m
	}
	m.collapsed = !m.collapsed
	return m
}

// Collapsed reports whether the content region is hidden.
func (m Model) Collapsed() bool { return m.collapsed }

// Collapsible reports whether the card supports collapsing.
func (m Model) Collapsible() bool { return m.cfg.Collapsible }

// ID returns the bubblezone zone ID for the header.
func (m Model) ID() string { return m.cfg.ID }

// ToggleLabel returns the accessible label for the collapse
// affordance, reflecting the action a toggle would perform.
func (m Model) ToggleLabel() string {
	if m.collapsed {
		return "Expand"
	}
	return "Collapse"
}

// SetTitle returns a copy with the header title replaced.
func (m Model) SetTitle(title string) Model {
	m.cfg.Title = title
	return m
}

// SetWidth returns a copy with the total width set.
func (m Model) SetWidth(width int) Model {
	m.cfg.Width = width
	return m
}

// View renders the card around content. Content is omitted when the
// card is collapsed; the header always renders.
func (m Model) View(content string) string {
	pad := paddingCells(m.cfg.Padding)
	innerWidth := m.innerWidth()

	header := m.renderHeader(innerWidth, pad)
	if m.cfg.ID != "" {
		header = zone.Mark(m.cfg.ID, header)
	}

	body := header
	if !m.cfg.Collapsible || !m.collapsed {
		sep := lipgloss.NewStyle().
			Foreground(m.borderColor()).
			Render(strings.Repeat("─", innerWidth))
		contentStyle := lipgloss.NewStyle().
			Width(innerWidth).
			Padding(0, pad)
		body = lipgloss.JoinVertical(lipgloss.Left, header, sep, contentStyle.Render(content))
	}

	return m.frameStyle().Render(body)
}

func (m Model) renderHeader(innerWidth, pad int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.CardTitleColor)
	subtitleStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	var left strings.Builder
	if m.cfg.Collapsible {
		chevron := chevronExpanded
		if m.collapsed {
			chevron = chevronCollapsed
		}
		left.WriteString(chevron + " ")
	}
	if m.cfg.Icon != "" {
		left.WriteString(m.cfg.Icon + " ")
	}
	left.WriteString(titleStyle.Render(m.cfg.Title))
	if m.cfg.Subtitle != "" {
		left.WriteString(" " + subtitleStyle.Render(m.cfg.Subtitle))
	}

	line := left.String()
	if m.cfg.TrailingAction != "" {
		gap := innerWidth - 2*pad - lipgloss.Width(line) - lipgloss.Width(m.cfg.TrailingAction)
		if gap < 1 {
			gap = 1
		}
		line += strings.Repeat(" ", gap) + m.cfg.TrailingAction
	}

	return lipgloss.NewStyle().
		Width(innerWidth).
		Padding(0, pad).
		Render(line)
}

// frameStyle resolves the treatment for the variant. Every enumerated
// value maps to a declared style.
func (m Model) frameStyle() lipgloss.Style {
	switch m.cfg.Variant {
	case VariantElevated:
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.CardBorderColor).
			Background(styles.CardElevatedBgColor)
	case VariantOutlined:
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.BorderHighlightFocusColor)
	default:
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.CardBorderColor)
	}
}

func (m Model) borderColor() lipgloss.AdaptiveColor {
	if m.cfg.Variant == VariantOutlined {
		return styles.BorderHighlightFocusColor
	}
	return styles.CardBorderColor
}

func (m Model) innerWidth() int {
	w := m.cfg.Width - 2
	if w < 1 {
		w = defaultInnerWidth
	}
	return w
}

const defaultInnerWidth = 48

func paddingCells(p Padding) int {
	switch p {
	case PaddingNone:
		return 0
	case PaddingSmall:
		return 1
	case PaddingLarge:
		return 3
	default:
		return 2
	}
}
