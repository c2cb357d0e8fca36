// Package button renders interactive buttons with a closed set of
// role, variant, and size options.
//
// Buttons are stateless beyond their configuration and current
// loading/disabled flags. Interaction is pull based: the host calls
// Press() on a click or key event and dispatches the returned command.
// A loading or disabled button returns nil from Press, so the handler
// is never invoked while the button is busy.
package button

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"curato/internal/ui/styles"
)

// Role selects the button family. Each role supports its own subset of
// variants; see Variant.
type Role int

const (
	RolePrimary Role = iota
	RoleSecondary
)

// Variant selects the visual treatment within a role.
// Primary buttons support Solid and Outline. Secondary buttons support
// Ghost, Outline, and Subtle. An unsupported pairing renders as the
// role's default treatment (Solid for primary, Ghost for secondary).
type Variant int

const (
	VariantSolid Variant = iota
	VariantOutline
	VariantGhost
	VariantSubtle
)

// Size selects horizontal padding.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// IconSide selects where the icon renders relative to the label.
type IconSide int

const (
	IconLeft IconSide = iota
	IconRight
)

// spinnerFrames defines the braille spinner animation sequence shown
// while the button is loading.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Config describes a button. Zero value renders a small primary solid
// button with no label.
type Config struct {
	// ID is the bubblezone zone ID used for mouse click detection.
	// Empty disables zone marking.
	ID string

	// Label is the button text. When empty and Icon is set, the button
	// renders icon-only; AccessibleLabel (or a generic fallback) then
	// supplies the text exposed to assistive tooling.
	Label string

	// Icon is an optional glyph rendered beside the label.
	Icon string

	// IconSide places the icon left or right of the label.
	IconSide IconSide

	// AccessibleLabel overrides the label reported by
	// Model.AccessibleLabel for icon-only buttons.
	AccessibleLabel string

	Role    Role
	Variant Variant
	Size    Size

	// OnPress produces the message dispatched when the button is
	// pressed. Nil means pressing the button does nothing.
	OnPress func() tea.Msg
}

// Model is an immutable button. Methods return an updated copy.
type Model struct {
	cfg          Config
	disabled     bool
	loading      bool
	focused      bool
	spinnerFrame int
}

// New creates a button from cfg.
func New(cfg Config) Model {
	return Model{cfg: cfg}
}

// SetDisabled returns a copy with the disabled flag set.
func (m Model) SetDisabled(disabled bool) Model {
	m.disabled = disabled
	return m
}

// SetLoading returns a copy with the loading flag set. The spinner
// frame resets when loading begins.
func (m Model) SetLoading(loading bool) Model {
	if loading && !m.loading {
		m.spinnerFrame = 0
	}
	m.loading = loading
	return m
}

// SetFocused returns a copy with the focus highlight set.
func (m Model) SetFocused(focused bool) Model {
	m.focused = focused
	return m
}

// Disabled reports whether the button is disabled.
func (m Model) Disabled() bool { return m.disabled }

// Loading reports whether the button is loading.
func (m Model) Loading() bool { return m.loading }

// Focused reports whether the button is focused.
func (m Model) Focused() bool { return m.focused }

// ID returns the bubblezone zone ID.
func (m Model) ID() string { return m.cfg.ID }

// IconOnly reports whether the button renders without a text label.
func (m Model) IconOnly() bool {
	return m.cfg.Label == "" && m.cfg.Icon != ""
}

// AccessibleLabel returns the label exposed to assistive tooling.
// For labeled buttons this is the label itself. For icon-only buttons
// it is the configured AccessibleLabel, falling back to "button".
func (m Model) AccessibleLabel() string {
	if m.cfg.Label != "" {
		return m.cfg.Label
	}
	if m.cfg.AccessibleLabel != "" {
		return m.cfg.AccessibleLabel
	}
	return "button"
}

// Press returns the command for the configured handler, or nil when
// the button is loading, disabled, or has no handler. Loading takes
// effect even when the caller never set disabled.
func (m Model) Press() tea.Cmd {
	if m.loading || m.disabled {
		return nil
	}
	if m.cfg.OnPress == nil {
		return nil
	}
	return m.cfg.OnPress
}

// SpinnerTickMsg advances the spinner frame of a loading button.
type SpinnerTickMsg struct{}

// Tick returns a command that sends SpinnerTickMsg after 80ms. Hosts
// with a loading button dispatch this, advance the spinner in Update,
// and dispatch it again while loading continues.
func Tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

// AdvanceSpinner returns a copy with the spinner advanced one frame.
// No-op unless the button is loading.
func (m Model) AdvanceSpinner() Model {
	if !m.loading {
		return m
	}
	m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
	return m
}

// View renders the button.
func (m Model) View() string {
	var body string
	switch {
	case m.loading:
		// Busy indicator replaces both icon and any icon placement.
		body = spinnerFrames[m.spinnerFrame] + " " + m.labelOrEllipsis()
	case m.IconOnly():
		body = m.cfg.Icon
	case m.cfg.Icon != "" && m.cfg.IconSide == IconRight:
		body = m.cfg.Label + " " + m.cfg.Icon
	case m.cfg.Icon != "":
		body = m.cfg.Icon + " " + m.cfg.Label
	default:
		body = m.cfg.Label
	}

	rendered := m.style().Render(body)
	if m.cfg.ID != "" {
		rendered = zone.Mark(m.cfg.ID, rendered)
	}
	return rendered
}

func (m Model) labelOrEllipsis() string {
	if m.cfg.Label != "" {
		return m.cfg.Label
	}
	return "…"
}

// style resolves the treatment for the role/variant/size/state
// combination. Every enumerated value maps to a declared style.
func (m Model) style() lipgloss.Style {
	s := m.variantStyle()
	s = s.Padding(0, sizePadding(m.cfg.Size))
	if m.disabled && !m.loading {
		s = disabledStyle.Padding(0, sizePadding(m.cfg.Size))
	}
	if m.focused && !m.disabled {
		s = s.Underline(true)
	}
	return s
}

func (m Model) variantStyle() lipgloss.Style {
	switch m.cfg.Role {
	case RolePrimary:
		switch m.cfg.Variant {
		case VariantOutline:
			return primaryOutlineStyle
		default:
			return primarySolidStyle
		}
	case RoleSecondary:
		switch m.cfg.Variant {
		case VariantOutline:
			return secondaryOutlineStyle
		case VariantSubtle:
			return secondarySubtleStyle
		default:
			return secondaryGhostStyle
		}
	}
	return primarySolidStyle
}

func sizePadding(s Size) int {
	switch s {
	case SizeSmall:
		return 1
	case SizeLarge:
		return 3
	default:
		return 2
	}
}

// Row joins rendered buttons horizontally with a two-space gap.
func Row(views ...string) string {
	return strings.Join(views, "  ")
}

var (
	primarySolidStyle     lipgloss.Style
	primaryOutlineStyle   lipgloss.Style
	secondaryGhostStyle   lipgloss.Style
	secondaryOutlineStyle lipgloss.Style
	secondarySubtleStyle  lipgloss.Style
	disabledStyle         lipgloss.Style
)

// RebuildStyles recreates the package styles from the current theme
// colors. Registered with the styles package so theme changes
// propagate.
func RebuildStyles() {
	base := lipgloss.NewStyle().Bold(true)
	primarySolidStyle = base.
		Foreground(styles.ButtonTextColor).
		Background(styles.ButtonPrimaryBgColor)
	primaryOutlineStyle = base.
		Foreground(styles.ButtonOutlineFgColor)
	secondaryGhostStyle = lipgloss.NewStyle().
		Foreground(styles.ButtonGhostFgColor)
	secondaryOutlineStyle = lipgloss.NewStyle().
		Foreground(styles.ButtonOutlineFgColor)
	secondarySubtleStyle = lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Background(styles.ButtonSecondaryBgColor)
	disabledStyle = lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Background(styles.ButtonDisabledBgColor)
}

func init() {
	RebuildStyles()
	styles.RegisterStyleRebuilder(RebuildStyles)
}
