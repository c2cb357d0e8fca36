// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderFocus     ColorToken = "border.focus"
	TokenBorderHighlight ColorToken = "border.highlight"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Selection
	TokenSelectionIndicator ColorToken = "selection.indicator"

	// Buttons
	TokenButtonText           ColorToken = "button.text"
	TokenButtonPrimaryBg      ColorToken = "button.primary.bg"
	TokenButtonPrimaryFocusBg ColorToken = "button.primary.focus"
	TokenButtonSecondaryBg    ColorToken = "button.secondary.bg"
	TokenButtonSecondaryFocus ColorToken = "button.secondary.focus"
	TokenButtonOutlineFg      ColorToken = "button.outline.fg"
	TokenButtonGhostFg        ColorToken = "button.ghost.fg"
	TokenButtonDisabledBg     ColorToken = "button.disabled.bg"

	// Cards
	TokenCardTitle      ColorToken = "card.title"
	TokenCardBorder     ColorToken = "card.border"
	TokenCardElevatedBg ColorToken = "card.elevated.bg"

	// Forms
	TokenFormBorder      ColorToken = "form.border"
	TokenFormBorderFocus ColorToken = "form.border.focus" //nolint:gosec // UI color token, not credentials
	TokenFormLabel       ColorToken = "form.label"
	TokenFormLabelFocus  ColorToken = "form.label.focus"

	// Toast notifications
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"

	// Content type badges
	TokenTypeCategory ColorToken = "type.category"
	TokenTypeModule   ColorToken = "type.module"
	TokenTypeVideo    ColorToken = "type.video"
	TokenTypeArticle  ColorToken = "type.article"

	// Misc
	TokenSpinner ColorToken = "spinner"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenTextPlaceholder,

		TokenBorderDefault,
		TokenBorderFocus,
		TokenBorderHighlight,

		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		TokenSelectionIndicator,

		TokenButtonText,
		TokenButtonPrimaryBg,
		TokenButtonPrimaryFocusBg,
		TokenButtonSecondaryBg,
		TokenButtonSecondaryFocus,
		TokenButtonOutlineFg,
		TokenButtonGhostFg,
		TokenButtonDisabledBg,

		TokenCardTitle,
		TokenCardBorder,
		TokenCardElevatedBg,

		TokenFormBorder,
		TokenFormBorderFocus,
		TokenFormLabel,
		TokenFormLabelFocus,

		TokenToastSuccess,
		TokenToastError,
		TokenToastInfo,
		TokenToastWarn,

		TokenTypeCategory,
		TokenTypeModule,
		TokenTypeVideo,
		TokenTypeArticle,

		TokenSpinner,
	}
}
