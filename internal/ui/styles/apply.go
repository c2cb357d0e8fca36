// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
// This avoids import cycles (styles can't import the components, but the
// components can register).
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after ApplyTheme
// updates colors. Use this to rebuild styles in packages that depend on styles.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Force light or dark mode (if specified)
// 2. Start with default colors
// 3. Apply preset (if specified)
// 4. Apply individual color overrides
// 5. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	switch cfg.Mode {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "":
		// keep terminal detection
	default:
		return fmt.Errorf("unknown theme mode: %s", cfg.Mode)
	}

	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()

	return nil
}

func applyColors(colors map[ColorToken]string) {
	// Uses the same color for light and dark backgrounds
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	// Text hierarchy
	if c, ok := colors[TokenTextPrimary]; ok {
		TextPrimaryColor = makeColor(c)
	}
	if c, ok := colors[TokenTextSecondary]; ok {
		TextSecondaryColor = makeColor(c)
	}
	if c, ok := colors[TokenTextMuted]; ok {
		TextMutedColor = makeColor(c)
	}
	if c, ok := colors[TokenTextPlaceholder]; ok {
		TextPlaceholderColor = makeColor(c)
	}

	// Borders
	if c, ok := colors[TokenBorderDefault]; ok {
		BorderDefaultColor = makeColor(c)
	}
	if c, ok := colors[TokenBorderFocus]; ok {
		BorderFocusColor = makeColor(c)
		FormTextInputFocusedBorderColor = makeColor(c)
		FormTextInputFocusedLabelColor = makeColor(c)
	}
	if c, ok := colors[TokenBorderHighlight]; ok {
		BorderHighlightFocusColor = makeColor(c)
	}

	// Status
	if c, ok := colors[TokenStatusSuccess]; ok {
		StatusSuccessColor = makeColor(c)
	}
	if c, ok := colors[TokenStatusWarning]; ok {
		StatusWarningColor = makeColor(c)
	}
	if c, ok := colors[TokenStatusError]; ok {
		StatusErrorColor = makeColor(c)
	}

	// Selection
	if c, ok := colors[TokenSelectionIndicator]; ok {
		SelectionIndicatorColor = makeColor(c)
	}

	// Buttons
	if c, ok := colors[TokenButtonText]; ok {
		ButtonTextColor = makeColor(c)
	}
	if c, ok := colors[TokenButtonPrimaryBg]; ok {
		ButtonPrimaryBgColor = makeColor(c)
	}
	if c, ok := colors[TokenButtonPrimaryFocusBg]; ok {
		ButtonPrimaryFocusBgColor = makeColor(c)
	}
	if c, ok := colors[TokenButtonSecondaryBg]; ok {
		ButtonSecondaryBgColor = makeColor(c)
	}
	if c, ok := colors[TokenButtonSecondaryFocus]; ok {
		ButtonSecondaryFocusColor = makeColor(c)
	}
	if c, ok := colors[TokenButtonOutlineFg]; ok {
		ButtonOutlineFgColor = makeColor(c)
	}
	if c, ok := colors[TokenButtonGhostFg]; ok {
		ButtonGhostFgColor = makeColor(c)
	}
	if c, ok := colors[TokenButtonDisabledBg]; ok {
		ButtonDisabledBgColor = makeColor(c)
	}

	// Cards
	if c, ok := colors[TokenCardTitle]; ok {
		CardTitleColor = makeColor(c)
	}
	if c, ok := colors[TokenCardBorder]; ok {
		CardBorderColor = makeColor(c)
	}
	if c, ok := colors[TokenCardElevatedBg]; ok {
		CardElevatedBgColor = makeColor(c)
	}

	// Forms
	if c, ok := colors[TokenFormBorder]; ok {
		FormTextInputBorderColor = makeColor(c)
		FormTextInputLabelColor = makeColor(c)
	}
	if c, ok := colors[TokenFormBorderFocus]; ok {
		FormTextInputFocusedBorderColor = makeColor(c)
	}
	if c, ok := colors[TokenFormLabel]; ok {
		FormTextInputLabelColor = makeColor(c)
	}
	if c, ok := colors[TokenFormLabelFocus]; ok {
		FormTextInputFocusedLabelColor = makeColor(c)
	}

	// Toast
	if c, ok := colors[TokenToastSuccess]; ok {
		ToastBorderSuccessColor = makeColor(c)
	}
	if c, ok := colors[TokenToastError]; ok {
		ToastBorderErrorColor = makeColor(c)
	}
	if c, ok := colors[TokenToastInfo]; ok {
		ToastBorderInfoColor = makeColor(c)
	}
	if c, ok := colors[TokenToastWarn]; ok {
		ToastBorderWarnColor = makeColor(c)
	}

	// Content type badges
	if c, ok := colors[TokenTypeCategory]; ok {
		TypeCategoryColor = makeColor(c)
	}
	if c, ok := colors[TokenTypeModule]; ok {
		TypeModuleColor = makeColor(c)
	}
	if c, ok := colors[TokenTypeVideo]; ok {
		TypeVideoColor = makeColor(c)
	}
	if c, ok := colors[TokenTypeArticle]; ok {
		TypeArticleColor = makeColor(c)
	}

	// Misc
	if c, ok := colors[TokenSpinner]; ok {
		SpinnerColor = makeColor(c)
	}
}

// rebuildStyles recreates all Style objects with updated colors.
// Necessary because lipgloss.Style objects capture colors at creation time.
func rebuildStyles() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	SecondaryButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonSecondaryBgColor)

	SecondaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonSecondaryFocusColor).
		Underline(true).
		UnderlineSpaces(true)

	TypeCategoryStyle = lipgloss.NewStyle().Foreground(TypeCategoryColor)
	TypeModuleStyle = lipgloss.NewStyle().Foreground(TypeModuleColor)
	TypeVideoStyle = lipgloss.NewStyle().Foreground(TypeVideoColor)
	TypeArticleStyle = lipgloss.NewStyle().Foreground(TypeArticleColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondaryColor).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(1, 2)

	// Call registered rebuilders (e.g., button.RebuildStyles)
	for _, fn := range styleRebuilders {
		fn()
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
