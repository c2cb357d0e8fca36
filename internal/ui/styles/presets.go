// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the stock curato color scheme.
// Color values match the styles.go AdaptiveColor definitions (Dark values).
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default curato theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",

		TokenBorderDefault:   "#696969",
		TokenBorderFocus:     "#FFFFFF",
		TokenBorderHighlight: "#54A0FF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenSelectionIndicator: "#FFFFFF",

		TokenButtonText:           "#FFFFFF",
		TokenButtonPrimaryBg:      "#1A5276",
		TokenButtonPrimaryFocusBg: "#3498DB",
		TokenButtonSecondaryBg:    "#2D3436",
		TokenButtonSecondaryFocus: "#636E72",
		TokenButtonOutlineFg:      "#54A0FF",
		TokenButtonGhostFg:        "#BBBBBB",
		TokenButtonDisabledBg:     "#2D2D2D",

		TokenCardTitle:      "#C9C9C9",
		TokenCardBorder:     "#8C8C8C",
		TokenCardElevatedBg: "#1F1F1F",

		TokenFormBorder:      "#8C8C8C",
		TokenFormBorderFocus: "#FFFFFF",
		TokenFormLabel:       "#8C8C8C",
		TokenFormLabelFocus:  "#FFFFFF",

		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",

		TokenTypeCategory: "#7D56F4",
		TokenTypeModule:   "#54A0FF",
		TokenTypeVideo:    "#FF9F43",
		TokenTypeArticle:  "#73F59F",

		TokenSpinner: "#FFFFFF",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) theme.
// Colors from: https://catppuccin.com/palette
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextSecondary:   "#BAC2DE", // subtext1
		TokenTextMuted:       "#6C7086", // overlay0
		TokenTextPlaceholder: "#585B70", // surface2

		TokenBorderDefault:   "#6C7086", // overlay0
		TokenBorderFocus:     "#CDD6F4", // text
		TokenBorderHighlight: "#89B4FA", // blue

		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		TokenSelectionIndicator: "#CDD6F4", // text

		TokenButtonText:           "#1E1E2E", // base
		TokenButtonPrimaryBg:      "#89B4FA", // blue
		TokenButtonPrimaryFocusBg: "#B4BEFE", // lavender
		TokenButtonSecondaryBg:    "#45475A", // surface1
		TokenButtonSecondaryFocus: "#585B70", // surface2
		TokenButtonOutlineFg:      "#89B4FA", // blue
		TokenButtonGhostFg:        "#BAC2DE", // subtext1
		TokenButtonDisabledBg:     "#313244", // surface0

		TokenCardTitle:      "#CDD6F4", // text
		TokenCardBorder:     "#6C7086", // overlay0
		TokenCardElevatedBg: "#313244", // surface0

		TokenFormBorder:      "#6C7086", // overlay0
		TokenFormBorderFocus: "#CDD6F4", // text
		TokenFormLabel:       "#6C7086", // overlay0
		TokenFormLabelFocus:  "#CDD6F4", // text

		TokenToastSuccess: "#A6E3A1", // green
		TokenToastError:   "#F38BA8", // red
		TokenToastInfo:    "#89B4FA", // blue
		TokenToastWarn:    "#F9E2AF", // yellow

		TokenTypeCategory: "#CBA6F7", // mauve
		TokenTypeModule:   "#89B4FA", // blue
		TokenTypeVideo:    "#FAB387", // peach
		TokenTypeArticle:  "#A6E3A1", // green

		TokenSpinner: "#CBA6F7", // mauve
	},
}

// NordPreset is the Nord theme.
// Colors from: https://www.nordtheme.com/docs/colors-and-palettes
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#ECEFF4", // snow storm 3
		TokenTextSecondary:   "#E5E9F0", // snow storm 2
		TokenTextMuted:       "#4C566A", // polar night 4
		TokenTextPlaceholder: "#4C566A", // polar night 4

		TokenBorderDefault:   "#4C566A", // polar night 4
		TokenBorderFocus:     "#ECEFF4", // snow storm 3
		TokenBorderHighlight: "#88C0D0", // frost 2

		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red

		TokenSelectionIndicator: "#ECEFF4", // snow storm 3

		TokenButtonText:           "#2E3440", // polar night 1
		TokenButtonPrimaryBg:      "#5E81AC", // frost 4
		TokenButtonPrimaryFocusBg: "#81A1C1", // frost 3
		TokenButtonSecondaryBg:    "#434C5E", // polar night 3
		TokenButtonSecondaryFocus: "#4C566A", // polar night 4
		TokenButtonOutlineFg:      "#88C0D0", // frost 2
		TokenButtonGhostFg:        "#D8DEE9", // snow storm 1
		TokenButtonDisabledBg:     "#3B4252", // polar night 2

		TokenCardTitle:      "#ECEFF4", // snow storm 3
		TokenCardBorder:     "#4C566A", // polar night 4
		TokenCardElevatedBg: "#3B4252", // polar night 2

		TokenFormBorder:      "#4C566A", // polar night 4
		TokenFormBorderFocus: "#ECEFF4", // snow storm 3
		TokenFormLabel:       "#4C566A", // polar night 4
		TokenFormLabelFocus:  "#ECEFF4", // snow storm 3

		TokenToastSuccess: "#A3BE8C", // aurora green
		TokenToastError:   "#BF616A", // aurora red
		TokenToastInfo:    "#81A1C1", // frost 3
		TokenToastWarn:    "#EBCB8B", // aurora yellow

		TokenTypeCategory: "#B48EAD", // aurora purple
		TokenTypeModule:   "#88C0D0", // frost 2
		TokenTypeVideo:    "#D08770", // aurora orange
		TokenTypeArticle:  "#A3BE8C", // aurora green

		TokenSpinner: "#88C0D0", // frost 2
	},
}

// HighContrastPreset is a high contrast theme for accessibility.
// All colors meet WCAG AAA contrast requirements against black.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#FFFFFF",
		TokenTextPlaceholder: "#CCCCCC",

		TokenBorderDefault:   "#FFFFFF",
		TokenBorderFocus:     "#FFFF00", // bright yellow for focus
		TokenBorderHighlight: "#00FFFF", // cyan for highlights

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenSelectionIndicator: "#FFFF00",

		TokenButtonText:           "#000000", // black text on bright buttons
		TokenButtonPrimaryBg:      "#00FFFF",
		TokenButtonPrimaryFocusBg: "#FFFFFF",
		TokenButtonSecondaryBg:    "#808080",
		TokenButtonSecondaryFocus: "#FFFFFF",
		TokenButtonOutlineFg:      "#00FFFF",
		TokenButtonGhostFg:        "#FFFFFF",
		TokenButtonDisabledBg:     "#404040",

		TokenCardTitle:      "#FFFFFF",
		TokenCardBorder:     "#FFFFFF",
		TokenCardElevatedBg: "#404040",

		TokenFormBorder:      "#FFFFFF",
		TokenFormBorderFocus: "#FFFF00",
		TokenFormLabel:       "#FFFFFF",
		TokenFormLabelFocus:  "#FFFF00",

		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
		TokenToastWarn:    "#FFFF00",

		TokenTypeCategory: "#FF00FF",
		TokenTypeModule:   "#00FFFF",
		TokenTypeVideo:    "#FF8800",
		TokenTypeArticle:  "#00FF00",

		TokenSpinner: "#FFFF00",
	},
}
