package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresets_AllRegistered(t *testing.T) {
	for _, name := range []string{"default", "catppuccin-mocha", "nord", "high-contrast"} {
		preset, ok := Presets[name]
		require.True(t, ok, "preset %s should be registered", name)
		require.Equal(t, name, preset.Name)
		require.NotEmpty(t, preset.Description)
	}
}

func TestPresets_CoverEveryToken(t *testing.T) {
	for name, preset := range Presets {
		for _, token := range AllTokens() {
			_, ok := preset.Colors[token]
			require.True(t, ok, "preset %s is missing token %s", name, token)
		}
	}
}

func TestPresets_OnlyValidTokensAndColors(t *testing.T) {
	for name, preset := range Presets {
		for token, color := range preset.Colors {
			require.True(t, isValidToken(token), "preset %s has unknown token %s", name, token)
			require.True(t, isValidHexColor(color), "preset %s has invalid color %s for %s", name, color, token)
		}
	}
}

func TestPresets_ApplyWithoutError(t *testing.T) {
	for name := range Presets {
		require.NoError(t, ApplyTheme(ThemeConfig{Preset: name}), "preset %s should apply", name)
	}
	// Restore defaults for other tests
	require.NoError(t, ApplyTheme(ThemeConfig{}))
}
