package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, filepath.Join(".curato", "records.db"), cfg.DBPath)
	assert.True(t, cfg.AutoRefresh)
	assert.Empty(t, cfg.DefaultType, "default type falls back to first tab")
	assert.True(t, cfg.UI.ShowCounts)
	assert.True(t, cfg.UI.ShowStatusBar)
	assert.Equal(t, "dark", cfg.UI.MarkdownStyle)
	assert.False(t, cfg.Cache.Disabled)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "file", cfg.Tracing.Exporter)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRate)

	require.NoError(t, cfg.Validate())
}

func TestValidateDefaultType(t *testing.T) {
	require.NoError(t, ValidateDefaultType(""))
	require.NoError(t, ValidateDefaultType("category"))
	require.NoError(t, ValidateDefaultType("module"))
	require.NoError(t, ValidateDefaultType("video"))
	require.NoError(t, ValidateDefaultType("article"))

	err := ValidateDefaultType("podcast")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "podcast")
}

func TestValidateTheme(t *testing.T) {
	require.NoError(t, ValidateTheme(ThemeConfig{}))
	require.NoError(t, ValidateTheme(ThemeConfig{Mode: "light"}))
	require.NoError(t, ValidateTheme(ThemeConfig{Mode: "dark"}))
	require.Error(t, ValidateTheme(ThemeConfig{Mode: "sepia"}))
}

func TestValidateTracing(t *testing.T) {
	tests := []struct {
		name    string
		tracing TracingConfig
		wantErr string
	}{
		{"defaults", TracingConfig{SampleRate: 1.0}, ""},
		{"disabled file without path", TracingConfig{Exporter: "file"}, ""},
		{"enabled file without path", TracingConfig{Enabled: true, Exporter: "file"}, "file_path is required"},
		{"enabled otlp without endpoint", TracingConfig{Enabled: true, Exporter: "otlp"}, "otlp_endpoint is required"},
		{"bad exporter", TracingConfig{Exporter: "kafka"}, "exporter must be"},
		{"sample rate too high", TracingConfig{SampleRate: 1.5}, "sample_rate"},
		{"sample rate negative", TracingConfig{SampleRate: -0.1}, "sample_rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTracing(tt.tracing)
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestFlattenedColors(t *testing.T) {
	theme := ThemeConfig{
		Colors: map[string]any{
			"text": map[string]any{
				"primary": "#FF0000",
			},
			"status.error": "#00FF00",
			"type": map[any]any{
				"module": "#0000FF",
			},
		},
	}

	flat := theme.FlattenedColors()
	assert.Equal(t, "#FF0000", flat["text.primary"])
	assert.Equal(t, "#00FF00", flat["status.error"])
	assert.Equal(t, "#0000FF", flat["type.module"])
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "auto_refresh: true")
	assert.Contains(t, string(data), "# Curato Configuration")
}

func TestSaveDefaultType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveDefaultType(path, "video"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_type: video")
	// Comments in untouched sections survive the edit.
	assert.Contains(t, string(data), "# UI settings")
}

func TestSaveDefaultType_RejectsUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Error(t, SaveDefaultType(path, "podcast"))
}

func TestSaveThemePreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auto_refresh: false\n"), 0o600))

	require.NoError(t, SaveThemePreset(path, "nord"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "preset: nord")
	assert.Contains(t, content, "auto_refresh: false", "existing keys survive")

	// Saving again replaces rather than duplicates.
	require.NoError(t, SaveThemePreset(path, "high-contrast"))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "preset:"))
	assert.Contains(t, string(data), "preset: high-contrast")
}

func TestSaveThemePreset_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveThemePreset(path, "nord"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "preset: nord")
}
