package toaster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowMakesToastVisible(t *testing.T) {
	m := New()
	assert.False(t, m.Visible())

	m, cmd := m.Success("record saved")
	assert.True(t, m.Visible())
	require.NotNil(t, cmd, "showing a toast schedules its dismissal")
	assert.Contains(t, m.View(), "record saved")
}

func TestHideClearsToast(t *testing.T) {
	m, _ := New().Error("save failed")
	m = m.Hide()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestLevelGlyphs(t *testing.T) {
	tests := []struct {
		level Level
		glyph string
	}{
		{LevelSuccess, "✅"},
		{LevelError, "❌"},
		{LevelInfo, "ℹ️"},
		{LevelWarn, "⚠️"},
	}
	for _, tt := range tests {
		m, _ := New().Show("msg", tt.level)
		assert.Contains(t, m.View(), tt.glyph)
	}
}

func TestOverlayReturnsBackgroundWhenHidden(t *testing.T) {
	bg := strings.Repeat(".", 20)
	assert.Equal(t, bg, New().Overlay(bg, 20, 5))
}

func TestOverlayCompositesToast(t *testing.T) {
	bg := strings.Join([]string{
		strings.Repeat(".", 40),
		strings.Repeat(".", 40),
		strings.Repeat(".", 40),
		strings.Repeat(".", 40),
		strings.Repeat(".", 40),
		strings.Repeat(".", 40),
	}, "\n")

	m, _ := New().Success("done")
	out := m.Overlay(bg, 40, 6)

	assert.NotEqual(t, bg, out)
	assert.Contains(t, out, "done")
}
