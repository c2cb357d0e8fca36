package help

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateHelpShowsFormAndTabBindings(t *testing.T) {
	m := New().SetSize(100, 40)

	view := m.View()

	assert.Contains(t, view, "Create Mode Keybindings")
	assert.Contains(t, view, "Content Types")
	assert.Contains(t, view, "next content type")
	assert.Contains(t, view, "ctrl+n")
	assert.Contains(t, view, "next field")
	assert.Contains(t, view, "submit / next")
	assert.Contains(t, view, "Press ? or Esc to close")
}

func TestManageHelpShowsRecordActions(t *testing.T) {
	m := New().SetMode(ModeManage).SetSize(100, 40)

	view := m.View()

	assert.Contains(t, view, "Manage Mode Keybindings")
	assert.Contains(t, view, "delete record")
	assert.Contains(t, view, "refresh records")
	assert.Contains(t, view, "toggle status bar")
}

func TestOverlayCompositesOntoBackground(t *testing.T) {
	bg := strings.TrimRight(strings.Repeat(strings.Repeat(".", 100)+"\n", 40), "\n")
	m := New().SetSize(100, 40)

	out := m.Overlay(bg)

	assert.Contains(t, out, "Create Mode Keybindings")
	assert.Contains(t, out, ".")
	assert.Len(t, strings.Split(out, "\n"), 40)
}

func TestStandaloneViewCentersBox(t *testing.T) {
	m := New().SetSize(120, 50)

	lines := strings.Split(m.View(), "\n")

	assert.Len(t, lines, 50)
}
