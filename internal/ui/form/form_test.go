package form

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type savedMsg struct {
	values map[string]string
}

func newTestForm() Model {
	return New(Config{
		Title: "New Module",
		Fields: []FieldConfig{
			{Key: "title", Type: FieldTypeText, Label: "Title", InitialValue: "Intro"},
			{Key: "body", Type: FieldTypeTextArea, Label: "Body"},
			{Key: "category", Type: FieldTypeSelect, Label: "Category", Options: []Option{
				{Label: "Algebra", Value: "algebra"},
				{Label: "Geometry", Value: "geometry", Selected: true},
			}},
		},
	})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestValuesIncludeInitialAndSelected(t *testing.T) {
	m := newTestForm()

	values := m.Values()

	assert.Equal(t, "Intro", values["title"])
	assert.Equal(t, "", values["body"])
	assert.Equal(t, "geometry", values["category"])
}

func TestNextCyclesThroughFieldsAndButtons(t *testing.T) {
	m := newTestForm()
	require.Equal(t, 0, m.focusedIndex)

	m, _ = m.Update(keyMsg("ctrl+n"))
	assert.Equal(t, 1, m.focusedIndex)

	m, _ = m.Update(keyMsg("ctrl+n"))
	assert.Equal(t, 2, m.focusedIndex)

	m, _ = m.Update(keyMsg("ctrl+n"))
	assert.Equal(t, -1, m.focusedIndex, "advancing past the last field lands on the buttons")
	assert.True(t, m.submitBtn.Focused())

	m, _ = m.Update(keyMsg("ctrl+n"))
	assert.Equal(t, 0, m.focusedIndex, "advancing wraps back to the first field")
}

func TestPrevMovesBackward(t *testing.T) {
	m := newTestForm()

	m, _ = m.Update(keyMsg("ctrl+p"))
	assert.Equal(t, -1, m.focusedIndex)

	m, _ = m.Update(keyMsg("ctrl+p"))
	assert.Equal(t, 2, m.focusedIndex)
}

func TestEscapeProducesCancelMsg(t *testing.T) {
	m := newTestForm()

	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.IsType(t, CancelMsg{}, cmd())
}

func TestEscapeUsesOnCancelFactory(t *testing.T) {
	type closedMsg struct{}
	m := New(Config{
		Fields:   []FieldConfig{{Key: "title", Type: FieldTypeText}},
		OnCancel: func() tea.Msg { return closedMsg{} },
	})

	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.IsType(t, closedMsg{}, cmd())
}

func TestValidationErrorBlocksSubmit(t *testing.T) {
	m := New(Config{
		Fields: []FieldConfig{{Key: "title", Type: FieldTypeText}},
		Validate: func(values map[string]string) error {
			if values["title"] == "" {
				return errors.New("title is required")
			}
			return nil
		},
	})

	m, cmd := m.submit()
	assert.Nil(t, cmd)
	assert.False(t, m.Loading())
	assert.Contains(t, m.View(), "title is required")
}

func TestSubmitProducesValuesAndEntersLoading(t *testing.T) {
	m := New(Config{
		Fields: []FieldConfig{
			{Key: "title", Type: FieldTypeText, InitialValue: "Fractions"},
		},
		OnSubmit: func(values map[string]string) tea.Msg {
			return savedMsg{values: values}
		},
	})

	m, cmd := m.submit()
	require.NotNil(t, cmd)
	assert.True(t, m.Loading())

	msg := collectMsgs(t, cmd())
	require.Len(t, msg, 1)
	saved, ok := msg[0].(savedMsg)
	require.True(t, ok)
	assert.Equal(t, "Fractions", saved.values["title"])
}

func TestSubmitDefaultsToSubmitMsg(t *testing.T) {
	m := New(Config{
		Fields: []FieldConfig{{Key: "title", Type: FieldTypeText, InitialValue: "x"}},
	})

	_, cmd := m.submit()
	require.NotNil(t, cmd)

	msgs := collectMsgs(t, cmd())
	require.Len(t, msgs, 1)
	submit, ok := msgs[0].(SubmitMsg)
	require.True(t, ok)
	assert.Equal(t, "x", submit.Values["title"])
}

func TestValidationErrorClearsOnSuccessfulSubmit(t *testing.T) {
	valid := false
	m := New(Config{
		Fields: []FieldConfig{{Key: "title", Type: FieldTypeText}},
		Validate: func(map[string]string) error {
			if !valid {
				return errors.New("nope")
			}
			return nil
		},
	})

	m, _ = m.submit()
	require.Equal(t, "nope", m.validationError)

	valid = true
	m, cmd := m.submit()
	assert.Empty(t, m.validationError)
	assert.NotNil(t, cmd)
}

func TestEnterOnCancelButtonCancels(t *testing.T) {
	m := New(Config{
		Fields: []FieldConfig{{Key: "title", Type: FieldTypeText}},
	})

	// Move to the buttons, then right to cancel
	m, _ = m.Update(keyMsg("ctrl+n"))
	require.Equal(t, -1, m.focusedIndex)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.True(t, m.cancelBtn.Focused())

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.IsType(t, CancelMsg{}, cmd())
}

func TestSelectNavigationAndChoice(t *testing.T) {
	m := New(Config{
		Fields: []FieldConfig{
			{Key: "category", Type: FieldTypeSelect, Options: []Option{
				{Label: "Algebra", Value: "algebra"},
				{Label: "Geometry", Value: "geometry"},
				{Label: "Calculus", Value: "calculus"},
			}},
		},
	})

	require.Equal(t, "", m.Values()["category"], "nothing selected initially")

	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("k"))
	m, _ = m.Update(keyMsg("enter"))

	assert.Equal(t, "geometry", m.Values()["category"])
}

func TestSelectCursorClampsAtBounds(t *testing.T) {
	m := New(Config{
		Fields: []FieldConfig{
			{Key: "category", Type: FieldTypeSelect, Options: []Option{
				{Label: "A", Value: "a"},
				{Label: "B", Value: "b"},
			}},
		},
	})

	m, _ = m.Update(keyMsg("k"))
	assert.Equal(t, 0, m.fields[0].listCursor)

	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("j"))
	assert.Equal(t, 1, m.fields[0].listCursor)
}

func TestLoadingIgnoresKeyInput(t *testing.T) {
	m := newTestForm().SetLoading(true)

	before := m.Values()
	m, cmd := m.Update(keyMsg("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.Values())

	m, _ = m.Update(keyMsg("ctrl+n"))
	assert.Equal(t, 0, m.focusedIndex, "focus does not move while loading")
}

func TestSetErrorClearsLoading(t *testing.T) {
	m := newTestForm().SetLoading(true)
	m = m.SetError("save failed")

	assert.False(t, m.Loading())
	assert.Contains(t, m.View(), "save failed")
}

func TestTextInputReceivesRunes(t *testing.T) {
	m := New(Config{
		Fields: []FieldConfig{{Key: "title", Type: FieldTypeText}},
	})

	for _, r := range "Limits" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "Limits", m.Values()["title"])
}

func TestViewRendersTitleLabelsAndButtons(t *testing.T) {
	m := newTestForm()
	view := m.View()

	assert.Contains(t, view, "New Module")
	assert.Contains(t, view, "Title")
	assert.Contains(t, view, "Category")
	assert.Contains(t, view, "Save")
	assert.Contains(t, view, "Cancel")
	assert.Contains(t, strings.ToLower(view), "algebra")
}

// collectMsgs flattens a message that may be a tea.BatchMsg into the
// non-tick messages it carries.
func collectMsgs(t *testing.T, msg tea.Msg) []tea.Msg {
	t.Helper()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, cmd := range batch {
		if cmd == nil {
			continue
		}
		inner := cmd()
		switch inner.(type) {
		case savedMsg, SubmitMsg, CancelMsg:
			out = append(out, inner)
		}
	}
	return out
}
