package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"curato/internal/ui/button"
	"curato/internal/ui/styles"
)

// formKeys are the bindings private to form navigation.
var formKeys = struct {
	Next   key.Binding
	Prev   key.Binding
	Enter  key.Binding
	Escape key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Submit key.Binding
}{
	Next:   key.NewBinding(key.WithKeys("ctrl+n")),
	Prev:   key.NewBinding(key.WithKeys("ctrl+p")),
	Enter:  key.NewBinding(key.WithKeys("enter")),
	Escape: key.NewBinding(key.WithKeys("esc")),
	Up:     key.NewBinding(key.WithKeys("k", "up")),
	Down:   key.NewBinding(key.WithKeys("j", "down")),
	Left:   key.NewBinding(key.WithKeys("h", "left")),
	Right:  key.NewBinding(key.WithKeys("l", "right")),
	Submit: key.NewBinding(key.WithKeys("ctrl+s")),
}

// Model is the form state.
//
// Model is immutable - all methods return a new Model rather than
// modifying the receiver.
type Model struct {
	config Config
	fields []fieldState

	focusedIndex  int // Index into fields (-1 = on buttons)
	focusedButton int // 0 = submit, 1 = cancel (when focusedIndex == -1)

	width, height int

	validationError string
	loading         bool

	submitBtn button.Model
	cancelBtn button.Model
}

// New creates a form from cfg. Focus starts on the first field, or on
// the submit button when there are no fields.
func New(cfg Config) Model {
	m := Model{
		config: cfg,
		fields: make([]fieldState, len(cfg.Fields)),
	}
	for i, fieldCfg := range cfg.Fields {
		m.fields[i] = newFieldState(fieldCfg)
	}

	submitLabel := cfg.SubmitLabel
	if submitLabel == "" {
		submitLabel = "Save"
	}
	cancelLabel := cfg.CancelLabel
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}
	m.submitBtn = button.New(button.Config{Label: submitLabel, Role: button.RolePrimary})
	m.cancelBtn = button.New(button.Config{Label: cancelLabel, Role: button.RoleSecondary, Variant: button.VariantOutline})

	if len(m.fields) > 0 {
		m.focusedIndex = 0
		m.fields[0].focus()
	} else {
		m.focusedIndex = -1
	}

	return m
}

// Init returns the initial command (cursor blink on text fields).
func (m Model) Init() tea.Cmd {
	return m.blinkCmd()
}

// Loading reports whether the form is waiting on a submission.
func (m Model) Loading() bool { return m.loading }

// SetLoading returns a copy with the loading flag set. While loading,
// keyboard input is ignored and the submit button shows a busy
// indicator.
func (m Model) SetLoading(loading bool) Model {
	m.loading = loading
	m.submitBtn = m.submitBtn.SetLoading(loading)
	return m
}

// SetError returns a copy displaying a submission error above the
// buttons, clearing the loading state.
func (m Model) SetError(message string) Model {
	m = m.SetLoading(false)
	m.validationError = message
	return m
}

// SetSize returns a copy sized to the given dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Values returns the current field values keyed by FieldConfig.Key.
func (m Model) Values() map[string]string {
	values := make(map[string]string, len(m.fields))
	for i := range m.fields {
		values[m.fields[i].config.Key] = m.fields[i].value()
	}
	return values
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	// Ignore keyboard input while a submission is in flight
	if m.loading {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case button.SpinnerTickMsg:
		if m.loading {
			m.submitBtn = m.submitBtn.AdvanceSpinner()
			return m, button.Tick()
		}
		return m, nil
	}

	return m.updateFocusedField(msg)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, formKeys.Escape):
		return m, m.cancelCmd()

	case key.Matches(msg, formKeys.Submit):
		return m.submit()

	case key.Matches(msg, formKeys.Next):
		m = m.nextField()
		return m, m.blinkCmd()

	case key.Matches(msg, formKeys.Prev):
		m = m.prevField()
		return m, m.blinkCmd()

	case key.Matches(msg, formKeys.Enter):
		return m.handleEnter()
	}

	// Select-field cursor movement
	if m.focusedIndex >= 0 && m.fields[m.focusedIndex].config.Type == FieldTypeSelect {
		fs := &m.fields[m.focusedIndex]
		switch {
		case key.Matches(msg, formKeys.Down):
			if fs.listCursor < len(fs.config.Options)-1 {
				fs.listCursor++
			}
			return m, nil
		case key.Matches(msg, formKeys.Up):
			if fs.listCursor > 0 {
				fs.listCursor--
			}
			return m, nil
		}
	}

	// Button row navigation
	if m.focusedIndex == -1 {
		switch {
		case key.Matches(msg, formKeys.Left):
			m.focusedButton = 0
			return m, m.syncButtonFocus()
		case key.Matches(msg, formKeys.Right):
			m.focusedButton = 1
			return m, m.syncButtonFocus()
		}
		return m, nil
	}

	return m.updateFocusedField(msg)
}

// handleEnter confirms the focused element: buttons submit or cancel,
// selects choose the option under the cursor, text fields advance.
func (m Model) handleEnter() (Model, tea.Cmd) {
	if m.focusedIndex == -1 {
		if m.focusedButton == 1 {
			return m, m.cancelCmd()
		}
		return m.submit()
	}

	fs := &m.fields[m.focusedIndex]
	switch fs.config.Type {
	case FieldTypeSelect:
		fs.listSelected = fs.listCursor
		m = m.nextField()
		return m, m.blinkCmd()
	case FieldTypeTextArea:
		// Enter inserts a newline inside a textarea
		return m.updateFocusedField(tea.KeyMsg{Type: tea.KeyEnter})
	default:
		m = m.nextField()
		return m, m.blinkCmd()
	}
}

// submit validates and produces the submission command. The form
// enters the loading state on success; the host clears it with
// SetLoading(false) or SetError once the save completes.
func (m Model) submit() (Model, tea.Cmd) {
	values := m.Values()
	if m.config.Validate != nil {
		if err := m.config.Validate(values); err != nil {
			m.validationError = err.Error()
			return m, nil
		}
	}
	m.validationError = ""
	m = m.SetLoading(true)

	submitMsg := func() tea.Msg { return SubmitMsg{Values: values} }
	if m.config.OnSubmit != nil {
		submitMsg = func() tea.Msg { return m.config.OnSubmit(values) }
	}
	return m, tea.Batch(submitMsg, button.Tick())
}

func (m Model) cancelCmd() tea.Cmd {
	if m.config.OnCancel != nil {
		return func() tea.Msg { return m.config.OnCancel() }
	}
	return func() tea.Msg { return CancelMsg{} }
}

// updateFocusedField forwards a message to the focused input.
func (m Model) updateFocusedField(msg tea.Msg) (Model, tea.Cmd) {
	if m.focusedIndex < 0 || m.focusedIndex >= len(m.fields) {
		return m, nil
	}
	fs := &m.fields[m.focusedIndex]
	var cmd tea.Cmd
	switch fs.config.Type {
	case FieldTypeText:
		fs.textInput, cmd = fs.textInput.Update(msg)
	case FieldTypeTextArea:
		fs.textArea, cmd = fs.textArea.Update(msg)
	}
	return m, cmd
}

// nextField advances focus to the next field, wrapping through the
// button row.
func (m Model) nextField() Model {
	m = m.blurFocused()
	if m.focusedIndex == -1 {
		if len(m.fields) > 0 {
			m.focusedIndex = 0
		}
	} else if m.focusedIndex < len(m.fields)-1 {
		m.focusedIndex++
	} else {
		m.focusedIndex = -1
		m.focusedButton = 0
	}
	return m.focusCurrent()
}

// prevField moves focus to the previous field, wrapping through the
// button row.
func (m Model) prevField() Model {
	m = m.blurFocused()
	if m.focusedIndex == -1 {
		if len(m.fields) > 0 {
			m.focusedIndex = len(m.fields) - 1
		}
	} else if m.focusedIndex > 0 {
		m.focusedIndex--
	} else {
		m.focusedIndex = -1
		m.focusedButton = 0
	}
	return m.focusCurrent()
}

func (m Model) blurFocused() Model {
	if m.focusedIndex >= 0 && m.focusedIndex < len(m.fields) {
		m.fields[m.focusedIndex].blur()
	}
	return m
}

func (m Model) focusCurrent() Model {
	if m.focusedIndex >= 0 && m.focusedIndex < len(m.fields) {
		m.fields[m.focusedIndex].focus()
	}
	_ = m.syncButtonFocus()
	return m
}

func (m *Model) syncButtonFocus() tea.Cmd {
	onButtons := m.focusedIndex == -1
	m.submitBtn = m.submitBtn.SetFocused(onButtons && m.focusedButton == 0)
	m.cancelBtn = m.cancelBtn.SetFocused(onButtons && m.focusedButton == 1)
	return nil
}

func (m Model) blinkCmd() tea.Cmd {
	if m.focusedIndex >= 0 && m.focusedIndex < len(m.fields) {
		switch m.fields[m.focusedIndex].config.Type {
		case FieldTypeText:
			return textinput.Blink
		case FieldTypeTextArea:
			return textarea.Blink
		}
	}
	return nil
}

// View renders the form.
func (m Model) View() string {
	width := m.config.Width
	if width == 0 {
		width = 60
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor)

	var b strings.Builder
	if m.config.Title != "" {
		b.WriteString(titleStyle.Render(m.config.Title))
		b.WriteString("\n\n")
	}

	for i := range m.fields {
		b.WriteString(m.renderField(i, width))
		b.WriteString("\n")
	}

	if m.validationError != "" {
		b.WriteString(styles.ErrorStyle.Render(m.validationError))
		b.WriteString("\n\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(button.Row(m.submitBtn.View(), m.cancelBtn.View()))

	return b.String()
}

// renderField renders a single field based on its type.
func (m Model) renderField(index, width int) string {
	fs := &m.fields[index]
	cfg := fs.config
	focused := m.focusedIndex == index

	var rows []string
	switch cfg.Type {
	case FieldTypeText:
		rows = []string{fs.textInput.View()}

	case FieldTypeTextArea:
		rows = strings.Split(fs.textArea.View(), "\n")

	case FieldTypeSelect:
		for i, opt := range cfg.Options {
			prefix := " "
			if focused && i == fs.listCursor {
				prefix = styles.SelectionIndicatorStyle.Render(">")
			}
			radio := "( )"
			if i == fs.listSelected {
				radio = "(●)"
			}
			rows = append(rows, prefix+radio+" "+opt.Label)
		}
		if len(rows) == 0 {
			rows = []string{" (no options)"}
		}
	}

	return styles.RenderFormSection(rows, cfg.Label, cfg.Hint, width, focused, styles.BorderHighlightFocusColor)
}
