package form

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

// fieldState holds runtime state for a field.
type fieldState struct {
	config FieldConfig

	// Text field state
	textInput textinput.Model

	// TextArea field state
	textArea textarea.Model

	// Select field state
	listCursor   int
	listSelected int // Index of the chosen option, -1 when none
}

// newFieldState creates a fieldState from a FieldConfig.
func newFieldState(cfg FieldConfig) fieldState {
	fs := fieldState{config: cfg}

	switch cfg.Type {
	case FieldTypeText:
		ti := textinput.New()
		ti.Placeholder = cfg.Placeholder
		ti.Prompt = ""
		if cfg.MaxLength > 0 {
			ti.CharLimit = cfg.MaxLength
		}
		if cfg.InitialValue != "" {
			ti.SetValue(cfg.InitialValue)
		}
		ti.Width = 50
		fs.textInput = ti

	case FieldTypeTextArea:
		ta := textarea.New()
		ta.Placeholder = cfg.Placeholder
		ta.ShowLineNumbers = false
		lines := cfg.Lines
		if lines <= 0 {
			lines = 4
		}
		ta.SetHeight(lines)
		ta.SetWidth(50)
		if cfg.InitialValue != "" {
			ta.SetValue(cfg.InitialValue)
		}
		fs.textArea = ta

	case FieldTypeSelect:
		fs.listSelected = -1
		for i, opt := range cfg.Options {
			if opt.Selected {
				fs.listCursor = i
				fs.listSelected = i
			}
		}
	}

	return fs
}

// value returns the current value of the field.
func (fs *fieldState) value() string {
	switch fs.config.Type {
	case FieldTypeText:
		return fs.textInput.Value()
	case FieldTypeTextArea:
		return fs.textArea.Value()
	case FieldTypeSelect:
		if fs.listSelected >= 0 && fs.listSelected < len(fs.config.Options) {
			return fs.config.Options[fs.listSelected].Value
		}
		return ""
	}
	return ""
}

// focus gives the field input focus.
func (fs *fieldState) focus() {
	switch fs.config.Type {
	case FieldTypeText:
		fs.textInput.Focus()
	case FieldTypeTextArea:
		fs.textArea.Focus()
	}
}

// blur removes input focus from the field.
func (fs *fieldState) blur() {
	switch fs.config.Type {
	case FieldTypeText:
		fs.textInput.Blur()
	case FieldTypeTextArea:
		fs.textArea.Blur()
	}
}
