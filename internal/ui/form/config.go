// Package form provides a configuration-driven field engine for the
// create-mode content forms.
//
// A form is a vertical list of fields followed by submit and cancel
// buttons. Tab and Shift+Tab cycle focus through fields and onto the
// buttons; Enter confirms. Validation runs on submit and failures
// render above the buttons without losing field state.
//
// Message flow: submitting produces SubmitMsg (or the message built by
// the OnSubmit factory), cancelling produces CancelMsg (or OnCancel's
// message). Hosts that want their own message types set the factories:
//
//	cfg := form.Config{
//	    Title:  "New Module",
//	    Fields: []form.FieldConfig{...},
//	    OnSubmit: func(values map[string]string) tea.Msg {
//	        return saveRequestedMsg{values: values}
//	    },
//	}
package form

import tea "github.com/charmbracelet/bubbletea"

// FieldType identifies the type of form field.
type FieldType int

const (
	// FieldTypeText is a single-line text input.
	// Supports Placeholder, MaxLength, and InitialValue options.
	FieldTypeText FieldType = iota

	// FieldTypeTextArea is a multi-line text input.
	// Supports Placeholder, InitialValue, and Lines options.
	FieldTypeTextArea

	// FieldTypeSelect is a single-select list (radio button style).
	// Navigate with j/k, Enter chooses the option under the cursor.
	FieldTypeSelect
)

// FieldConfig defines a single form field.
type FieldConfig struct {
	Key   string    // Unique identifier, used as the map key in SubmitMsg.Values
	Type  FieldType // Type of field
	Label string    // Section label (e.g., "Title")
	Hint  string    // Section hint (e.g., "required", "optional")

	// Text field options
	Placeholder  string // Placeholder text
	MaxLength    int    // Character limit (0 = unlimited)
	InitialValue string // Pre-filled value

	// TextArea field options
	Lines int // Visible line count (default: 4)

	// Select field options
	Options []Option // Available options
}

// Option represents an item in a select field.
type Option struct {
	Label    string // Display text
	Value    string // Programmatic value (returned in SubmitMsg.Values)
	Selected bool   // Initially selected
}

// Config defines the complete form configuration.
type Config struct {
	Title       string        // Heading displayed above the fields
	Fields      []FieldConfig // Fields in display order
	SubmitLabel string        // Submit button label (default: "Save")
	CancelLabel string        // Cancel button label (default: "Cancel")
	Width       int           // Total width (default: 60)

	// Validate receives all field values and returns an error when
	// submission should be blocked. The message renders above the
	// buttons.
	Validate func(map[string]string) error

	// OnSubmit produces a custom message when the form is submitted.
	// If nil, the form produces SubmitMsg{Values: values}.
	OnSubmit func(values map[string]string) tea.Msg

	// OnCancel produces a custom message when the form is cancelled.
	// If nil, the form produces CancelMsg{}.
	OnCancel func() tea.Msg
}

// SubmitMsg is sent when the form is submitted successfully.
type SubmitMsg struct {
	Values map[string]string // Field values keyed by FieldConfig.Key
}

// CancelMsg is sent when the form is cancelled via Esc or the cancel
// button.
type CancelMsg struct{}
