// Package forms provides the create-mode form for each registered
// content type. Every form wraps the generic form engine with the
// type's field set and validation, and persists submissions through
// the store.
package forms

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"curato/internal/content"
	"curato/internal/log"
	"curato/internal/registry"
	"curato/internal/store"
	"curato/internal/ui/form"
)

// titleKey is the form-value key holding the record title. Title is a
// first-class record column rather than a type-specific field, so it
// does not live with the content field keys.
const titleKey = "title"

// Deps carries what every form needs to persist a record.
type Deps struct {
	Store *store.Store
	Ctx   context.Context
}

// SavedMsg announces a successful save. The hosting mode uses it to
// surface a toast; the form itself resets to a blank state.
type SavedMsg struct {
	Record content.Record
}

// SaveFailedMsg announces a failed save. The form leaves its values
// intact so the user can retry.
type SaveFailedMsg struct {
	TypeID string
	Err    error
}

// CancelledMsg announces that the user dismissed the form.
type CancelledMsg struct {
	TypeID string
}

// model adapts a form.Model to the registry.Form contract for one
// content type.
type model struct {
	typeID string
	deps   Deps
	build  func() form.Model
	inner  form.Model
}

func newRecordForm(deps Deps, typeID string, cfg form.Config) model {
	build := func() form.Model { return form.New(cfg) }
	return model{
		typeID: typeID,
		deps:   deps,
		build:  build,
		inner:  build(),
	}
}

func (m model) Init() tea.Cmd {
	return m.inner.Init()
}

func (m model) Update(msg tea.Msg) (registry.Form, tea.Cmd) {
	switch msg := msg.(type) {
	case form.SubmitMsg:
		return m, m.saveCmd(msg.Values)

	case form.CancelMsg:
		typeID := m.typeID
		m.inner = m.build()
		return m, func() tea.Msg { return CancelledMsg{TypeID: typeID} }

	case SavedMsg:
		if msg.Record.Type == m.typeID {
			m.inner = m.build()
			return m, m.inner.Init()
		}
		return m, nil

	case SaveFailedMsg:
		if msg.TypeID == m.typeID {
			m.inner = m.inner.SetError(fmt.Sprintf("Save failed: %v", msg.Err))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inner, cmd = m.inner.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.inner.View()
}

func (m model) SetSize(width, height int) registry.Form {
	m.inner = m.inner.SetSize(width, height)
	return m
}

// saveCmd persists the submitted values as a new record. It runs in
// the command goroutine so the UI stays responsive during the write.
func (m model) saveCmd(values map[string]string) tea.Cmd {
	return func() tea.Msg {
		title := strings.TrimSpace(values[titleKey])
		fields := make(map[string]string, len(values))
		for key, value := range values {
			if key == titleKey {
				continue
			}
			if value = strings.TrimSpace(value); value != "" {
				fields[key] = value
			}
		}

		rec := content.NewRecord(m.typeID, title, fields)
		if err := m.deps.Store.Save(m.deps.Ctx, rec); err != nil {
			log.ErrorErr(log.CatUI, "form save failed", err, "type", m.typeID)
			return SaveFailedMsg{TypeID: m.typeID, Err: err}
		}
		return SavedMsg{Record: rec}
	}
}

// NewCategoryForm builds the category create form.
func NewCategoryForm(deps Deps) registry.Form {
	return newRecordForm(deps, content.TypeCategory, form.Config{
		Title: "New Category",
		Fields: []form.FieldConfig{
			{Key: titleKey, Type: form.FieldTypeText, Label: "Title", Placeholder: "Category name", MaxLength: 120},
			{Key: content.FieldDescription, Type: form.FieldTypeTextArea, Label: "Description", Hint: "Shown on the category card", Lines: 3},
			{Key: content.FieldPosition, Type: form.FieldTypeText, Label: "Position", Hint: "Sort order, lowest first", Placeholder: "0"},
		},
		Validate: chainValidators(requireTitle, numericPosition),
	})
}

// NewModuleForm builds the module create form. Category options come
// from the saved categories at construction time.
func NewModuleForm(deps Deps) registry.Form {
	return newRecordForm(deps, content.TypeModule, form.Config{
		Title: "New Module",
		Fields: []form.FieldConfig{
			{Key: titleKey, Type: form.FieldTypeText, Label: "Title", Placeholder: "Module name", MaxLength: 120},
			{Key: content.FieldCategory, Type: form.FieldTypeSelect, Label: "Category", Options: categoryOptions(deps)},
			{Key: content.FieldDescription, Type: form.FieldTypeTextArea, Label: "Description", Lines: 3},
			{Key: content.FieldPosition, Type: form.FieldTypeText, Label: "Position", Hint: "Sort order within the category", Placeholder: "0"},
		},
		Validate: chainValidators(requireTitle, numericPosition),
	})
}

// NewVideoForm builds the video create form.
func NewVideoForm(deps Deps) registry.Form {
	return newRecordForm(deps, content.TypeVideo, form.Config{
		Title: "New Video",
		Fields: []form.FieldConfig{
			{Key: titleKey, Type: form.FieldTypeText, Label: "Title", MaxLength: 120},
			{Key: content.FieldVideoURL, Type: form.FieldTypeText, Label: "Video URL", Placeholder: "https://", MaxLength: 500},
			{Key: content.FieldDuration, Type: form.FieldTypeText, Label: "Duration", Hint: "mm:ss", Placeholder: "12:30"},
			{Key: content.FieldCategory, Type: form.FieldTypeSelect, Label: "Category", Options: categoryOptions(deps)},
			{Key: content.FieldDescription, Type: form.FieldTypeTextArea, Label: "Description", Lines: 3},
		},
		Validate: chainValidators(requireTitle, requireVideoURL),
	})
}

// NewArticleForm builds the article create form.
func NewArticleForm(deps Deps) registry.Form {
	return newRecordForm(deps, content.TypeArticle, form.Config{
		Title: "New Article",
		Fields: []form.FieldConfig{
			{Key: titleKey, Type: form.FieldTypeText, Label: "Title", MaxLength: 120},
			{Key: content.FieldAuthor, Type: form.FieldTypeText, Label: "Author", MaxLength: 120},
			{Key: content.FieldCategory, Type: form.FieldTypeSelect, Label: "Category", Options: categoryOptions(deps)},
			{Key: content.FieldBody, Type: form.FieldTypeTextArea, Label: "Body", Hint: "Markdown", Lines: 10},
		},
		Validate: chainValidators(requireTitle, requireBody),
	})
}

// categoryOptions loads the saved categories for a select field.
// A load failure degrades to an empty option list rather than blocking
// form construction.
func categoryOptions(deps Deps) []form.Option {
	records, err := deps.Store.List(deps.Ctx, content.TypeCategory)
	if err != nil {
		log.ErrorErr(log.CatUI, "loading categories for form", err)
		return nil
	}
	options := make([]form.Option, 0, len(records))
	for _, rec := range records {
		options = append(options, form.Option{Label: rec.Title, Value: rec.ID.String()})
	}
	return options
}

func chainValidators(validators ...func(map[string]string) error) func(map[string]string) error {
	return func(values map[string]string) error {
		for _, validate := range validators {
			if err := validate(values); err != nil {
				return err
			}
		}
		return nil
	}
}

func requireTitle(values map[string]string) error {
	if strings.TrimSpace(values[titleKey]) == "" {
		return errors.New("title is required")
	}
	return nil
}

func numericPosition(values map[string]string) error {
	pos := strings.TrimSpace(values[content.FieldPosition])
	if pos == "" {
		return nil
	}
	if _, err := strconv.Atoi(pos); err != nil {
		return errors.New("position must be a whole number")
	}
	return nil
}

func requireVideoURL(values map[string]string) error {
	raw := strings.TrimSpace(values[content.FieldVideoURL])
	if raw == "" {
		return errors.New("video URL is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("video URL must be a full http(s) address")
	}
	return nil
}

func requireBody(values map[string]string) error {
	if strings.TrimSpace(values[content.FieldBody]) == "" {
		return errors.New("body is required")
	}
	return nil
}
