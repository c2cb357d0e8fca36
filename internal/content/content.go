// Package content defines the record model shared by the create forms,
// the store, and the manage view.
package content

import (
	"time"

	"github.com/google/uuid"
)

// Canonical content-type IDs. These are the stable keys used by the
// registry, the store, and saved records. Display labels live beside
// them so every surface renders the same name.
const (
	TypeCategory = "category"
	TypeModule   = "module"
	TypeVideo    = "video"
	TypeArticle  = "article"
)

// Labels maps content-type IDs to display names.
var Labels = map[string]string{
	TypeCategory: "Category",
	TypeModule:   "Module",
	TypeVideo:    "Video",
	TypeArticle:  "Article",
}

// Well-known field keys. Each form submits a subset of these plus the
// required title.
const (
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPosition    = "position"
	FieldVideoURL    = "video_url"
	FieldDuration    = "duration"
	FieldBody        = "body"
	FieldAuthor      = "author"
)

// Record is one saved piece of content. Fields holds the type-specific
// values keyed by the field-key constants; the store treats them as
// opaque.
type Record struct {
	ID        uuid.UUID
	Type      string
	Title     string
	Fields    map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRecord creates a record with a fresh ID and both timestamps set
// to now.
func NewRecord(typeID, title string, fields map[string]string) Record {
	now := time.Now().UTC()
	if fields == nil {
		fields = map[string]string{}
	}
	return Record{
		ID:        uuid.New(),
		Type:      typeID,
		Title:     title,
		Fields:    fields,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Field returns the named field value, or "" when absent.
func (r Record) Field(key string) string {
	return r.Fields[key]
}

// Label returns the display name for the record's type, falling back
// to the raw type ID for unknown types.
func (r Record) Label() string {
	if label, ok := Labels[r.Type]; ok {
		return label
	}
	return r.Type
}
