package testutil

import (
	"time"

	"github.com/google/uuid"

	"curato/internal/content"
)

// RecordOption configures a record before it is added to the builder.
type RecordOption func(*content.Record)

// ID sets the record's ID.
func ID(id uuid.UUID) RecordOption {
	return func(r *content.Record) { r.ID = id }
}

// Field sets one type-specific field value.
func Field(key, value string) RecordOption {
	return func(r *content.Record) { r.Fields[key] = value }
}

// Fields merges the given field values into the record.
func Fields(fields map[string]string) RecordOption {
	return func(r *content.Record) {
		for k, v := range fields {
			r.Fields[k] = v
		}
	}
}

// Description sets the description field.
func Description(text string) RecordOption {
	return Field(content.FieldDescription, text)
}

// Category sets the category reference field.
func Category(id string) RecordOption {
	return Field(content.FieldCategory, id)
}

// CreatedAt sets the creation timestamp.
func CreatedAt(t time.Time) RecordOption {
	return func(r *content.Record) { r.CreatedAt = t.UTC() }
}

// UpdatedAt sets the update timestamp.
func UpdatedAt(t time.Time) RecordOption {
	return func(r *content.Record) { r.UpdatedAt = t.UTC() }
}
