package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"curato/internal/content"
	"curato/internal/store"
)

// Builder accumulates records and saves them in insertion order.
type Builder struct {
	t       *testing.T
	store   *store.Store
	records []content.Record
}

// NewBuilder creates a builder for the given store.
func NewBuilder(t *testing.T, s *store.Store) *Builder {
	t.Helper()
	return &Builder{t: t, store: s}
}

// WithRecord adds a record with optional configuration.
func (b *Builder) WithRecord(typeID, title string, opts ...RecordOption) *Builder {
	rec := content.NewRecord(typeID, title, nil)
	for _, opt := range opts {
		opt(&rec)
	}
	b.records = append(b.records, rec)
	return b
}

// Seed saves all accumulated records and returns them in the order
// they were added.
func (b *Builder) Seed(ctx context.Context) []content.Record {
	b.t.Helper()
	for _, rec := range b.records {
		require.NoError(b.t, b.store.Save(ctx, rec))
	}
	return b.records
}
