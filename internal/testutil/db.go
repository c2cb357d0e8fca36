// Package testutil provides test helpers for seeding record stores.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/stretchr/testify/require"

	"curato/internal/store"
)

// OpenStore creates an in-memory record store, closed when the test
// finishes.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	s, err := store.NewWithDB(db, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}
