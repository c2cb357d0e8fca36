package cmd

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curato/internal/content"
	"curato/internal/store"
	"curato/internal/ui/forms"
)

func TestContentTypesOrderAndLabels(t *testing.T) {
	types := contentTypes()
	require.Len(t, types, 4)

	assert.Equal(t, content.TypeCategory, types[0].ID)
	assert.Equal(t, content.TypeModule, types[1].ID)
	assert.Equal(t, content.TypeVideo, types[2].ID)
	assert.Equal(t, content.TypeArticle, types[3].ID)

	for _, desc := range types {
		assert.Equal(t, content.Labels[desc.ID], desc.Label)
	}
}

func TestBuildRegistryRegistersEveryType(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	s, err := store.NewWithDB(db, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	reg, err := buildRegistry(forms.Deps{Store: s, Ctx: context.Background()})
	require.NoError(t, err)

	require.Equal(t, 4, reg.Len())
	for _, desc := range contentTypes() {
		render, err := reg.Resolve(desc.ID)
		require.NoError(t, err)
		require.NotNil(t, render())
	}
}

func TestTypesCommandListsTypes(t *testing.T) {
	var out bytes.Buffer
	typesCmd.SetOut(&out)
	require.NoError(t, typesCmd.RunE(typesCmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "category\tCategory", lines[0])
	assert.Equal(t, "article\tArticle", lines[3])
}
