package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curato/internal/content"
)

func TestBuilderSeedsRecordsInOrder(t *testing.T) {
	s := OpenStore(t)
	ctx := context.Background()

	seeded := NewBuilder(t, s).
		WithRecord(content.TypeCategory, "First").
		WithRecord(content.TypeModule, "Second", Description("a module")).
		Seed(ctx)

	require.Len(t, seeded, 2)
	assert.Equal(t, "First", seeded[0].Title)
	assert.Equal(t, "a module", seeded[1].Field(content.FieldDescription))

	records, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestOptionsApplyToRecord(t *testing.T) {
	s := OpenStore(t)
	ctx := context.Background()
	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	seeded := NewBuilder(t, s).
		WithRecord(content.TypeVideo, "Clip",
			Field(content.FieldVideoURL, "https://example.com/v"),
			Fields(map[string]string{content.FieldDuration: "5:00"}),
			CreatedAt(created), UpdatedAt(created)).
		Seed(ctx)

	got, err := s.Get(ctx, seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/v", got.Field(content.FieldVideoURL))
	assert.Equal(t, "5:00", got.Field(content.FieldDuration))
	assert.Equal(t, created.Unix(), got.CreatedAt.Unix())
}

func TestSampleLibraryCoversEveryType(t *testing.T) {
	s := OpenStore(t)
	ctx := context.Background()

	NewBuilder(t, s).WithSampleLibrary().Seed(ctx)

	counts, err := s.CountByType(ctx)
	require.NoError(t, err)
	for _, typeID := range []string{content.TypeCategory, content.TypeModule, content.TypeVideo, content.TypeArticle} {
		assert.Equal(t, 1, counts[typeID], "type %s", typeID)
	}
}

func TestSampleLibraryLinksModuleToCategory(t *testing.T) {
	s := OpenStore(t)
	ctx := context.Background()

	seeded := NewBuilder(t, s).WithSampleLibrary().Seed(ctx)

	category, module := seeded[0], seeded[1]
	assert.Equal(t, category.ID.String(), module.Field(content.FieldCategory))
}
