package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"curato/internal/content"
	"curato/internal/pubsub"
)

// newTestStore creates a store backed by an in-memory database.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	s, err := NewWithDB(db, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := content.NewRecord(content.TypeModule, "Intro to Go", map[string]string{
		content.FieldDescription: "First module",
		content.FieldPosition:    "1",
	})
	require.NoError(t, s.Save(ctx, rec))

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec.ID, got.ID)
	require.Equal(t, content.TypeModule, got.Type)
	require.Equal(t, "Intro to Go", got.Title)
	require.Equal(t, "First module", got.Field(content.FieldDescription))
	require.Equal(t, "1", got.Field(content.FieldPosition))
}

func TestStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), uuid.New())

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestStore_SaveUpdatesExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := content.NewRecord(content.TypeArticle, "Draft", nil)
	require.NoError(t, s.Save(ctx, rec))

	rec.Title = "Published"
	rec.Fields = map[string]string{content.FieldBody: "text"}
	require.NoError(t, s.Save(ctx, rec))

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, "Published", got.Title)
	require.Equal(t, "text", got.Field(content.FieldBody))
	require.False(t, got.UpdatedAt.Before(got.CreatedAt))

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1, "update must not create a second row")
}

func TestStore_ListFiltersAndOrders(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	older := content.NewRecord(content.TypeVideo, "Old video", nil)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	older.UpdatedAt = older.CreatedAt
	newer := content.NewRecord(content.TypeVideo, "New video", nil)
	article := content.NewRecord(content.TypeArticle, "An article", nil)

	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, newer))
	require.NoError(t, s.Save(ctx, article))

	videos, err := s.List(ctx, content.TypeVideo)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	require.Equal(t, "New video", videos[0].Title, "newest first")
	require.Equal(t, "Old video", videos[1].Title)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := content.NewRecord(content.TypeCategory, "Basics", nil)
	require.NoError(t, s.Save(ctx, rec))
	require.NoError(t, s.Delete(ctx, rec.ID))

	_, err := s.Get(ctx, rec.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	err = s.Delete(ctx, rec.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestStore_CountByType(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, content.NewRecord(content.TypeModule, "a", nil)))
	require.NoError(t, s.Save(ctx, content.NewRecord(content.TypeModule, "b", nil)))
	require.NoError(t, s.Save(ctx, content.NewRecord(content.TypeVideo, "c", nil)))

	counts, err := s.CountByType(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int{
		content.TypeModule: 2,
		content.TypeVideo:  1,
	}, counts)
}

func TestStore_PublishesEvents(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := s.Events().Subscribe(ctx)

	rec := content.NewRecord(content.TypeModule, "Evented", nil)
	require.NoError(t, s.Save(ctx, rec))
	evt := receiveEvent(t, events)
	require.Equal(t, pubsub.KindCreated, evt.Kind)
	require.Equal(t, rec.ID, evt.Payload.ID)

	rec.Title = "Evented v2"
	require.NoError(t, s.Save(ctx, rec))
	evt = receiveEvent(t, events)
	require.Equal(t, pubsub.KindUpdated, evt.Kind)

	require.NoError(t, s.Delete(ctx, rec.ID))
	evt = receiveEvent(t, events)
	require.Equal(t, pubsub.KindDeleted, evt.Kind)
	require.Equal(t, rec.ID, evt.Payload.ID)
}

func receiveEvent(t *testing.T, ch <-chan pubsub.Event[content.Record]) pubsub.Event[content.Record] {
	t.Helper()
	select {
	case evt := <-ch:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return pubsub.Event[content.Record]{}
	}
}

func TestStore_MigrationsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, applyMigrations(db))
	require.NoError(t, applyMigrations(db))

	var version int
	require.NoError(t, db.QueryRow("PRAGMA user_version").Scan(&version))
	require.Equal(t, 1, version)
}
