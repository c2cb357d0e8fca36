// Package store persists content records in SQLite and broadcasts
// change events to interested UI components.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"curato/internal/content"
	"curato/internal/log"
	"curato/internal/pubsub"
	"curato/internal/tracing"
)

// recordColumns is the list of columns to select for record queries.
const recordColumns = `id, type, title, fields, created_at, updated_at`

// NotFoundError is returned when a record lookup misses.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record %s not found", e.ID)
}

// Store owns the records database. All mutations publish an event on
// Events() after the write commits, so subscribers only ever observe
// persisted state.
type Store struct {
	db     *sql.DB
	broker *pubsub.Broker[content.Record]
	tracer trace.Tracer
}

// Open opens (creating if needed) the records database at path and
// applies pending migrations.
func Open(path string, provider *tracing.Provider) (*Store, error) {
	log.Debug(log.CatStore, "Opening database", "path", path)
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		log.ErrorErr(log.CatStore, "Failed to open database", err, "path", path)
		return nil, err
	}
	if err := db.Ping(); err != nil {
		log.ErrorErr(log.CatStore, "Failed to ping database", err, "path", path)
		return nil, err
	}
	return NewWithDB(db, provider)
}

// NewWithDB wraps an already-open database, applying pending
// migrations. The store takes ownership of db.
func NewWithDB(db *sql.DB, provider *tracing.Provider) (*Store, error) {
	if err := applyMigrations(db); err != nil {
		return nil, err
	}
	if provider == nil {
		var err error
		provider, err = tracing.NewProvider(tracing.Config{Enabled: false})
		if err != nil {
			return nil, err
		}
	}
	return &Store{
		db:     db,
		broker: pubsub.NewBroker[content.Record](),
		tracer: provider.Tracer(),
	}, nil
}

// Events returns the broker carrying record change events.
func (s *Store) Events() *pubsub.Broker[content.Record] {
	return s.broker
}

// Close closes the broker and the underlying database.
func (s *Store) Close() error {
	s.broker.Close()
	return s.db.Close()
}

// Save inserts the record, or updates it when the ID already exists.
// UpdatedAt is set to the write time on update. Publishes a created or
// updated event after the write.
func (s *Store) Save(ctx context.Context, rec content.Record) error {
	ctx, span := s.tracer.Start(ctx, tracing.SpanPrefixStore+"save", trace.WithAttributes(
		attribute.String(tracing.AttrRecordID, rec.ID.String()),
		attribute.String(tracing.AttrRecordType, rec.Type),
	))
	defer span.End()

	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}

	var exists bool
	err = s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM records WHERE id = ?)`, rec.ID.String(),
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check record: %w", err)
	}

	if exists {
		rec.UpdatedAt = time.Now().UTC()
		_, err = s.db.ExecContext(ctx,
			`UPDATE records SET type = ?, title = ?, fields = ?, updated_at = ? WHERE id = ?`,
			rec.Type, rec.Title, string(fields), rec.UpdatedAt.Unix(), rec.ID.String(),
		)
		if err != nil {
			log.ErrorErr(log.CatStore, "Failed to update record", err, "id", rec.ID)
			return fmt.Errorf("update record: %w", err)
		}
		log.Info(log.CatStore, "Updated record", "id", rec.ID, "type", rec.Type)
		s.broker.Publish(pubsub.KindUpdated, rec)
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (id, type, title, fields, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.Type, rec.Title, string(fields),
		rec.CreatedAt.Unix(), rec.UpdatedAt.Unix(),
	)
	if err != nil {
		log.ErrorErr(log.CatStore, "Failed to insert record", err, "id", rec.ID)
		return fmt.Errorf("insert record: %w", err)
	}
	log.Info(log.CatStore, "Created record", "id", rec.ID, "type", rec.Type)
	s.broker.Publish(pubsub.KindCreated, rec)
	return nil
}

// Get retrieves a record by ID. Returns NotFoundError when absent.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (content.Record, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanPrefixStore+"get", trace.WithAttributes(
		attribute.String(tracing.AttrRecordID, id.String()),
	))
	defer span.End()

	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM records WHERE id = ?`, id.String(),
	)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Record{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return content.Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// List returns records of the given type, newest first. An empty
// typeID returns every record.
func (s *Store) List(ctx context.Context, typeID string) ([]content.Record, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanPrefixStore+"list", trace.WithAttributes(
		attribute.String(tracing.AttrRecordType, typeID),
	))
	defer span.End()

	query := `SELECT ` + recordColumns + ` FROM records ORDER BY updated_at DESC, id`
	args := []any{}
	if typeID != "" {
		query = `SELECT ` + recordColumns + ` FROM records WHERE type = ? ORDER BY updated_at DESC, id`
		args = append(args, typeID)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []content.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	span.SetAttributes(attribute.Int(tracing.AttrRecordRows, len(records)))
	return records, nil
}

// Delete removes a record by ID. Returns NotFoundError when absent.
// Publishes a deleted event carrying the removed record.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, tracing.SpanPrefixStore+"delete", trace.WithAttributes(
		attribute.String(tracing.AttrRecordID, id.String()),
	))
	defer span.End()

	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id.String())
	if err != nil {
		log.ErrorErr(log.CatStore, "Failed to delete record", err, "id", id)
		return fmt.Errorf("delete record: %w", err)
	}
	log.Info(log.CatStore, "Deleted record", "id", id, "type", rec.Type)
	s.broker.Publish(pubsub.KindDeleted, rec)
	return nil
}

// CountByType returns the number of records per content type. Types
// with no records are absent from the map.
func (s *Store) CountByType(ctx context.Context) (map[string]int, error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanPrefixStore+"count_by_type")
	defer span.End()

	rows, err := s.db.QueryContext(ctx, `SELECT type, COUNT(*) FROM records GROUP BY type`)
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var typeID string
		var n int
		if err := rows.Scan(&typeID, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[typeID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	return counts, nil
}

// scanRecord scans a row into a Record.
func scanRecord(scanner interface{ Scan(...any) error }) (content.Record, error) {
	var (
		idStr     string
		fieldsStr string
		createdAt int64
		updatedAt int64
		rec       content.Record
	)
	err := scanner.Scan(&idStr, &rec.Type, &rec.Title, &fieldsStr, &createdAt, &updatedAt)
	if err != nil {
		return content.Record{}, err
	}

	rec.ID, err = uuid.Parse(idStr)
	if err != nil {
		return content.Record{}, fmt.Errorf("parse record id: %w", err)
	}
	if err := json.Unmarshal([]byte(fieldsStr), &rec.Fields); err != nil {
		return content.Record{}, fmt.Errorf("decode fields: %w", err)
	}
	rec.CreatedAt = time.Unix(createdAt, 0).UTC()
	rec.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return rec, nil
}
