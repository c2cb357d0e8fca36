package store

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"

	"curato/internal/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// applyMigrations runs any pending migration files in lexical order.
// The current schema version is tracked in PRAGMA user_version; each
// applied file bumps it by one.
func applyMigrations(db *sql.DB) error {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for i, name := range names {
		if i < version {
			continue
		}
		script, err := migrationsFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			return fmt.Errorf("bump schema version: %w", err)
		}
		log.Info(log.CatStore, "Applied migration", "name", name, "version", i+1)
	}

	return nil
}
