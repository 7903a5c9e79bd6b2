// ABOUTME: Additive schema migrations with explicit version bookkeeping
// ABOUTME: Adopts legacy stores and tolerates stores written by newer releases
package sqlite

import (
	"database/sql"
	"fmt"
)

// A migration is a single additive schema step. Migrations must be
// idempotent: re-applying one against a store that already has its
// columns is a no-op.
type migration struct {
	version int
	name    string
	apply   func(tx *sql.Tx) error
}

var migrations = []migration{
	{
		version: 2,
		name:    "user booking counter and verification flag",
		apply: func(tx *sql.Tx) error {
			if err := addColumnIfMissing(tx, "users", "total_bookings", "INTEGER DEFAULT 0"); err != nil {
				return err
			}
			return addColumnIfMissing(tx, "users", "is_verified", "INTEGER DEFAULT 0")
		},
	},
}

// CurrentSchemaVersion is the version a fully migrated store reports.
const CurrentSchemaVersion = 2

// Migrate brings the store up to the current schema version. It is safe
// to run any number of times, against stores created by older releases
// (no schema_migrations table, missing columns) and by newer ones (extra
// columns already present). Each migration runs in its own transaction.
func (db *DB) Migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	var current int
	err = db.conn.QueryRow(`SELECT COALESCE(MAX(version), ?) FROM schema_migrations`, BaseSchemaVersion).Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := db.conn.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.version, err)
		}

		if err := m.apply(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}

		if _, err := tx.Exec(`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}
	}

	return nil
}

// SchemaVersion reports the store's recorded schema version.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.conn.QueryRow(`SELECT COALESCE(MAX(version), ?) FROM schema_migrations`, BaseSchemaVersion).Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}

// addColumnIfMissing adds a column to a table unless it already exists.
// The table and column names come from the static migration list above,
// never from runtime input.
func addColumnIfMissing(tx *sql.Tx, table, column, definition string) error {
	exists, err := columnExists(tx, table, column)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = tx.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition))
	return err
}

// columnExists probes the live table definition via PRAGMA table_info.
func columnExists(tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
