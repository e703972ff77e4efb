package sqlite

import (
	"context"
	"fmt"

	"stocktally/pkg/logger"
)

type migration struct {
	version    int
	statements []string
}

// migrations is append-only: never edit a released entry, add a new version.
var migrations = []migration{
	{
		version: 1,
		statements: []string{
			`CREATE TABLE IF NOT EXISTS items (
				code_item TEXT PRIMARY KEY,
				description_item TEXT NOT NULL DEFAULT '',
				current_inventory INTEGER NOT NULL DEFAULT 0
			)`,
			`CREATE TABLE IF NOT EXISTS deposits (
				deposit_id INTEGER PRIMARY KEY AUTOINCREMENT,
				deposit_description TEXT NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS racks (
				rack_id INTEGER PRIMARY KEY AUTOINCREMENT,
				rack_description TEXT NOT NULL,
				deposit_id INTEGER NOT NULL REFERENCES deposits(deposit_id)
			)`,
			`CREATE TABLE IF NOT EXISTS inventory_count (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				counter_name TEXT NOT NULL DEFAULT '',
				code_item TEXT NOT NULL,
				deposit_id INTEGER NOT NULL REFERENCES deposits(deposit_id),
				rack_id INTEGER NOT NULL REFERENCES racks(rack_id),
				location TEXT NOT NULL DEFAULT '',
				boxqty INTEGER NOT NULL DEFAULT 0,
				boxunitqty INTEGER NOT NULL DEFAULT 0,
				boxunittotal INTEGER NOT NULL DEFAULT 0,
				magazijn INTEGER NOT NULL DEFAULT 0,
				winkel INTEGER NOT NULL DEFAULT 0,
				total INTEGER NOT NULL DEFAULT 0,
				current_inventory INTEGER NOT NULL DEFAULT 0,
				difference INTEGER NOT NULL DEFAULT 0,
				count_date TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_inventory_count_code ON inventory_count(code_item)`,
			`CREATE INDEX IF NOT EXISTS idx_inventory_count_location ON inventory_count(deposit_id, rack_id)`,
		},
	},
	{
		version: 2,
		statements: []string{
			`ALTER TABLE inventory_count ADD COLUMN remarks TEXT NOT NULL DEFAULT ''`,
		},
	},
	{
		version: 3,
		statements: []string{
			`CREATE TABLE IF NOT EXISTS sales (
				code_item TEXT NOT NULL,
				sales_qty INTEGER NOT NULL DEFAULT 0
			)`,
			`CREATE TABLE IF NOT EXISTS purchasing (
				code_item TEXT NOT NULL,
				purchasing_qty INTEGER NOT NULL DEFAULT 0
			)`,
			`CREATE TABLE IF NOT EXISTS inventory_count_res (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				code_item TEXT NOT NULL,
				description_item TEXT NOT NULL DEFAULT '',
				boxqty INTEGER NOT NULL DEFAULT 0,
				boxunitqty INTEGER NOT NULL DEFAULT 0,
				boxunittotal INTEGER NOT NULL DEFAULT 0,
				magazijn INTEGER NOT NULL DEFAULT 0,
				winkel INTEGER NOT NULL DEFAULT 0,
				total INTEGER NOT NULL DEFAULT 0,
				current_inventory INTEGER NOT NULL DEFAULT 0,
				sales_qty INTEGER NOT NULL DEFAULT 0,
				purchasing_qty INTEGER NOT NULL DEFAULT 0,
				total_calc INTEGER NOT NULL DEFAULT 0,
				difference INTEGER NOT NULL DEFAULT 0,
				updated_date TEXT NOT NULL DEFAULT ''
			)`,
		},
	},
}

// Migrate applies any migration whose version is above the stored schema
// version, each inside its own transaction.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY, applied_at TEXT NOT NULL)`,
	); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var current int
	if err := db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`,
	).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.version, err)
		}
		for _, stmt := range m.statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				tx.Rollback()
				return fmt.Errorf("apply migration %d: %w", m.version, err)
			}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, applied_at) VALUES (?, datetime('now'))`,
			m.version,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.version, err)
		}
		logger.Info(ctx, "applied migration", "version", m.version)
	}
	return nil
}
