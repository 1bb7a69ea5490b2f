package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered schema history. Migrations are embedded so
// the binary is self-contained; new ones go at the end with the next
// version number.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_samples",
		SQL: `
			CREATE TABLE IF NOT EXISTS samples (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				time INTEGER NOT NULL,
				lat REAL NOT NULL,
				long REAL NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_samples_time ON samples(time);
		`,
	},
	{
		Version: 2,
		Name:    "create_regions",
		SQL: `
			CREATE TABLE IF NOT EXISTS regions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL DEFAULT '',
				lat REAL NOT NULL,
				long REAL NOT NULL,
				radius REAL NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
	{
		Version: 3,
		Name:    "create_windows",
		SQL: `
			CREATE TABLE IF NOT EXISTS windows (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				start INTEGER NOT NULL,
				stop INTEGER NOT NULL
			);
		`,
	},
	{
		Version: 4,
		Name:    "create_runs",
		SQL: `
			CREATE TABLE IF NOT EXISTS runs (
				id TEXT PRIMARY KEY,
				created_at INTEGER NOT NULL,
				sample_count INTEGER NOT NULL,
				total_seconds INTEGER NOT NULL
			);
			CREATE TABLE IF NOT EXISTS run_periods (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
				start INTEGER NOT NULL,
				stop INTEGER NOT NULL
			);
			CREATE TABLE IF NOT EXISTS run_date_totals (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
				date TEXT NOT NULL,
				seconds INTEGER NOT NULL
			);
		`,
	},
}

// initMigrationsTable creates the migrations tracking table
func initMigrationsTable(d *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := d.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// appliedMigrations returns the set of applied migration versions
func appliedMigrations(d *sql.DB) (map[int]bool, error) {
	rows, err := d.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// applyMigration applies a single migration inside a transaction
func applyMigration(d *sql.DB, m Migration) error {
	return Transaction(d, func(tx *sql.Tx) error {
		if _, err := tx.Exec(m.SQL); err != nil {
			return fmt.Errorf("failed to execute migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		return nil
	})
}

// RunMigrations applies all pending migrations in version order.
func RunMigrations(d *sql.DB) error {
	if err := initMigrationsTable(d); err != nil {
		return err
	}

	applied, err := appliedMigrations(d)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(d, m); err != nil {
			return err
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}
