// Package db persists jump-point aliases: short names a traveler types in
// place of a full catalog system name.
package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"neutron-plotter/internal/logger"
)

// AliasPrefix marks an input name that should be resolved through the
// jump-point table before catalog lookup.
const AliasPrefix = "JP:"

// DB wraps the SQLite connection holding the jump-point table.
type DB struct {
	sql *sql.DB
}

// Open opens (creating if needed) the alias database at path and runs
// migrations. A missing file is not an error.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	d := &DB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	logger.Success("DB", fmt.Sprintf("Opened %s", path))
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate() error {
	version := 0
	d.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := d.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS jump_points (
				alias  TEXT PRIMARY KEY,
				system TEXT NOT NULL
			);

			INSERT INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return err
		}
	}
	return nil
}

// SetAlias stores or replaces one jump-point alias.
func (d *DB) SetAlias(alias, system string) error {
	_, err := d.sql.Exec(`
		INSERT INTO jump_points (alias, system) VALUES (?, ?)
		ON CONFLICT(alias) DO UPDATE SET system = excluded.system`,
		alias, system,
	)
	return err
}

// Aliases returns every stored alias mapping.
func (d *DB) Aliases() (map[string]string, error) {
	rows, err := d.sql.Query("SELECT alias, system FROM jump_points")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var alias, system string
		if err := rows.Scan(&alias, &system); err != nil {
			return nil, err
		}
		out[alias] = system
	}
	return out, rows.Err()
}

// Seed inserts the stock jump points when the table is empty.
func (d *DB) Seed() error {
	var count int
	d.sql.QueryRow("SELECT COUNT(*) FROM jump_points").Scan(&count)
	if count > 0 {
		return nil
	}
	defaults := map[string]string{
		"Sol":     "Jackson's Lighthouse",
		"Colonia": "Magellan",
	}
	for alias, system := range defaults {
		if err := d.SetAlias(alias, system); err != nil {
			return err
		}
	}
	return nil
}

// MigrateFromJSON imports a legacy jumppoints.json file (a flat object of
// alias -> system) into SQLite, then renames it out of the way. Missing or
// unreadable files are silently skipped.
func (d *DB) MigrateFromJSON(jsonPath string) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return // nothing to migrate
	}

	var count int
	d.sql.QueryRow("SELECT COUNT(*) FROM jump_points").Scan(&count)
	if count > 0 {
		// Already migrated, just rename the file.
		os.Rename(jsonPath, jsonPath+".bak")
		return
	}

	var aliases map[string]string
	if err := json.Unmarshal(data, &aliases); err != nil {
		logger.Warn("DB", fmt.Sprintf("Skipping %s: %v", jsonPath, err))
		return
	}

	logger.Info("DB", fmt.Sprintf("Migrating %s to SQLite...", jsonPath))
	for alias, system := range aliases {
		if err := d.SetAlias(alias, system); err != nil {
			logger.Warn("DB", fmt.Sprintf("Import %q: %v", alias, err))
		}
	}
	os.Rename(jsonPath, jsonPath+".bak")
}

// ResolveAlias maps a user-supplied name through the alias table. Only
// names carrying the AliasPrefix are looked up; everything else, and any
// prefixed name with no entry, passes through unchanged.
func ResolveAlias(name string, aliases map[string]string) string {
	stripped, ok := strings.CutPrefix(name, AliasPrefix)
	if !ok {
		return name
	}
	if target, ok := aliases[stripped]; ok {
		return target
	}
	return name
}
