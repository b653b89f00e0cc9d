package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/facet/internal/config"
	_ "modernc.org/sqlite"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 2

// FileName is the database file created inside the base directory.
const FileName = "facet.db"

// Init initializes the SQLite database at baseDir/facet.db.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.facet.
func Init(baseDir string) (*sql.DB, error) {
	// Create base directory with restricted permissions
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	// Explicit chmod (best-effort, may not work on all platforms)
	_ = os.Chmod(baseDir, 0700)

	// Open database with pragmas in connection string (applies to all connections)
	dbPath := filepath.Join(baseDir, FileName)
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify WAL mode is active
	if err := verifyWALMode(db); err != nil {
		db.Close()
		return nil, err
	}

	// Run migrations (this creates the file if it doesn't exist)
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	// Set file permissions after file exists (best-effort)
	_ = os.Chmod(dbPath, 0600)

	return db, nil
}

// ConfigurePool applies connection pool settings from config.
// Only sets limits if explicitly configured (non-zero values).
// Call after Init if you need to tune pool behavior for contention.
func ConfigurePool(db *sql.DB, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	version, err := GetUserVersion(db)
	if err != nil {
		return err
	}

	// Migration 0 -> 1: posts
	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS posts (
		  id                TEXT PRIMARY KEY,
		  title             TEXT NOT NULL,
		  slug              TEXT NOT NULL,
		  content           TEXT NOT NULL,
		  excerpt           TEXT NOT NULL,
		  category          TEXT NOT NULL,
		  tags_json         TEXT,
		  author            TEXT NOT NULL,
		  status            TEXT NOT NULL DEFAULT 'draft',
		  is_ai_generated   INTEGER NOT NULL DEFAULT 0,
		  reading_time      INTEGER NOT NULL,
		  keywords_json     TEXT,
		  meta_description  TEXT,
		  archetype         TEXT,
		  generation_source TEXT,
		  created_at        INTEGER NOT NULL,
		  published_at      INTEGER,
		  CHECK (status IN ('draft', 'review', 'published')),
		  CHECK ((status = 'published') = (published_at IS NOT NULL))
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_posts_slug
		ON posts(slug);

		CREATE INDEX IF NOT EXISTS idx_posts_status_created
		ON posts(status, created_at DESC);

		CREATE INDEX IF NOT EXISTS idx_posts_archetype_created
		ON posts(archetype, created_at DESC)
		WHERE archetype IS NOT NULL;
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := SetUserVersion(db, 1); err != nil {
			return err
		}
	}

	// Migration 1 -> 2: crystal reference table
	if version < 2 {
		schema := `
		CREATE TABLE IF NOT EXISTS crystals (
		  name_norm       TEXT PRIMARY KEY,
		  name            TEXT NOT NULL,
		  description     TEXT NOT NULL,
		  properties_json TEXT,
		  colors_json     TEXT,
		  chakra          TEXT,
		  origin          TEXT,
		  element         TEXT,
		  updated_at      INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_crystals_chakra
		ON crystals(chakra);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("migration 2 failed: %w", err)
		}
		if err := SetUserVersion(db, 2); err != nil {
			return err
		}
	}

	// Future migrations go here:
	// if version < 3 { ... }

	return nil
}

// verifyWALMode checks that WAL mode is active (set via connection string).
func verifyWALMode(db *sql.DB) error {
	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		return fmt.Errorf("failed to verify journal mode: %w", err)
	}
	if journalMode != "wal" {
		return fmt.Errorf("expected WAL mode, got %s", journalMode)
	}
	return nil
}

// GetUserVersion returns the current schema version (user_version pragma).
func GetUserVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get user_version: %w", err)
	}
	return version, nil
}

// SetUserVersion sets the schema version (user_version pragma).
func SetUserVersion(db *sql.DB, version int) error {
	_, err := db.Exec(fmt.Sprintf("PRAGMA user_version=%d", version))
	if err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}
