package db

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"todo-lists-api/pkg/logger"
)

// Migrate applies the .sql files found under the directory named after the
// connection's dialect ("postgres" or "sqlite") in fsys. Applied files are
// recorded in schema_migrations and skipped on later runs.
func Migrate(db *gorm.DB, fsys fs.FS, log logger.Logger) error {
	dialect := db.Dialector.Name()

	files, err := migrationFiles(fsys, dialect)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Warn("db: no migrations found", "dialect", dialect)
		return nil
	}

	if err := ensureSchemaMigrations(db); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	for _, name := range files {
		applied, err := isMigrationApplied(db, name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		contents, err := fs.ReadFile(fsys, path.Join(dialect, name))
		if err != nil {
			return err
		}

		statements := splitStatements(string(contents))
		if len(statements) == 0 {
			continue
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			for _, stmt := range statements {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return recordMigration(tx, name)
		})
		if err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		log.Info("db: migration applied", "file", name, "dialect", dialect)
	}

	return nil
}

func migrationFiles(fsys fs.FS, dialect string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dialect)
	if err != nil {
		return nil, fmt.Errorf("read migrations for %s: %w", dialect, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

// splitStatements breaks a migration file on semicolons. Migration files
// must not contain semicolons inside literals or function bodies.
func splitStatements(contents string) []string {
	var statements []string
	for _, part := range strings.Split(contents, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func ensureSchemaMigrations(db *gorm.DB) error {
	return db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`).Error
}

func isMigrationApplied(db *gorm.DB, name string) (bool, error) {
	var count int64
	if err := db.Raw("SELECT COUNT(1) FROM schema_migrations WHERE filename = ?", name).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func recordMigration(db *gorm.DB, name string) error {
	return db.Exec("INSERT INTO schema_migrations (filename, applied_at) VALUES (?, ?)", name, time.Now().UTC()).Error
}
