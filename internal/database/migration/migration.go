package migration

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Dialect selects the migration set and database driver.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

//go:embed migrations
var migrationsFS embed.FS

// EnsureMigrated applies every pending migration for dialect. Already
// migrated databases are left untouched. db stays open afterwards.
func EnsureMigrated(ctx context.Context, db *sql.DB, dialect Dialect, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"dialect":   dialect,
		"db_host":   dbHost,
	})

	fail := func(err error) error {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": err.Error(),
			"dialect":       dialect,
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return err
	}

	src, err := iofs.New(migrationsFS, "migrations/"+string(dialect))
	if err != nil {
		return fail(fmt.Errorf("open migration source: %w", err))
	}

	driver, release, err := newDriver(ctx, db, dialect)
	if err != nil {
		_ = src.Close()
		return fail(err)
	}
	defer release()

	m, err := migrate.NewWithInstance("iofs", src, string(dialect), driver)
	if err != nil {
		_ = src.Close()
		return fail(fmt.Errorf("create migrate instance: %w", err))
	}
	defer src.Close()

	stop := context.AfterFunc(ctx, func() {
		select {
		case m.GracefulStop <- true:
		default:
		}
	})
	defer stop()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already up to date, skipping migration",
			"dialect":     dialect,
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}
	if err != nil {
		return fail(fmt.Errorf("migrate up: %w", err))
	}

	version, _, _ := m.Version()
	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"version":     version,
		"dialect":     dialect,
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

// newDriver builds a migrate database driver that does not own db.
// The returned release func frees only what the driver borrowed.
func newDriver(ctx context.Context, db *sql.DB, dialect Dialect) (database.Driver, func(), error) {
	switch dialect {
	case DialectPostgres:
		conn, err := db.Conn(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("acquire connection: %w", err)
		}
		drv, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
		if err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("postgres migrate driver: %w", err)
		}
		return drv, func() { _ = drv.Close() }, nil
	case DialectSQLite:
		// The sqlite driver closes the *sql.DB it wraps, so it is never closed here.
		drv, err := sqlite.WithInstance(db, &sqlite.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite migrate driver: %w", err)
		}
		return drv, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported migration dialect %q", dialect)
	}
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
