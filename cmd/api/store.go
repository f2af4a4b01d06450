package main

import (
	"context"
	"fmt"
	"time"

	"employeeapi/internal/config"
	"employeeapi/internal/database"
	"employeeapi/internal/database/migration"
	handlers "employeeapi/internal/http/handler"
	"employeeapi/internal/repository"
	"employeeapi/internal/repository/objectstore"
	"employeeapi/internal/repository/postgres"
	"employeeapi/internal/repository/sqlite"
	"employeeapi/internal/storage"
)

// store bundles the selected backend: the repository used by the service,
// the pinger used by /health and a release hook.
type store struct {
	repo   repository.EmployeeRepository
	pinger handlers.Pinger
	close  func() error
}

func openStore(ctx context.Context, cfg *config.AppConfig, loc *time.Location) (*store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, migration.DialectPostgres, loc, cfg.Database.Host); err != nil {
			db.Close()
			return nil, err
		}
		return &store{repo: postgres.NewEmployeePostgres(db), pinger: db, close: db.Close}, nil

	case config.StoreDriverSQLite:
		db, err := database.NewSQLite(cfg.SQLite)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, migration.DialectSQLite, loc, cfg.SQLite.Path); err != nil {
			db.Close()
			return nil, err
		}
		return &store{repo: sqlite.NewEmployeeSQLite(db), pinger: db, close: db.Close}, nil

	case config.StoreDriverMinIO:
		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("initialize object storage: %w", err)
		}
		return &store{
			repo:   objectstore.NewEmployeeObjectStore(objStore),
			pinger: objStore,
			close:  func() error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
