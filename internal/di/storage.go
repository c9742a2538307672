package di

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goliatone/go-artia/internal/contact"
	"github.com/goliatone/go-artia/internal/runtimeconfig"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// OpenDB opens the bun database described by cfg. The memory driver has no
// database and returns nil.
func OpenDB(cfg runtimeconfig.StorageConfig) (*bun.DB, error) {
	switch driver := runtimeconfig.NormalizeDriver(cfg.Driver); driver {
	case runtimeconfig.DriverMemory:
		return nil, nil
	case runtimeconfig.DriverSQLite:
		sqldb, err := sql.Open("sqlite3", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("di: open sqlite: %w", err)
		}
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	case runtimeconfig.DriverPostgres:
		sqldb, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("di: open postgres: %w", err)
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrStorageDriverUnknown, driver)
	}
}

// Migrate creates the tables owned by the site runtime when missing.
func Migrate(ctx context.Context, db *bun.DB) error {
	if db == nil {
		return nil
	}
	models := []any{
		(*contact.Submission)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("di: create table for %T: %w", model, err)
		}
	}
	return nil
}

func (c *Container) configureStorage() error {
	if c.bunDB == nil {
		db, err := OpenDB(c.Config.Storage)
		if err != nil {
			return err
		}
		if db == nil {
			return nil
		}
		c.bunDB = db
		c.ownsDB = true
	}
	return Migrate(context.Background(), c.bunDB)
}
