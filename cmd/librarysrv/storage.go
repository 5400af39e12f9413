package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rishithapentyala/Library-Management-System/app/shared/shell/config"
	"github.com/rishithapentyala/Library-Management-System/circulation"
	"github.com/rishithapentyala/Library-Management-System/circulation/memengine"
	"github.com/rishithapentyala/Library-Management-System/circulation/sqlengine"
)

// openEngine creates the configured storage engine. The returned func releases its connections.
func openEngine(ctx context.Context, cfg config.Config, options ...sqlengine.Option) (circulation.Engine, func(), error) {
	if cfg.Storage == config.StorageMemory {
		var memOptions []memengine.Option
		if cfg.SeedCatalog {
			memOptions = append(memOptions, memengine.WithSeedData())
		}

		engine, err := memengine.New(memOptions...)
		if err != nil {
			return nil, nil, err
		}

		return engine, func() {}, nil
	}

	engine, closeFn, err := openSQLEngine(ctx, cfg, options...)
	if err != nil {
		return nil, nil, err
	}

	if err = engine.Migrate(ctx); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("migrating schema: %w", err)
	}

	if cfg.SeedCatalog {
		if err = engine.Seed(ctx); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("seeding catalog: %w", err)
		}
	}

	return engine, closeFn, nil
}

func openSQLEngine(ctx context.Context, cfg config.Config, options ...sqlengine.Option) (*sqlengine.Engine, func(), error) {
	switch cfg.Storage {
	case config.StoragePGX:
		pool, err := config.PostgresPGXPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}

		if cfg.DatabaseReplicaURL == "" {
			engine, err := sqlengine.NewEngineFromPGXPool(pool, options...)
			if err != nil {
				pool.Close()
				return nil, nil, err
			}

			return engine, pool.Close, nil
		}

		replica, err := config.PostgresPGXPool(ctx, cfg.DatabaseReplicaURL)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}

		closeFn := func() {
			replica.Close()
			pool.Close()
		}

		engine, err := sqlengine.NewEngineFromPGXPoolWithReplica(pool, replica, options...)
		if err != nil {
			closeFn()
			return nil, nil, err
		}

		return engine, closeFn, nil

	case config.StoragePostgres:
		db, err := config.PostgresSQLDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}

		engine, err := sqlengine.NewEngineFromSQLDB(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return engine, func() { _ = db.Close() }, nil

	case config.StorageSQLX:
		db, err := config.PostgresSQLX(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}

		engine, err := sqlengine.NewEngineFromSQLX(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return engine, func() { _ = db.Close() }, nil

	case config.StorageMySQL:
		db, err := config.MySQLDB(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}

		engine, err := sqlengine.NewEngineFromMySQL(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return engine, func() { _ = db.Close() }, nil
	}

	return nil, nil, errors.Join(config.ErrUnknownStorage, fmt.Errorf("storage %q", cfg.Storage))
}
