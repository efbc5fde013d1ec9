// Package database wraps the PostgreSQL connection handles shared by all
// bounded contexts: a pgx pool for reads and a stdlib *sql.DB (pgx driver)
// for transactional writes, which lets Watermill's SQL publisher join the
// same transaction as business writes.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ghuser/audioguide/pkg/logger"
)

// Database holds the shared PostgreSQL connection handles.
type Database struct {
	pool *pgxpool.Pool
	sqdb *sql.DB
	log  logger.Logger
}

// NewPool connects to PostgreSQL at dbURL and verifies connectivity.
// Both handles share the same DSN; close with Close() on shutdown.
func NewPool(ctx context.Context, dbURL string, log logger.Logger) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("database: parse config: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database: new pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	sqdb, err := sql.Open("pgx", dbURL)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("database: open sql handle: %w", err)
	}
	sqdb.SetMaxOpenConns(10)
	sqdb.SetMaxIdleConns(2)

	return &Database{pool: pool, sqdb: sqdb, log: log}, nil
}

// Pool returns the pgx connection pool for read queries.
func (d *Database) Pool() *pgxpool.Pool {
	return d.pool
}

// SQL returns the stdlib handle for libraries that require *sql.DB.
func (d *Database) SQL() *sql.DB {
	return d.sqdb
}

// WithTx runs fn inside a transaction on the stdlib handle, committing on
// nil and rolling back on error or panic.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.sqdb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("database: begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			d.log.Error("database: rollback failed", "error", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("database: commit: %w", err)
	}
	return nil
}

// Ping checks database connectivity for health probes.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

// Close releases both connection handles.
func (d *Database) Close() {
	if err := d.sqdb.Close(); err != nil {
		d.log.Error("database: close sql handle", "error", err)
	}
	d.pool.Close()
}
