package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/skillcircuit/internal/config"
)

// PostgresKV stores blobs in a single kv_blobs table through a pgx pool.
type PostgresKV struct {
	pool *pgxpool.Pool
}

// NewPostgresKV establishes a connection pool and verifies connectivity.
func NewPostgresKV(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*PostgresKV, error) {
	if cfg.DSN == "" {
		return nil, errors.New("POSTGRES_DSN required for postgres storage backend")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxIdleSec > 0 {
		poolCfg.MaxConnIdleTime = time.Duration(cfg.ConnMaxIdleSec) * time.Second
	}
	if cfg.ConnMaxLifeSec > 0 {
		poolCfg.MaxConnLifetime = time.Duration(cfg.ConnMaxLifeSec) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to postgres")
	return &PostgresKV{pool: pool}, nil
}

// Get reads the blob for key, or ErrKeyNotFound.
func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM kv_blobs WHERE key=$1`

	var value []byte
	if err := p.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set upserts the blob for key.
func (p *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	const query = `
        INSERT INTO kv_blobs (key, value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()`

	_, err := p.pool.Exec(ctx, query, key, value)
	return err
}

// Delete removes the key; absent keys are not an error.
func (p *PostgresKV) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_blobs WHERE key=$1`

	_, err := p.pool.Exec(ctx, query, key)
	return err
}

// Ping verifies pool connectivity.
func (p *PostgresKV) Ping(ctx context.Context) error {
	if p == nil || p.pool == nil {
		return errors.New("postgres pool not configured")
	}
	return p.pool.Ping(ctx)
}

// Close releases pool resources.
func (p *PostgresKV) Close() {
	if p != nil && p.pool != nil {
		p.pool.Close()
	}
}

// PoolHandle returns the underlying pgx pool for migrations.
func (p *PostgresKV) PoolHandle() *pgxpool.Pool {
	if p == nil {
		return nil
	}
	return p.pool
}
