package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/techfit/techfit-backend/internal/config"
)

const (
	defaultMaxConns  = 4
	connLifetime     = 30 * time.Minute
	connIdleTime     = 5 * time.Minute
	healthCheckEvery = time.Minute
	pingTimeout      = 5 * time.Second
)

// NewPostgresPool opens the shared pgx pool every repository runs on and
// verifies connectivity before the server starts accepting requests.
func NewPostgresPool(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxDBConns
	if poolCfg.MaxConns < 1 {
		poolCfg.MaxConns = defaultMaxConns
	}
	// Keep a quarter of the pool warm so the first requests after an idle
	// period don't pay the connection setup cost.
	poolCfg.MinConns = poolCfg.MaxConns / 4
	poolCfg.MaxConnLifetime = connLifetime
	poolCfg.MaxConnIdleTime = connIdleTime
	poolCfg.HealthCheckPeriod = healthCheckEvery

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().
		Str("database", poolCfg.ConnConfig.Database).
		Int32("max_conns", poolCfg.MaxConns).
		Int32("min_conns", poolCfg.MinConns).
		Msg("PostgreSQL pool ready")

	return pool, nil
}
