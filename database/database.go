// Package database contains the logic for establishing connections to
// the PostgreSQL database.
//
// It handles:
//   - building a DSN from config
//   - creating a pgx connection pool (pgxpool)
//   - wiring query tracing/logging (pgx tracelog) in local runs
//   - failing loudly when the initial connection cannot be made
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/Haukuraj/sqlverk/config"
	"github.com/Haukuraj/sqlverk/errs"
	loggerConfig "github.com/Haukuraj/sqlverk/logger"
)

// Database wraps the pgx connection pool and a logger.
//
// Pool is the shared connection pool. log is used for lifecycle logs
// (connect/close).
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// DatabasePingTimeout is the number of seconds to wait for the startup
// ping before considering the database unreachable.
const DatabasePingTimeout = 10

// buildDSN assembles the postgres connection string from config.
//
// The host and port are joined safely (IPv6 gets brackets) and the
// password is URL-escaped so characters like '@' or ':' can't break
// the URL structure.
func buildDSN(cfg *config.DatabaseConfig) string {
	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	encodedPassword := url.QueryEscape(cfg.Password)

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.User,
		encodedPassword,
		hostPort,
		cfg.Name,
		cfg.SSLMode,
	)
}

// newSQLTracer builds the tracelog tracer that logs every statement
// through the pgx-tagged zerolog logger. pgx-zerolog takes the logger
// by value.
func newSQLTracer(level zerolog.Level) *tracelog.TraceLog {
	return &tracelog.TraceLog{
		Logger:   pgxzero.NewLogger(*loggerConfig.NewPgxLogger(level)),
		LogLevel: loggerConfig.GetPgxTraceLogLevel(level),
	}
}

// New creates a PostgreSQL connection pool.
//
// Behavior:
//   - Build the DSN and parse it into a pgxpool config
//   - Apply pool sizing from config when set
//   - In local env: attach a SQL tracelogger so every statement is logged
//   - Create the pool, ping it, and return Database
//
// Construction fails with a connection error if the database cannot be
// reached; the failure is never swallowed.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(buildDSN(&cfg.Database))
	if err != nil {
		return nil, errs.NewConnectionError("failed to parse pgx pool config", err)
	}

	if cfg.Database.MaxConns > 0 {
		pgxPoolConfig.MaxConns = int32(cfg.Database.MaxConns)
	}
	if cfg.Database.MinConns > 0 {
		pgxPoolConfig.MinConns = int32(cfg.Database.MinConns)
	}

	// In local env, enable SQL query logging using pgx tracelog +
	// zerolog. Too noisy for anything else.
	if cfg.Primary.Env == "local" {
		pgxPoolConfig.ConnConfig.Tracer = newSQLTracer(logger.GetLevel())
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, errs.NewConnectionError("failed to create pgx pool", err)
	}

	database := &Database{
		Pool: pool,
		log:  logger,
	}

	// Ping with a timeout so startup fails fast if the DB is down.
	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errs.NewConnectionError("failed to ping database", err)
	}

	logger.Info().Msg("connected to the database")

	return database, nil
}

// Close closes the database connection pool.
//
// Callers are expected to `defer db.Close()` right after New succeeds,
// so the pool is released on every exit path.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
