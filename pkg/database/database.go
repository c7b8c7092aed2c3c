package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"manochitram/pkg/utils"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// SQLIface is the handle repositories write through.
type SQLIface interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
	Close() error

	Dialect() Dialect
	Builder() sq.StatementBuilderType
}

// DB wrapper struct
type DB struct {
	pool    *sql.DB
	dialect Dialect
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.pool.ExecContext(ctx, query, args...)
}

func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.pool.QueryRowContext(ctx, query, args...)
}

func (db *DB) PingContext(ctx context.Context) error {
	return db.pool.PingContext(ctx)
}

func (db *DB) Close() error {
	return db.pool.Close()
}

func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Builder returns a squirrel builder using the dialect's placeholder format.
func (db *DB) Builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// InitDB opens the configured backend and checks it is reachable.
func InitDB(config utils.DatabaseConfig) (SQLIface, error) {
	var (
		pool *sql.DB
		err  error
	)

	switch Dialect(config.Driver) {
	case DialectSQLite:
		pool, err = sql.Open("sqlite", config.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", config.Path, err)
		}
		// Single file, single writer. Also keeps ":memory:" on one connection.
		pool.SetMaxOpenConns(1)

	case DialectPostgres:
		connStr := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable host=%s port=%s connect_timeout=5",
			config.User, config.Password, config.Name, config.Host, config.Port)

		pool, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		pool.SetMaxOpenConns(int(config.MaxConns))
		pool.SetConnMaxLifetime(30 * time.Minute)
		pool.SetConnMaxIdleTime(5 * time.Minute)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	// Test connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := pool.PingContext(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return &DB{pool: pool, dialect: Dialect(config.Driver)}, nil
}
