// Package postgres opens the pgx pool and applies the embedded goose migrations.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"bookcatalog/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Open creates a pool and verifies it with a ping.
func Open(ctx context.Context, dsn string, pingTimeout time.Duration) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", RedactDSN(dsn), err)
	}
	return pool, nil
}

// Migrate runs a goose command ("up", "down" or "status") against the
// embedded migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool, command string, logger *slog.Logger) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	goose.SetLogger(Logger{L: logger})
	goose.SetBaseFS(db.Migrations)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.UpContext(ctx, sqlDB, db.MigrationsDir)
	case "down":
		return goose.DownContext(ctx, sqlDB, db.MigrationsDir)
	case "status":
		return goose.StatusContext(ctx, sqlDB, db.MigrationsDir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
}

// ErrMissingName is returned by CreateMigration when name is empty.
var ErrMissingName = errors.New("migration name is required")

// CreateMigration writes a new, empty SQL migration into dir on disk.
func CreateMigration(dir, name string) error {
	if name == "" {
		return ErrMissingName
	}
	goose.SetBaseFS(nil)
	return goose.Create(nil, dir, name, "sql")
}

// RedactDSN hides the credentials of a postgres URL.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}

// Logger adapts slog to goose's logger interface.
type Logger struct {
	L *slog.Logger
}

func (l Logger) Printf(format string, v ...interface{}) {
	l.L.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l Logger) Fatalf(format string, v ...interface{}) {
	l.L.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}
