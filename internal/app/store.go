// Package app wires configuration into the book store and HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/platform/postgres"

	"github.com/redis/go-redis/v9"
)

// OpenStore builds the Store selected by cfg.Store.Driver. The returned close
// function releases its connections.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (book.Store, func(), error) {
	switch cfg.Store.Driver {
	case "memory":
		logger.Warn("using in-memory store, data is lost on restart")
		return book.NewMemoryRepo(), func() {}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, cfg.Store.Timeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
		}
		logger.Info("redis connection OK", "addr", cfg.Redis.Addr, "prefix", cfg.Redis.Prefix)
		return book.NewRedisRepo(client, cfg.Redis.Prefix, cfg.Store.Timeout), func() { _ = client.Close() }, nil

	case "postgres":
		pool, err := postgres.Open(ctx, cfg.Database.DSN, cfg.Store.Timeout)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("database connection OK", "dsn", postgres.RedactDSN(cfg.Database.DSN))
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, "up", logger); err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("auto migrate: %w", err)
			}
		}
		return book.NewPostgresRepo(pool, cfg.Store.Timeout), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
