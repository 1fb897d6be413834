package book

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Needs a database with the migrations applied.
func setupPostgres(t *testing.T) *pgxpool.Pool {
	dsn := os.Getenv("BOOKCATALOG_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("Skipping postgres test: BOOKCATALOG_TEST_DB_DSN not set")
	}
	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Skipf("Skipping postgres test: cannot connect to test database: %v", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		t.Skipf("Skipping postgres test: cannot ping test database: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

func TestPostgresRepo(t *testing.T) {
	db := setupPostgres(t)
	testStoreContract(t, NewPostgresRepo(db, 3*time.Second))
}
