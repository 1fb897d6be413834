package book

import (
	"context"
)

//go:generate mockgen -destination=mock_store.go -package=book bookcatalog/internal/book Store

// Store defines the contract for book persistence.
type Store interface {
	Insert(ctx context.Context, b *Book) (string, error)
	FindAll(ctx context.Context) ([]Book, error)
	FindByID(ctx context.Context, id string) (Book, error)
	Save(ctx context.Context, b Book) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
	ValidID(id string) bool
	Ping(ctx context.Context) error
}
