package book

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepo keeps books in process memory. Nothing survives a restart.
type MemoryRepo struct {
	mu    sync.RWMutex
	books map[string]Book
	order []string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{books: make(map[string]Book)}
}

func (r *MemoryRepo) Insert(_ context.Context, b *Book) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = NewID()
	b.Comments = nonNil(b.Comments)
	b.CommentCount = len(b.Comments)
	r.books[b.ID] = clone(*b)
	r.order = append(r.order, b.ID)
	return b.ID, nil
}

func (r *MemoryRepo) FindAll(_ context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.books[id]))
	}
	return out, nil
}

func (r *MemoryRepo) FindByID(_ context.Context, id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return clone(b), nil
}

func (r *MemoryRepo) Save(_ context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[b.ID]; !ok {
		return ErrNotFound
	}
	r.books[b.ID] = clone(b)
	return nil
}

func (r *MemoryRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return false, nil
	}
	delete(r.books, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return true, nil
}

func (r *MemoryRepo) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.books))
	r.books = make(map[string]Book)
	r.order = nil
	return n, nil
}

func (r *MemoryRepo) ValidID(id string) bool { return ValidID(id) }

func (r *MemoryRepo) Ping(context.Context) error { return nil }

func clone(b Book) Book {
	b.Comments = append([]string{}, b.Comments...)
	return b
}
