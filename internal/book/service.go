package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Service provides the book catalog operations.
type Service struct {
	store Store
}

// NewService creates a new book service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns every book in store order.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	books, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find all books: %w", err)
	}
	out := make([]Summary, 0, len(books))
	for _, b := range books {
		out = append(out, b.Summary())
	}
	return out, nil
}

// Create persists a new book with an empty comment list.
func (s *Service) Create(ctx context.Context, title string) (Created, error) {
	if title == "" {
		return Created{}, ErrMissingTitle
	}
	b := New(title)
	id, err := s.store.Insert(ctx, &b)
	if err != nil {
		return Created{}, fmt.Errorf("insert book: %w", err)
	}
	return Created{Title: b.Title, ID: id}, nil
}

// DeleteAll removes every book, however many exist.
func (s *Service) DeleteAll(ctx context.Context) (string, error) {
	if _, err := s.store.DeleteAll(ctx); err != nil {
		return "", fmt.Errorf("delete all books: %w", err)
	}
	return MsgDeleteAll, nil
}

// Get returns a single book. Malformed and unknown identifiers both yield ErrNoBook.
func (s *Service) Get(ctx context.Context, id string) (Detail, error) {
	b, err := s.find(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	return b.Detail(), nil
}

// AddComment appends comment to the book and returns the updated record.
//
// The read and the write are separate store calls; two concurrent appends to
// the same book can overwrite each other.
func (s *Service) AddComment(ctx context.Context, id, comment string) (Summary, error) {
	if comment == "" {
		return Summary{}, ErrMissingComment
	}
	b, err := s.find(ctx, id)
	if err != nil {
		return Summary{}, err
	}
	b.AddComment(comment)
	if err := s.store.Save(ctx, b); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Summary{}, ErrNoBook
		}
		return Summary{}, fmt.Errorf("save book %s: %w", id, err)
	}
	return b.Summary(), nil
}

// Delete removes a single book.
//
// Stores hold identifiers in lower case, so lookups fold the case of id first.
func (s *Service) Delete(ctx context.Context, id string) (string, error) {
	if !s.store.ValidID(id) {
		return "", ErrNoBook
	}
	id = strings.ToLower(id)
	removed, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("delete book %s: %w", id, err)
	}
	if !removed {
		return "", ErrNoBook
	}
	return MsgDeleted, nil
}

// Ping checks that the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) find(ctx context.Context, id string) (Book, error) {
	if !s.store.ValidID(id) {
		return Book{}, ErrNoBook
	}
	id = strings.ToLower(id)
	b, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Book{}, ErrNoBook
		}
		return Book{}, fmt.Errorf("find book %s: %w", id, err)
	}
	return b, nil
}
