package book

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by a Store when no book matches the identifier.
var ErrNotFound = errors.New("book not found")

// Diagnostic is a client-input problem reported to the caller as plain text
// with status 200.
type Diagnostic string

func (d Diagnostic) Error() string { return string(d) }

const (
	ErrMissingTitle   Diagnostic = "missing required field title"
	ErrMissingComment Diagnostic = "missing required field comment"
	ErrNoBook         Diagnostic = "no book exists"
)

// Plain-text results of the delete operations.
const (
	MsgDeleteAll = "complete delete successful"
	MsgDeleted   = "delete successful"
)

// Book represents a book record held by the document store.
type Book struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Comments     []string `json:"comments"`
	CommentCount int      `json:"commentcount"`
}

// New returns an unsaved book with no comments.
func New(title string) Book {
	return Book{Title: title, Comments: []string{}}
}

// AddComment appends comment and keeps CommentCount in step with Comments.
func (b *Book) AddComment(comment string) {
	b.Comments = append(b.Comments, comment)
	b.CommentCount = len(b.Comments)
}

// Summary is the full projection used by the list and add-comment responses.
type Summary struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Comments     []string `json:"comments"`
	CommentCount int      `json:"commentcount"`
}

// Detail is the single-book projection. It has no comment count.
type Detail struct {
	ID       string   `json:"_id"`
	Title    string   `json:"title"`
	Comments []string `json:"comments"`
}

// Created is returned by the create operation.
type Created struct {
	Title string `json:"title"`
	ID    string `json:"_id"`
}

func (b Book) Summary() Summary {
	return Summary{ID: b.ID, Title: b.Title, Comments: nonNil(b.Comments), CommentCount: len(b.Comments)}
}

func (b Book) Detail() Detail {
	return Detail{ID: b.ID, Title: b.Title, Comments: nonNil(b.Comments)}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ValidID reports whether s is a well-formed book identifier: a UUID in its
// canonical 36 character form.
func ValidID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// NewID generates an identifier for stores that do not generate their own.
func NewID() string {
	return uuid.NewString()
}
