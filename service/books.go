package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kevinaaaquil/bookshelf/models"
	"github.com/kevinaaaquil/bookshelf/store"
)

const (
	msgAddFailed      = "Failed to add book"
	msgUpdateFailed   = "Failed to update book"
	msgDeleteFailed   = "Failed to delete book"
	msgMissingName    = "Please fill in the book name"
	msgReadPageTooBig = "readPage cannot be greater than pageCount"
	msgNegativePages  = "pageCount and readPage must not be negative"
	msgIDNotFound     = "Id not found"
	msgBookNotFound   = "Book not found"
)

// ListFilter holds the list query parameters. A nil field was not supplied.
// Only the first supplied field in the order Name, Reading, Finished is applied.
type ListFilter struct {
	Name     *string
	Reading  *string
	Finished *string
}

// BookService implements the shelf operations on top of the in-memory store.
type BookService struct {
	DB    *store.DB
	IDs   IDGenerator
	Clock Clock
}

func NewBookService(db *store.DB, ids IDGenerator, clock Clock) *BookService {
	return &BookService{DB: db, IDs: ids, Clock: clock}
}

// validatePayload checks the payload in a fixed order and stops at the first failure.
func validatePayload(p models.BookPayload, failure string) error {
	if p.Name == nil || *p.Name == "" {
		return &ValidationError{Message: failure + ". " + msgMissingName}
	}
	pageCount, readPage := intOrZero(p.PageCount), intOrZero(p.ReadPage)
	if readPage > pageCount {
		return &ValidationError{Message: failure + ". " + msgReadPageTooBig}
	}
	if pageCount < 0 || readPage < 0 {
		return &ValidationError{Message: failure + ". " + msgNegativePages}
	}
	return nil
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// Add validates p, stores a new book and returns its id.
func (s *BookService) Add(p models.BookPayload) (string, error) {
	if err := validatePayload(p, msgAddFailed); err != nil {
		return "", err
	}
	now := FormatTimestamp(s.Clock.Now())
	book := models.Book{
		ID:         s.IDs.NewID(),
		InsertedAt: now,
		UpdatedAt:  now,
	}
	p.Apply(&book)
	s.DB.InsertBook(book)

	// Normally unreachable: InsertBook always appends.
	if !s.DB.HasBook(book.ID) {
		return "", &InternalError{Message: msgAddFailed}
	}
	return book.ID, nil
}

// List returns the summaries of the books matching f, in insertion order.
func (s *BookService) List(f ListFilter) []models.BookSummary {
	books := s.DB.AllBooks()
	match := matcherFor(f)
	out := make([]models.BookSummary, 0, len(books))
	for _, b := range books {
		if match(b) {
			out = append(out, b.Summarize())
		}
	}
	return out
}

func matcherFor(f ListFilter) func(models.Book) bool {
	switch {
	case f.Name != nil:
		needle := strings.ToLower(*f.Name)
		return func(b models.Book) bool {
			return strings.Contains(strings.ToLower(b.Name), needle)
		}
	case f.Reading != nil:
		want := *f.Reading == "1"
		return func(b models.Book) bool { return b.Reading == want }
	case f.Finished != nil:
		want := *f.Finished == "1"
		return func(b models.Book) bool { return b.Finished == want }
	default:
		return func(models.Book) bool { return true }
	}
}

func (s *BookService) Get(id string) (models.Book, error) {
	book, err := s.DB.BookByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Book{}, &NotFoundError{Message: msgBookNotFound}
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("get book %s: %w", id, err)
	}
	return book, nil
}

// Edit validates p before resolving id, so a bad payload is reported even for unknown ids.
func (s *BookService) Edit(id string, p models.BookPayload) error {
	if err := validatePayload(p, msgUpdateFailed); err != nil {
		return err
	}
	now := FormatTimestamp(s.Clock.Now())
	err := s.DB.UpdateBook(id, func(b *models.Book) {
		p.Apply(b)
		b.UpdatedAt = now
	})
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Message: msgUpdateFailed + ". " + msgIDNotFound}
	}
	if err != nil {
		return fmt.Errorf("update book %s: %w", id, err)
	}
	return nil
}

func (s *BookService) Delete(id string) error {
	err := s.DB.DeleteBook(id)
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Message: msgDeleteFailed + ". " + msgIDNotFound}
	}
	if err != nil {
		return fmt.Errorf("delete book %s: %w", id, err)
	}
	return nil
}
