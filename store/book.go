package store

import (
	"github.com/kevinaaaquil/bookshelf/models"
)

func (db *DB) InsertBook(book models.Book) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.books = append(db.books, book)
}

// HasBook reports whether a book with id is stored.
func (db *DB) HasBook(id string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.indexOf(id) != -1
}

// AllBooks returns a copy of every book in insertion order.
func (db *DB) AllBooks() []models.Book {
	db.mu.RLock()
	defer db.mu.RUnlock()
	books := make([]models.Book, len(db.books))
	copy(books, db.books)
	return books
}

func (db *DB) BookByID(id string) (models.Book, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	i := db.indexOf(id)
	if i == -1 {
		return models.Book{}, ErrNotFound
	}
	return db.books[i], nil
}

// UpdateBook applies fn to a copy of the stored book and writes the result back in place.
// ID and insertion position are kept regardless of what fn does.
func (db *DB) UpdateBook(id string, fn func(*models.Book)) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	i := db.indexOf(id)
	if i == -1 {
		return ErrNotFound
	}
	book := db.books[i]
	fn(&book)
	book.ID = id
	db.replaceAt(i, book)
	return nil
}

// DeleteBook removes a book by ID. Remaining books keep their relative order.
func (db *DB) DeleteBook(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	i := db.indexOf(id)
	if i == -1 {
		return ErrNotFound
	}
	db.removeAt(i)
	return nil
}

func (db *DB) Count() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.books)
}
