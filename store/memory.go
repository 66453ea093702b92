package store

import (
	"errors"
	"log"
	"sync"

	"github.com/kevinaaaquil/bookshelf/models"
)

var ErrNotFound = errors.New("store: book not found")

// DB keeps books in insertion order for the lifetime of the process. Every exported method is one critical section.
type DB struct {
	mu    sync.RWMutex
	books []models.Book
}

func NewMemory() *DB {
	log.Println("Using in-memory book store")
	return &DB{books: make([]models.Book, 0)}
}

// indexOf returns the position of the first book with id, or -1. Caller must hold mu.
func (db *DB) indexOf(id string) int {
	for i := range db.books {
		if db.books[i].ID == id {
			return i
		}
	}
	return -1
}

// removeAt deletes the element at i and shifts the tail left. Caller must hold mu for writing.
func (db *DB) removeAt(i int) {
	copy(db.books[i:], db.books[i+1:])
	db.books[len(db.books)-1] = models.Book{}
	db.books = db.books[:len(db.books)-1]
}

// replaceAt overwrites the element at i. Caller must hold mu for writing.
func (db *DB) replaceAt(i int, book models.Book) {
	db.books[i] = book
}
