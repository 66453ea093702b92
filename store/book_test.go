package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/kevinaaaquil/bookshelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, db *DB, ids ...string) {
	t.Helper()
	for _, id := range ids {
		db.InsertBook(models.Book{ID: id, Name: "Book " + id})
	}
}

func ids(books []models.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestDB_InsertKeepsOrder(t *testing.T) {
	db := NewMemory()
	seed(t, db, "c", "a", "b")

	assert.Equal(t, []string{"c", "a", "b"}, ids(db.AllBooks()))
	assert.Equal(t, 3, db.Count())
}

func TestDB_AllBooksReturnsCopy(t *testing.T) {
	db := NewMemory()
	seed(t, db, "a")

	books := db.AllBooks()
	books[0].Name = "mutated"

	stored, err := db.BookByID("a")
	require.NoError(t, err)
	assert.Equal(t, "Book a", stored.Name)
}

func TestDB_EmptyStore(t *testing.T) {
	db := NewMemory()
	books := db.AllBooks()
	assert.NotNil(t, books)
	assert.Empty(t, books)
	assert.False(t, db.HasBook("missing"))
}

func TestDB_BookByID(t *testing.T) {
	db := NewMemory()
	seed(t, db, "a", "b")

	t.Run("found", func(t *testing.T) {
		book, err := db.BookByID("b")
		require.NoError(t, err)
		assert.Equal(t, "Book b", book.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := db.BookByID("zzz")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDB_UpdateBook(t *testing.T) {
	t.Run("replaces in place", func(t *testing.T) {
		db := NewMemory()
		seed(t, db, "a", "b", "c")

		err := db.UpdateBook("b", func(b *models.Book) {
			b.Name = "renamed"
			b.ID = "hijacked"
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b", "c"}, ids(db.AllBooks()))
		book, err := db.BookByID("b")
		require.NoError(t, err)
		assert.Equal(t, "renamed", book.Name)
	})

	t.Run("missing id leaves store untouched", func(t *testing.T) {
		db := NewMemory()
		seed(t, db, "a")

		called := false
		err := db.UpdateBook("zzz", func(*models.Book) { called = true })
		assert.ErrorIs(t, err, ErrNotFound)
		assert.False(t, called)
	})
}

func TestDB_DeleteBook(t *testing.T) {
	t.Run("preserves relative order", func(t *testing.T) {
		db := NewMemory()
		seed(t, db, "a", "b", "c", "d")

		require.NoError(t, db.DeleteBook("b"))
		assert.Equal(t, []string{"a", "c", "d"}, ids(db.AllBooks()))
		assert.False(t, db.HasBook("b"))

		require.NoError(t, db.DeleteBook("d"))
		assert.Equal(t, []string{"a", "c"}, ids(db.AllBooks()))
	})

	t.Run("missing id", func(t *testing.T) {
		db := NewMemory()
		seed(t, db, "a")

		assert.ErrorIs(t, db.DeleteBook("zzz"), ErrNotFound)
		assert.Equal(t, 1, db.Count())
	})
}

func TestDB_ConcurrentWriters(t *testing.T) {
	db := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("book-%d", i)
			db.InsertBook(models.Book{ID: id})
			_ = db.UpdateBook(id, func(b *models.Book) { b.ReadPage = i })
			_ = db.AllBooks()
			if i%2 == 0 {
				_ = db.DeleteBook(id)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 25, db.Count())
}
