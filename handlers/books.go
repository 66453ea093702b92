package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kevinaaaquil/bookshelf/models"
	"github.com/kevinaaaquil/bookshelf/service"
)

const msgInvalidPayload = "Invalid request payload"

type BooksHandler struct {
	Books *service.BookService
}

type AddBookData struct {
	BookID string `json:"bookId"`
}

type ListBooksData struct {
	Books []models.BookSummary `json:"books"`
}

type GetBookData struct {
	Book models.Book `json:"book"`
}

func decodePayload(r *http.Request) (models.BookPayload, error) {
	var p models.BookPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return models.BookPayload{}, err
	}
	return p, nil
}

// writeError maps service errors onto status codes: validation 400, not found 404, everything else 500.
func writeError(w http.ResponseWriter, op string, err error) {
	var verr *service.ValidationError
	var nf *service.NotFoundError
	var ierr *service.InternalError
	switch {
	case errors.As(err, &verr):
		writeFail(w, http.StatusBadRequest, verr.Message)
	case errors.As(err, &nf):
		writeFail(w, http.StatusNotFound, nf.Message)
	case errors.As(err, &ierr):
		log.Printf("%s: %v", op, err)
		writeFail(w, http.StatusInternalServerError, ierr.Message)
	default:
		log.Printf("%s: %v", op, err)
		writeFail(w, http.StatusInternalServerError, "internal server error")
	}
}

// Add handles POST /books.
func (h *BooksHandler) Add(w http.ResponseWriter, r *http.Request) {
	p, err := decodePayload(r)
	if err != nil {
		writeFail(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}
	id, err := h.Books.Add(p)
	if err != nil {
		writeError(w, "add book", err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Book added successfully", AddBookData{BookID: id})
}

// List handles GET /books?name=&reading=&finished=. A parameter counts as supplied when its key is present.
func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	param := func(key string) *string {
		if !q.Has(key) {
			return nil
		}
		v := q.Get(key)
		return &v
	}
	books := h.Books.List(service.ListFilter{
		Name:     param("name"),
		Reading:  param("reading"),
		Finished: param("finished"),
	})
	writeSuccess(w, http.StatusOK, "", ListBooksData{Books: books})
}

func (h *BooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.Books.Get(chi.URLParam(r, "bookId"))
	if err != nil {
		writeError(w, "get book", err)
		return
	}
	writeSuccess(w, http.StatusOK, "", GetBookData{Book: book})
}

// Edit handles PUT /books/{bookId}. Payload problems are reported before the id is resolved.
func (h *BooksHandler) Edit(w http.ResponseWriter, r *http.Request) {
	p, err := decodePayload(r)
	if err != nil {
		writeFail(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}
	if err := h.Books.Edit(chi.URLParam(r, "bookId"), p); err != nil {
		writeError(w, "edit book", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Book updated successfully", nil)
}

func (h *BooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Books.Delete(chi.URLParam(r, "bookId")); err != nil {
		writeError(w, "delete book", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Book deleted successfully", nil)
}
