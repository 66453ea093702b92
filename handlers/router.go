package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/kevinaaaquil/bookshelf/middleware"
)

type RouterOptions struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
	// Quiet disables request logging (tests).
	Quiet bool
}

func NewRouter(books *BooksHandler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.CORS(opts.AllowedOrigins))
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if !opts.Quiet {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"welcome to bookshelf."}`))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/books", func(r chi.Router) {
		r.Use(middleware.MaxBody(opts.MaxBodyBytes))
		r.Post("/", books.Add)
		r.Get("/", books.List)
		r.Get("/{bookId}", books.Get)
		r.Put("/{bookId}", books.Edit)
		r.Delete("/{bookId}", books.Delete)
	})
	return r
}
