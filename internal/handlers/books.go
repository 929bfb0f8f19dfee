package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-library/internal/jwt"
	"github.com/sbilibin2017/gw-library/internal/models"
)

//go:generate mockgen -source=books.go -destination=books_mock.go -package=handlers

// BookReader defines the catalog reads used by the book handlers.
type BookReader interface {
	GetByID(ctx context.Context, id int64, includeDeleted bool) (*models.Book, error)
	List(ctx context.Context, filter models.BookFilter, includeDeleted bool) (*models.Page[models.Book], error)
}

// BookWriter defines the admin catalog operations.
type BookWriter interface {
	Create(ctx context.Context, input models.BookInput) (*models.Book, error)
	Update(ctx context.Context, id int64, input models.BookInput) error
	Delete(ctx context.Context, id, deletedBy int64) error
	Restore(ctx context.Context, id, restoredBy int64) error
}

// isAdmin reports whether the authenticated caller holds the Admin role.
func isAdmin(ctx context.Context) bool {
	claims := jwt.ClaimsFromContext(ctx)
	return claims != nil && claims.Role == models.RoleAdmin
}

func callerID(ctx context.Context) int64 {
	if claims := jwt.ClaimsFromContext(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}

// NewListBooksHandler returns an HTTP handler for the paged catalog listing.
// @Summary List books
// @Description Paged catalog listing with filters. isDeleted is honoured for admins only.
// @Tags books
// @Produce json
// @Param pageNumber query int false "Page number, 1-based"
// @Param pageSize query int false "Page size, 1..100"
// @Param search query string false "Substring of title, author or genre"
// @Param genre query string false "Exact genre, case-insensitive"
// @Param yearFrom query int false "Minimum publication year"
// @Param yearTo query int false "Maximum publication year"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param isAvailable query bool false "Availability filter"
// @Param isDeleted query bool false "Deleted filter (admin only)"
// @Success 200 {object} models.Page[models.Book]
// @Failure 400 {object} models.MessageResponse
// @Failure 401 {object} models.MessageResponse
// @Router /books [get]
// @Security BearerAuth
func NewListBooksHandler(svc BookReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := &queryParser{r: r}
		filter := models.BookFilter{
			PageNumber:  q.number("pageNumber"),
			PageSize:    q.number("pageSize"),
			Search:      q.raw("search"),
			Genre:       q.raw("genre"),
			YearFrom:    q.intPtr("yearFrom"),
			YearTo:      q.intPtr("yearTo"),
			MinPrice:    q.floatPtr("minPrice"),
			MaxPrice:    q.floatPtr("maxPrice"),
			IsAvailable: q.boolPtr("isAvailable"),
			IsDeleted:   q.boolPtr("isDeleted"),
		}
		if q.err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidQuery)
			return
		}

		page, err := svc.List(r.Context(), filter, isAdmin(r.Context()))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

// NewGetBookHandler returns an HTTP handler for a single book.
// @Summary Get book
// @Description Returns a book with its availability. Deleted books are visible to admins only.
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} models.Book
// @Failure 404 {object} models.MessageResponse "Book not found."
// @Router /books/{id} [get]
// @Security BearerAuth
func NewGetBookHandler(svc BookReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeMessage(w, http.StatusNotFound, msgBookNotFound)
			return
		}

		book, err := svc.GetByID(r.Context(), id, isAdmin(r.Context()))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, book)
	}
}

// NewCreateBookHandler returns an HTTP handler that adds a book to the catalog.
// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Param book body models.BookInput true "Book"
// @Success 201 {object} models.Book
// @Header 201 {string} Location "/books/{id}"
// @Failure 400 {object} models.MessageResponse "ISBN already exists."
// @Failure 403 {object} models.MessageResponse
// @Router /books [post]
// @Security BearerAuth
func NewCreateBookHandler(svc BookWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.BookInput
		if !decodeBody(w, r, &input) {
			return
		}

		book, err := svc.Create(r.Context(), input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/books/%d", book.ID))
		writeJSON(w, http.StatusCreated, book)
	}
}

// NewUpdateBookHandler returns an HTTP handler that edits a book.
// @Summary Update book
// @Tags books
// @Accept json
// @Param id path int true "Book ID"
// @Param book body models.BookInput true "Book"
// @Success 204
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /books/{id} [put]
// @Security BearerAuth
func NewUpdateBookHandler(svc BookWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeMessage(w, http.StatusNotFound, msgBookNotFound)
			return
		}

		var input models.BookInput
		if !decodeBody(w, r, &input) {
			return
		}

		if err := svc.Update(r.Context(), id, input); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteBookHandler returns an HTTP handler that soft-deletes a book.
// @Summary Delete book
// @Description Marks the book as deleted. Borrow history is kept.
// @Tags books
// @Param id path int true "Book ID"
// @Success 204
// @Failure 404 {object} models.MessageResponse
// @Router /books/{id} [delete]
// @Security BearerAuth
func NewDeleteBookHandler(svc BookWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeMessage(w, http.StatusNotFound, msgBookNotFound)
			return
		}

		if err := svc.Delete(r.Context(), id, callerID(r.Context())); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewRestoreBookHandler returns an HTTP handler that undoes a soft delete.
// @Summary Restore book
// @Tags books
// @Param id path int true "Book ID"
// @Success 204
// @Failure 400 {object} models.MessageResponse "Book is not deleted."
// @Failure 404 {object} models.MessageResponse
// @Router /books/{id}/restore [post]
// @Security BearerAuth
func NewRestoreBookHandler(svc BookWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeMessage(w, http.StatusNotFound, msgBookNotFound)
			return
		}

		if err := svc.Restore(r.Context(), id, callerID(r.Context())); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
