package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/sbilibin2017/gw-library/internal/services"
)

//go:generate mockgen -source=borrow.go -destination=borrow_mock.go -package=handlers

// BorrowWorkflow defines the issue/return operations used by the borrow handlers.
type BorrowWorkflow interface {
	Borrow(ctx context.Context, bookID, borrowedBy, issuedBy int64, dueAt *time.Time) (*models.BorrowRecord, error)
	Return(ctx context.Context, bookID, issuedBy int64) error
	ListActive(ctx context.Context) ([]models.BorrowRecord, error)
}

// NewBorrowHandler returns an HTTP handler that issues a book to a user.
// The authenticated admin is recorded as the issuer.
// @Summary Borrow book
// @Tags borrow
// @Accept json
// @Produce json
// @Param borrowRequest body models.BorrowRequest true "Borrow request"
// @Success 200 {object} models.BorrowRecord
// @Failure 400 {object} models.MessageResponse "This book is already borrowed."
// @Failure 403 {object} models.MessageResponse
// @Router /borrow [post]
// @Security BearerAuth
func NewBorrowHandler(svc BorrowWorkflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BorrowRequest
		if !decodeBody(w, r, &req) {
			return
		}

		rec, err := svc.Borrow(r.Context(), req.BookID, req.BorrowedByUserID, callerID(r.Context()), req.DueAt)
		if err != nil {
			// the book is a body field here, not the addressed resource
			if errors.Is(err, services.ErrBookNotFound) {
				writeMessage(w, http.StatusBadRequest, msgBookNotFound)
				return
			}
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

// NewReturnHandler returns an HTTP handler that closes the active borrow of a book.
// @Summary Return book
// @Tags borrow
// @Accept json
// @Param returnRequest body models.ReturnRequest true "Return request"
// @Success 204
// @Failure 400 {object} models.MessageResponse "Active borrow record not found for this book."
// @Router /return [post]
// @Security BearerAuth
func NewReturnHandler(svc BorrowWorkflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ReturnRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := svc.Return(r.Context(), req.BookID, callerID(r.Context())); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewActiveBorrowsHandler returns an HTTP handler listing books currently on loan.
// @Summary Active borrows
// @Tags borrow
// @Produce json
// @Success 200 {array} models.BorrowRecord
// @Router /active [get]
// @Security BearerAuth
func NewActiveBorrowsHandler(svc BorrowWorkflow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.ListActive(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if records == nil {
			records = []models.BorrowRecord{}
		}

		writeJSON(w, http.StatusOK, records)
	}
}
