package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/sbilibin2017/gw-library/internal/services"
)

const (
	msgInvalidBody    = "Invalid request body."
	msgInvalidQuery   = "Invalid query parameter."
	msgInternalError  = "Internal server error"
	msgUserCreated    = "User created successfully."
	msgInvalidLogin   = "Invalid username or password."
	msgTooManyLogins  = "Too many failed login attempts. Please try again later."
	msgBookNotFound   = "Book not found."
	msgNotBorrowed    = "Active borrow record not found for this book."
	msgAlreadyBorrow  = "This book is already borrowed."
	msgOverdueBlocked = "User has overdue books. Please return overdue books before borrowing another."
)

var validate = validator.New()

// serviceError maps a service sentinel to an HTTP status and message.
type serviceError struct {
	err     error
	status  int
	message string
}

// serviceErrors is checked in order with errors.Is.
var serviceErrors = []serviceError{
	{services.ErrBookNotFound, http.StatusNotFound, msgBookNotFound},
	{services.ErrISBNExists, http.StatusBadRequest, "ISBN already exists."},
	{services.ErrISBNDeleted, http.StatusBadRequest, "This ISBN exists but the book is deleted. Please restore it instead."},
	{services.ErrBookNotDeleted, http.StatusBadRequest, "Book is not deleted."},
	{services.ErrBorrowerNotFound, http.StatusBadRequest, "Borrower user not found."},
	{services.ErrIssuerNotFound, http.StatusBadRequest, "Issuer user not found."},
	{services.ErrAlreadyBorrowed, http.StatusBadRequest, msgAlreadyBorrow},
	{services.ErrBorrowerHasOverdue, http.StatusBadRequest, msgOverdueBlocked},
	{services.ErrActiveBorrowNotFound, http.StatusBadRequest, msgNotBorrowed},
	{services.ErrUserAlreadyExists, http.StatusBadRequest, "Username already exists."},
	{services.ErrInvalidRole, http.StatusBadRequest, "Role must be Admin or User."},
	{services.ErrInvalidCredentials, http.StatusUnauthorized, msgInvalidLogin},
	{services.ErrTooManyAttempts, http.StatusTooManyRequests, msgTooManyLogins},
}

// writeServiceError writes the mapped response for err, or 500 for anything unknown.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			writeMessage(w, se.status, se.message)
			return
		}
	}

	logger.Log.Errorw("internal server error", "method", r.Method, "uri", r.RequestURI, "err", err)
	writeMessage(w, http.StatusInternalServerError, msgInternalError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.MessageResponse{Message: message})
}

// decodeBody decodes and validates a JSON request body. On failure it writes
// a 400 response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeMessage(w, http.StatusBadRequest, "Invalid field: "+verrs[0].Field()+".")
			return false
		}
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryParser accumulates the first parse error over a series of optional parameters.
type queryParser struct {
	r   *http.Request
	err error
}

func (q *queryParser) raw(key string) string {
	return q.r.URL.Query().Get(key)
}

func (q *queryParser) number(key string) int {
	v := q.intPtr(key)
	if v == nil {
		return 0
	}
	return *v
}

func (q *queryParser) intPtr(key string) *int {
	raw := q.raw(key)
	if raw == "" || q.err != nil {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.err = err
		return nil
	}
	return &v
}

func (q *queryParser) int64Ptr(key string) *int64 {
	raw := q.raw(key)
	if raw == "" || q.err != nil {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		q.err = err
		return nil
	}
	return &v
}

func (q *queryParser) floatPtr(key string) *float64 {
	raw := q.raw(key)
	if raw == "" || q.err != nil {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		q.err = err
		return nil
	}
	return &v
}

func (q *queryParser) boolPtr(key string) *bool {
	raw := q.raw(key)
	if raw == "" || q.err != nil {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		q.err = err
		return nil
	}
	return &v
}
