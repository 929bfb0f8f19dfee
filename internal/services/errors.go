package services

import "errors"

// Catalog errors
var (
	ErrBookNotFound   = errors.New("book not found")
	ErrISBNExists     = errors.New("isbn already exists")
	ErrISBNDeleted    = errors.New("isbn belongs to a deleted book")
	ErrBookNotDeleted = errors.New("book is not deleted")
)

// Borrow workflow errors
var (
	ErrBorrowerNotFound     = errors.New("borrower user not found")
	ErrIssuerNotFound       = errors.New("issuer user not found")
	ErrAlreadyBorrowed      = errors.New("book is already borrowed")
	ErrBorrowerHasOverdue   = errors.New("borrower has overdue books")
	ErrActiveBorrowNotFound = errors.New("active borrow record not found")
)

// Auth errors
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidRole        = errors.New("role must be Admin or User")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)
