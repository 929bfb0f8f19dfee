package models

import "errors"

// Storage-level conflicts. Repositories translate constraint violations into
// these values so services never inspect driver errors.
var (
	ErrActiveBorrowConflict = errors.New("book already has an active borrow record")
	ErrBorrowNotActive      = errors.New("borrow record is not active")
	ErrISBNConflict         = errors.New("isbn already taken")
	ErrUsernameConflict     = errors.New("username already taken")
)
