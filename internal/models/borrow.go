package models

import "time"

// BorrowRecord represents a row of the borrow ledger.
// ReturnedAt == nil marks the record as active.
type BorrowRecord struct {
	ID                 int64      `json:"id" db:"id"`                                  // Primary key
	BookID             *int64     `json:"bookId" db:"book_id"`                         // Borrowed book, nullable
	BorrowedByUserID   int64      `json:"borrowedByUserId" db:"borrowed_by_user_id"`   // Borrower
	BorrowedByUsername string     `json:"borrowedByUsername,omitempty" db:"borrowed_by_username"`
	IssuedByUserID     int64      `json:"issuedByUserId" db:"issued_by_user_id"` // Admin who issued the book
	IssuedByUsername   string     `json:"issuedByUsername,omitempty" db:"issued_by_username"`
	BorrowedAt         time.Time  `json:"borrowedAt" db:"borrowed_at"`
	IssuedAt           time.Time  `json:"issuedAt" db:"issued_at"`
	DueAt              *time.Time `json:"dueAt" db:"due_at"`
	ReturnedAt         *time.Time `json:"returnedAt" db:"returned_at"`
}

// IsActive reports whether the book has not been returned yet.
func (r BorrowRecord) IsActive() bool {
	return r.ReturnedAt == nil
}

// IsOverdue reports whether the record is active and past its due date at now.
func (r BorrowRecord) IsOverdue(now time.Time) bool {
	return r.IsActive() && r.DueAt != nil && r.DueAt.Before(now)
}

// BorrowRequest represents the JSON body for issuing a book
// swagger:model BorrowRequest
type BorrowRequest struct {
	// Book to borrow
	// required: true
	// example: 1
	BookID int64 `json:"bookId" validate:"required,gt=0"`

	// Borrowing user
	// required: true
	// example: 2
	BorrowedByUserID int64 `json:"borrowedByUserId" validate:"required,gt=0"`

	// Optional due date (RFC 3339)
	// example: 2026-11-01T00:00:00Z
	DueAt *time.Time `json:"dueAt,omitempty"`
}

// ReturnRequest represents the JSON body for returning a book
// swagger:model ReturnRequest
type ReturnRequest struct {
	// required: true
	// example: 1
	BookID int64 `json:"bookId" validate:"required,gt=0"`
}

// OverdueBorrow is a read row of the overdue report.
type OverdueBorrow struct {
	BorrowID           int64     `json:"borrowId" db:"borrow_id"`
	BookID             *int64    `json:"bookId" db:"book_id"`
	BookTitle          *string   `json:"bookTitle" db:"book_title"`
	ISBN               *string   `json:"isbn" db:"isbn"`
	BorrowedByUserID   int64     `json:"borrowedByUserId" db:"borrowed_by_user_id"`
	BorrowedByUsername string    `json:"borrowedByUsername" db:"borrowed_by_username"`
	BorrowedAt         time.Time `json:"borrowedAt" db:"borrowed_at"`
	DueAt              time.Time `json:"dueAt" db:"due_at"`
	DaysOverdue        int       `json:"daysOverdue" db:"-"`
}

// OverdueFilter narrows the overdue report.
type OverdueFilter struct {
	PageNumber int
	PageSize   int
	Search     string
	UserID     *int64
}

// OverdueCountResponse is the body of the overdue counter endpoint
// swagger:model OverdueCountResponse
type OverdueCountResponse struct {
	// example: 3
	TotalOverdue int `json:"totalOverdue"`
}
