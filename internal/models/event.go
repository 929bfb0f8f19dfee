package models

import "time"

// Ledger event types published to Kafka.
const (
	BorrowEventBorrowed = "borrowed"
	BorrowEventReturned = "returned"
)

// BorrowEvent describes a change of the borrow ledger.
type BorrowEvent struct {
	EventID          string     `json:"eventId"`          // Unique event identifier
	Type             string     `json:"type"`             // "borrowed" or "returned"
	RecordID         int64      `json:"recordId"`         // Borrow record identifier
	BookID           *int64     `json:"bookId"`           // Book identifier, nullable
	BorrowedByUserID int64      `json:"borrowedByUserId"` // Borrower
	IssuedByUserID   int64      `json:"issuedByUserId"`   // Admin performing the operation
	DueAt            *time.Time `json:"dueAt,omitempty"`  // Due date if any
	OccurredAt       time.Time  `json:"occurredAt"`       // When the change happened
}
