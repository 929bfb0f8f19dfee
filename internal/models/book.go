package models

import "time"

// Book represents a catalog row together with its derived availability.
// IsAvailable is never persisted; it is resolved from the borrow ledger on read.
type Book struct {
	ID              int64      `json:"id" db:"id"`                                        // Primary key
	Title           string     `json:"title" db:"title"`                                  // Book title
	Author          string     `json:"author" db:"author"`                                // Author name
	Genre           string     `json:"genre" db:"genre"`                                  // Genre label
	PublicationYear int        `json:"publicationYear" db:"publication_year"`             // Year of publication
	ISBN            string     `json:"isbn" db:"isbn"`                                    // Unique across all books, deleted ones included
	Price           float64    `json:"price" db:"price"`                                  // Price with two decimal places
	IsDeleted       bool       `json:"isDeleted" db:"is_deleted"`                         // Soft-delete flag
	DeletedAt       *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`               // When the book was soft-deleted
	DeletedByUserID *int64     `json:"deletedByUserId,omitempty" db:"deleted_by_user_id"` // Admin who soft-deleted the book
	IsAvailable     bool       `json:"isAvailable" db:"-"`                                // Derived: not deleted and not borrowed
}

// BookInput is the JSON body for creating or updating a book.
// swagger:model BookInput
type BookInput struct {
	// required: true
	// example: Clean Code
	Title string `json:"title" validate:"required,max=200"`

	// required: true
	// example: Robert C. Martin
	Author string `json:"author" validate:"required,max=150"`

	// required: true
	// example: Programming
	Genre string `json:"genre" validate:"required,max=80"`

	// example: 2008
	PublicationYear int `json:"publicationYear" validate:"gte=0,lte=3000"`

	// required: true
	// example: 9780132350884
	ISBN string `json:"isbn" validate:"required,max=20"`

	// example: 40.00
	Price float64 `json:"price" validate:"gte=0,lte=999999"`
}

// BookFilter narrows a catalog listing. Nil pointers mean "no filter".
type BookFilter struct {
	PageNumber  int
	PageSize    int
	Search      string
	Genre       string
	YearFrom    *int
	YearTo      *int
	MinPrice    *float64
	MaxPrice    *float64
	IsAvailable *bool
	IsDeleted   *bool
}
