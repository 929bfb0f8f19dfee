package models

// Paging defaults shared by every paged listing.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a single page of a listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
}

// NormalizePaging floors the page number at 1 and bounds the page size to
// [1, MaxPageSize], substituting DefaultPageSize for non-positive sizes.
func NormalizePaging(pageNumber, pageSize int) (int, int) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return pageNumber, pageSize
}

// Offset returns the number of rows to skip for a normalized page.
func Offset(pageNumber, pageSize int) int {
	return (pageNumber - 1) * pageSize
}
