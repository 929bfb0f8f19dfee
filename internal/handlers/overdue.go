package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-library/internal/models"
)

//go:generate mockgen -source=overdue.go -destination=overdue_mock.go -package=handlers

// OverdueReporter defines the overdue report queries.
type OverdueReporter interface {
	List(ctx context.Context, filter models.OverdueFilter) (*models.Page[models.OverdueBorrow], error)
	Count(ctx context.Context, userID *int64) (int, error)
}

// NewListOverdueHandler returns an HTTP handler for the paged overdue report.
// @Summary Overdue borrows
// @Description Active borrows past their due date, most recently due first.
// @Tags overdue
// @Produce json
// @Param pageNumber query int false "Page number, 1-based"
// @Param pageSize query int false "Page size, 1..100"
// @Param search query string false "Substring of title, ISBN or borrower username"
// @Param userId query int false "Borrower ID"
// @Success 200 {object} models.Page[models.OverdueBorrow]
// @Failure 400 {object} models.MessageResponse
// @Router /overdue [get]
// @Security BearerAuth
func NewListOverdueHandler(svc OverdueReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := &queryParser{r: r}
		filter := models.OverdueFilter{
			PageNumber: q.number("pageNumber"),
			PageSize:   q.number("pageSize"),
			Search:     q.raw("search"),
			UserID:     q.int64Ptr("userId"),
		}
		if q.err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidQuery)
			return
		}

		page, err := svc.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

// NewCountOverdueHandler returns an HTTP handler counting overdue borrows.
// @Summary Overdue count
// @Tags overdue
// @Produce json
// @Param userId query int false "Borrower ID"
// @Success 200 {object} models.OverdueCountResponse
// @Router /overdue/count [get]
// @Security BearerAuth
func NewCountOverdueHandler(svc OverdueReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := &queryParser{r: r}
		userID := q.int64Ptr("userId")
		if q.err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidQuery)
			return
		}

		total, err := svc.Count(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.OverdueCountResponse{TotalOverdue: total})
	}
}
