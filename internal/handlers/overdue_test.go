package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOverdueHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOverdueReporter(ctrl)
	handler := NewListOverdueHandler(mockSvc)

	tests := []struct {
		name         string
		query        string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:  "filters",
			query: "?pageNumber=1&pageSize=20&search=clean&userId=2",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), models.OverdueFilter{
					PageNumber: 1,
					PageSize:   20,
					Search:     "clean",
					UserID:     ptr(int64(2)),
				}).Return(&models.Page[models.OverdueBorrow]{
					Items:      []models.OverdueBorrow{{BorrowID: 4, DaysOverdue: 3}},
					PageNumber: 1,
					PageSize:   20,
					TotalCount: 1,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "bad user id",
			query:        "?userId=x",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/overdue"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var page models.Page[models.OverdueBorrow]
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
				assert.Equal(t, 1, page.TotalCount)
				assert.Equal(t, 3, page.Items[0].DaysOverdue)
			}
		})
	}
}

func TestCountOverdueHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOverdueReporter(ctrl)
	handler := NewCountOverdueHandler(mockSvc)

	t.Run("all borrowers", func(t *testing.T) {
		mockSvc.EXPECT().Count(gomock.Any(), nil).Return(3, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/overdue/count", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"totalOverdue":3}`, w.Body.String())
	})

	t.Run("one borrower", func(t *testing.T) {
		mockSvc.EXPECT().Count(gomock.Any(), ptr(int64(7))).Return(0, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/overdue/count?userId=7", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"totalOverdue":0}`, w.Body.String())
	})
}
