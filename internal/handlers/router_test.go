package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sbilibin2017/gw-library/internal/jwt"
	"github.com/sbilibin2017/gw-library/internal/metrics"
	"github.com/sbilibin2017/gw-library/internal/models"
	"github.com/stretchr/testify/assert"
)

// fakeTokener accepts "admin" and "user" as bearer tokens.
type fakeTokener struct{}

func (fakeTokener) GetTokenFromRequest(_ context.Context, r *http.Request) (string, error) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		return "", errors.New("missing token")
	}
	return token, nil
}

func (fakeTokener) GetClaims(_ context.Context, token string) (*jwt.Claims, error) {
	switch token {
	case "admin":
		return &jwt.Claims{UserID: 1, Role: models.RoleAdmin}, nil
	case "user":
		return &jwt.Claims{UserID: 2, Role: models.RoleUser}, nil
	}
	return nil, errors.New("invalid token")
}

type authMocks struct {
	*MockLoginer
	*MockRegisterer
	*MockUserLister
}

type catalogMocks struct {
	*MockBookReader
	*MockBookWriter
}

func TestNewRouter_Access(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := authMocks{NewMockLoginer(ctrl), NewMockRegisterer(ctrl), NewMockUserLister(ctrl)}
	books := catalogMocks{NewMockBookReader(ctrl), NewMockBookWriter(ctrl)}
	borrow := NewMockBorrowWorkflow(ctrl)
	overdue := NewMockOverdueReporter(ctrl)

	reg := prometheus.NewRegistry()
	router := NewRouter(RouterDeps{
		Auth:     auth,
		Books:    books,
		Borrow:   borrow,
		Overdue:  overdue,
		Tokener:  fakeTokener{},
		Metrics:  metrics.NewCollector(reg),
		Gatherer: reg,
	})

	books.MockBookReader.EXPECT().List(gomock.Any(), gomock.Any(), false).
		Return(&models.Page[models.Book]{Items: []models.Book{}}, nil)
	overdue.EXPECT().Count(gomock.Any(), nil).Return(0, nil)

	tests := []struct {
		name         string
		method       string
		path         string
		token        string
		expectedCode int
	}{
		{"books without token", http.MethodGet, "/books", "", http.StatusUnauthorized},
		{"books with bad token", http.MethodGet, "/books", "forged", http.StatusUnauthorized},
		{"books as user", http.MethodGet, "/books", "user", http.StatusOK},
		{"create book as user", http.MethodPost, "/books", "user", http.StatusForbidden},
		{"borrow as user", http.MethodPost, "/borrow", "user", http.StatusForbidden},
		{"register as user", http.MethodPost, "/register", "user", http.StatusForbidden},
		{"overdue count as user", http.MethodGet, "/overdue/count", "user", http.StatusForbidden},
		{"overdue count as admin", http.MethodGet, "/overdue/count", "admin", http.StatusOK},
		{"non numeric id", http.MethodGet, "/books/abc", "admin", http.StatusNotFound},
		{"metrics are public", http.MethodGet, "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
