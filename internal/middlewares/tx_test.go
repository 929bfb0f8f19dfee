package middlewares

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		expect       func(mock sqlmock.Sqlmock)
		next         http.HandlerFunc
		expectedCode int
		expectedBody string
		location     string
	}{
		{
			name: "commit keeps the response",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			next: func(w http.ResponseWriter, r *http.Request) {
				if GetTxFromContext(r.Context()) == nil {
					t.Error("no transaction in context")
				}
				w.Header().Set("Location", "/books/1")
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"id":1}`))
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":1}`,
			location:     "/books/1",
		},
		{
			name: "client error rolls back",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"message":"This book is already borrowed."}`))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"This book is already borrowed."}`,
		},
		{
			name: "failed commit hides the handler body",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(sql.ErrConnDone)
			},
			next: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Location", "/books/2")
				w.Write([]byte(`ok`))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.expect(mock)

			rr := httptest.NewRecorder()
			TxMiddleware(sqlx.NewDb(db, "sqlmock"))(tt.next).
				ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/books", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, rr.Body.String())
			assert.Equal(t, tt.location, rr.Header().Get("Location"))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxMiddleware_BeginError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	db.Close()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rr := httptest.NewRecorder()
	TxMiddleware(sqlx.NewDb(db, "sqlmock"))(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/borrow", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestTxMiddleware_PanicRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler bug")
	})
	handler := TxMiddleware(sqlx.NewDb(db, "sqlmock"))(next)

	assert.Panics(t, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/return", nil))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAfterCommit(t *testing.T) {
	t.Run("without transaction runs at once", func(t *testing.T) {
		ran := false
		AfterCommit(context.Background(), func() { ran = true })
		assert.True(t, ran)
	})

	tests := []struct {
		name    string
		status  int
		commit  error
		wantRan bool
	}{
		{"runs after commit", http.StatusOK, nil, true},
		{"dropped on rollback", http.StatusBadRequest, nil, false},
		{"dropped on failed commit", http.StatusOK, sql.ErrConnDone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectBegin()
			switch {
			case tt.status >= http.StatusBadRequest:
				mock.ExpectRollback()
			case tt.commit != nil:
				mock.ExpectCommit().WillReturnError(tt.commit)
			default:
				mock.ExpectCommit()
			}

			ran := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				AfterCommit(r.Context(), func() { ran = true })
				assert.False(t, ran)
				w.WriteHeader(tt.status)
			})

			rr := httptest.NewRecorder()
			TxMiddleware(sqlx.NewDb(db, "sqlmock"))(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/borrow", nil))

			assert.Equal(t, tt.wantRan, ran)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
