package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/metrics"
	"github.com/sbilibin2017/gw-library/internal/middlewares"
	"github.com/sbilibin2017/gw-library/internal/models"
	httpSwagger "github.com/swaggo/http-swagger"
)

// AuthService is the union of the auth operations exposed over HTTP.
type AuthService interface {
	Loginer
	Registerer
	UserLister
}

// CatalogService is the union of the catalog operations exposed over HTTP.
type CatalogService interface {
	BookReader
	BookWriter
}

// RouterDeps carries everything NewRouter wires together. DB, Metrics,
// Gatherer and RateLimiter are optional.
type RouterDeps struct {
	Auth    AuthService
	Books   CatalogService
	Borrow  BorrowWorkflow
	Overdue OverdueReporter
	Tokener middlewares.Tokener

	DB          *sqlx.DB
	Metrics     *metrics.Collector
	Gatherer    prometheus.Gatherer
	RateLimiter *middlewares.RateLimiter
	SwaggerURL  string
}

// NewRouter builds the HTTP routes. Reads are open to any authenticated
// user except the admin reports; every write is admin-only and runs inside
// a transaction.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware())
	}

	tx := func(next http.Handler) http.Handler { return next }
	if deps.DB != nil {
		tx = middlewares.TxMiddleware(deps.DB)
	}

	// Public routes
	r.Post("/login", NewLoginHandler(deps.Auth))
	if deps.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.Gatherer))
	}
	if deps.SwaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(deps.SwaggerURL)))
	}

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(deps.Tokener))

		r.Get("/books", NewListBooksHandler(deps.Books))
		r.Get("/books/{id:[0-9]+}", NewGetBookHandler(deps.Books))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireRole(models.RoleAdmin))

			r.Get("/users", NewListUsersHandler(deps.Auth))
			r.Get("/active", NewActiveBorrowsHandler(deps.Borrow))
			r.Get("/overdue", NewListOverdueHandler(deps.Overdue))
			r.Get("/overdue/count", NewCountOverdueHandler(deps.Overdue))

			r.Group(func(r chi.Router) {
				r.Use(tx)

				r.Post("/register", NewRegisterHandler(deps.Auth))
				r.Post("/books", NewCreateBookHandler(deps.Books))
				r.Put("/books/{id:[0-9]+}", NewUpdateBookHandler(deps.Books))
				r.Delete("/books/{id:[0-9]+}", NewDeleteBookHandler(deps.Books))
				r.Post("/books/{id:[0-9]+}/restore", NewRestoreBookHandler(deps.Books))
				r.Post("/borrow", NewBorrowHandler(deps.Borrow))
				r.Post("/return", NewReturnHandler(deps.Borrow))
			})
		})
	})

	return r
}
