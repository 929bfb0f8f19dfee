// Package metrics exposes Prometheus counters for the borrowing workflow and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the library's Prometheus metrics.
type Collector struct {
	borrows         prometheus.Counter
	returns         prometheus.Counter
	rejections      *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		borrows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "library_books_borrowed_total",
			Help: "Number of books issued to borrowers.",
		}),
		returns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "library_books_returned_total",
			Help: "Number of books returned.",
		}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "library_borrow_rejections_total",
			Help: "Borrow and return requests rejected by a business rule.",
		}, []string{"reason"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "library_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(c.borrows, c.returns, c.rejections, c.requestDuration)

	return c
}

// BookBorrowed counts a successful borrow.
func (c *Collector) BookBorrowed() {
	c.borrows.Inc()
}

// BookReturned counts a successful return.
func (c *Collector) BookReturned() {
	c.returns.Inc()
}

// BorrowRejected counts a rejected borrow or return by reason.
func (c *Collector) BorrowRejected(reason string) {
	c.rejections.WithLabelValues(reason).Inc()
}

// Middleware observes request latency labelled with the matched chi route pattern.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		c.requestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (sw *statusWriter) WriteHeader(code int) {
	if !sw.wroteHeader {
		sw.status = code
		sw.wroteHeader = true
	}
	sw.ResponseWriter.WriteHeader(code)
}

// Handler returns the Prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
