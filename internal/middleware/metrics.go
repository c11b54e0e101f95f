package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/templui/goalfund/internal/metrics"
)

// Metrics records request latency per route pattern. It must run directly
// around the mux so the pattern chosen by the mux is visible on r.
func Metrics(m *metrics.HTTP) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := wrap(w)

			next.ServeHTTP(rw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.Duration.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).
				Observe(time.Since(start).Seconds())
		})
	}
}
