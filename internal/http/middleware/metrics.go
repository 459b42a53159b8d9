package middleware

import (
	"net/http"
	"time"

	"github.com/HeetJani123/ethos-web-collective/internal/metrics"
)

// Metrics записывает класс статуса и длительность каждого запроса в коллектор.
// nil-коллектор делает мидлвар no-op.
func Metrics(c *metrics.Collector) Middleware {
	return func(next http.Handler) http.Handler {
		if c == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}

			c.RecordHTTPStatus(status)
			c.RecordHTTPLatency(time.Since(start))
		})
	}
}
