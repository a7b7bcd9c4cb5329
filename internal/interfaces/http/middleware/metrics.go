package middleware

import (
	"net/http"
	"time"

	"github.com/bakery/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// Metrics records request count, latency and in-flight requests. Routes are
// labelled by their pattern so /bakeries/1 and /bakeries/2 share a series.
func Metrics(m *telemetry.Metrics, skipPaths ...string) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}

	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		done := m.RequestStarted()
		defer func() {
			status := c.Writer.Status()
			// A panic has not been turned into a response yet; Recovery
			// further up the chain answers 500.
			rec := recover()
			if rec != nil {
				status = http.StatusInternalServerError
			}

			route := c.FullPath()
			if route == "" {
				route = unmatchedRoute
			}
			done(c.Request.Method, route, status, time.Since(start))

			if rec != nil {
				panic(rec)
			}
		}()

		c.Next()
	}
}
