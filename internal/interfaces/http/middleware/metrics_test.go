package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bakery/backend/internal/infrastructure/logger"
	"github.com/bakery/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetrics(t *testing.T) {
	m := telemetry.NewMetrics()
	router := gin.New()
	router.Use(Metrics(m, "/metrics"))
	router.GET("/bakeries/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	for _, path := range []string{"/bakeries/1", "/bakeries/2", "/nope", "/metrics"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP bakery_http_requests_total Total HTTP requests by method, route and status code.
# TYPE bakery_http_requests_total counter
bakery_http_requests_total{method="GET",route="/bakeries/:id",status="200"} 2
bakery_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "bakery_http_requests_total")
	require.NoError(t, err)

	inFlight, err := testutil.GatherAndCount(m.Registry(), "bakery_http_requests_in_flight")
	require.NoError(t, err)
	assert.Equal(t, 1, inFlight)
}

func TestMetrics_Panic(t *testing.T) {
	m := telemetry.NewMetrics()
	router := gin.New()
	router.Use(logger.Recovery(zap.NewNop()))
	router.Use(Metrics(m))
	router.GET("/bakeries/:id", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bakeries/1", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	expected := `
# HELP bakery_http_requests_total Total HTTP requests by method, route and status code.
# TYPE bakery_http_requests_total counter
bakery_http_requests_total{method="GET",route="/bakeries/:id",status="500"} 1
# HELP bakery_http_requests_in_flight HTTP requests currently being served.
# TYPE bakery_http_requests_in_flight gauge
bakery_http_requests_in_flight 0
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"bakery_http_requests_total", "bakery_http_requests_in_flight")
	require.NoError(t, err)
}

func TestMetrics_NilIsPassThrough(t *testing.T) {
	router := gin.New()
	router.Use(Metrics(nil))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
