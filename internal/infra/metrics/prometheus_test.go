//go:build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := New("test")

	m.ReservationAttempt("created")
	m.ReservationAttempt("created")
	m.ReservationAttempt("sold_out")
	m.ReservationTransition("CONFIRMED")
	m.PaymentReconciliation("APPLIED")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.reservationAttempts.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reservationAttempts.WithLabelValues("sold_out")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reservationTransition.WithLabelValues("CONFIRMED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.paymentReconciliation.WithLabelValues("APPLIED")))
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New("test")

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", m.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/ping", "204")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "test_http_requests_total"))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = New("dup")
		_ = New("dup")
	})
}
