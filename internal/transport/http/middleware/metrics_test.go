package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsByRouteAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/vehicles/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(reqTotal.WithLabelValues("/vehicles/:id", "GET", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/vehicles/7", nil))
	require.Equal(t, http.StatusOK, w.Code)

	after := testutil.ToFloat64(reqTotal.WithLabelValues("/vehicles/:id", "GET", "200"))
	assert.Equal(t, before+1, after, "counter keyed by route template, not raw path")

	// 处理结束后在途数归零
	assert.Zero(t, testutil.ToFloat64(reqInflight))
}
