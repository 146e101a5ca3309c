package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// 全部指标挂在 admedia_http_* 命名空间下，和别的服务共用一个 Prometheus 不串
var (
	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "admedia", Subsystem: "http",
			Name: "requests_total",
			Help: "Requests served, by route/method/status",
		},
		[]string{"path", "method", "status"},
	)
	reqLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "admedia", Subsystem: "http",
			Name:    "request_duration_seconds",
			Help:    "Request latency by route/method",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
	reqInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "admedia", Subsystem: "http",
			Name: "inflight_requests",
			Help: "Requests currently being handled",
		},
	)
)

func init() { prometheus.MustRegister(reqTotal, reqLatency, reqInflight) }

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqInflight.Inc()
		start := time.Now()
		c.Next()
		reqInflight.Dec()

		// 未匹配路由（404 等）没有路由模板，退回原始 path
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		reqTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		reqLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
