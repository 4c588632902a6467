package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Registry holds the application collectors served on /metrics.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "shopapi",
		Subsystem: "http",
		Name:      "inflight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopapi",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests handled.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "shopapi",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
	}, []string{"method", "route"})

	storeConflicts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopapi",
		Subsystem: "store",
		Name:      "conflicts_total",
		Help:      "Writes and deletes refused by an integrity rule.",
	}, []string{"resource"})
)

func init() {
	Registry.MustRegister(httpInFlight, httpRequests, httpDuration, storeConflicts)
}

// Middleware records request count, latency and in-flight gauge. Errors are
// passed to the app's ErrorHandler first so the recorded status is final.
func Middleware(c *fiber.Ctx) error {
	httpInFlight.Inc()
	defer httpInFlight.Dec()
	start := time.Now()

	err := c.Next()
	if err != nil {
		if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	// fiber strings alias pooled buffers; the collectors keep their labels
	method := utils.CopyString(c.Method())
	route := "unmatched"
	if r := c.Route(); r != nil && r.Path != "/" && r.Path != "" {
		route = utils.CopyString(r.Path)
	} else if c.Path() == "/" {
		route = "/"
	}
	status := strconv.Itoa(c.Response().StatusCode())
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	return nil
}

// Conflict counts an integrity refusal for resource.
func Conflict(resource string) {
	storeConflicts.WithLabelValues(resource).Inc()
}
