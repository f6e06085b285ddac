package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestDuration    *prometheus.HistogramVec
	requestTotal       *prometheus.CounterVec
	classifierDuration *prometheus.HistogramVec
	classifierTotal    *prometheus.CounterVec
}

// NewMetricsService registers the core collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	classifierDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "classifier_call_duration_seconds",
		Help:    "Duration of calls to the generative-language model",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	classifierTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "classifier_calls_total",
		Help: "Total calls to the generative-language model",
	}, []string{"outcome"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, classifierDuration, classifierTotal, goroutines)

	return &MetricsService{
		registry:           registry,
		handler:            promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:    requestDuration,
		requestTotal:       requestTotal,
		classifierDuration: classifierDuration,
		classifierTotal:    classifierTotal,
	}
}

// ObserveHTTPRequest records one served request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := prometheus.Labels{"method": method, "path": path, "status": strconv.Itoa(status)}
	m.requestTotal.With(labels).Inc()
	m.requestDuration.With(labels).Observe(duration.Seconds())
}

// ObserveClassifierCall records one outbound model call.
func (m *MetricsService) ObserveClassifierCall(outcome string, duration time.Duration) {
	m.classifierTotal.With(prometheus.Labels{"outcome": outcome}).Inc()
	m.classifierDuration.With(prometheus.Labels{"outcome": outcome}).Observe(duration.Seconds())
}

// Handler returns the Prometheus scrape endpoint.
func (m *MetricsService) Handler() http.Handler {
	return m.handler
}
