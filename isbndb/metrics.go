// file: isbndb/metrics.go
// version: 1.0.0
// guid: 2e6a8c0d-4f1b-4d9e-b7a5-8c3e1f5d9b0a

package isbndb

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "isbndb",
		Name:      "requests_total",
		Help:      "Total number of API requests sent by endpoint",
	}, []string{"endpoint"})
	requestErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "isbndb",
		Name:      "request_errors_total",
		Help:      "Total number of API requests that failed by endpoint",
	}, []string{"endpoint"})
	retriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "isbndb",
		Name:      "throttle_retries_total",
		Help:      "Total number of retries issued after a 429 response",
	})
)

// RegisterMetrics initializes metrics with the global Prometheus registry (idempotent)
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(requestsTotal, requestErrors, retriesTotal)
	})
}

func incRequest(endpoint string)      { requestsTotal.WithLabelValues(endpoint).Inc() }
func incRequestError(endpoint string) { requestErrors.WithLabelValues(endpoint).Inc() }
func incRetry()                       { retriesTotal.Inc() }
