// Package metrics exposes Prometheus collectors for the scraper service.
package metrics

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	scrapePagesTotal           *prometheus.CounterVec
	scrapeBytesTotal           *prometheus.CounterVec
	scrapeDurationSeconds      *prometheus.HistogramVec
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec

	once sync.Once
)

// Init initializes the Prometheus collectors. It is safe to call this
// function multiple times.
func Init() {
	once.Do(func() {
		scrapePagesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lolscout_pages_total",
				Help: "Total number of pages fetched, labeled by site and status.",
			},
			[]string{"site", "status"},
		)

		scrapeBytesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lolscout_bytes_total",
				Help: "Total number of bytes fetched, labeled by site.",
			},
			[]string{"site"},
		)

		scrapeDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lolscout_fetch_duration_seconds",
				Help:    "Histogram of page fetch latencies, labeled by site.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"site"},
		)

		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		)
	})
}

// SanitizeSite sanitizes a URL to extract a lowercase hostname.
// It returns "unknown" if the URL is invalid.
func SanitizeSite(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http") {
		rawURL = "http://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return strings.ToLower(u.Hostname())
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveFetch records one page fetch against the scrape collectors.
func ObserveFetch(site string, status int, bytesFetched int, duration time.Duration) {
	sanitizedSite := SanitizeSite(site)
	scrapePagesTotal.WithLabelValues(sanitizedSite, strconv.Itoa(status)).Inc()
	scrapeDurationSeconds.WithLabelValues(sanitizedSite).Observe(duration.Seconds())
	if bytesFetched > 0 {
		scrapeBytesTotal.WithLabelValues(sanitizedSite).Add(float64(bytesFetched))
	}
}

// ObserveHTTPRequest increments the HTTP server request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}
