// Package metrics exposes Prometheus instrumentation for reminders and the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "plantcare"

// NewRegistry creates the process registry with Go runtime and process collectors.
func NewRegistry() (*prometheus.Registry, prometheus.Registerer, prometheus.Gatherer) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg, reg, reg
}

// Recorder implements service.ReminderMetrics and records HTTP traffic.
type Recorder struct {
	notifications   *prometheus.CounterVec
	scanRuns        prometheus.Counter
	scanProcessed   prometheus.Counter
	scanSent        prometheus.Counter
	scanFailures    prometheus.Counter
	scanDuration    prometheus.Histogram
	lastScan        prometheus.Gauge
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	rateLimitDenied *prometheus.CounterVec
}

var _ service.ReminderMetrics = (*Recorder)(nil)

// NewRecorder registers every collector on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_dispatch_total",
			Help:      "Reminder delivery attempts by channel and status.",
		}, []string{"channel", "status"}),
		scanRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_runs_total",
			Help:      "Completed due-task scans.",
		}),
		scanProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_schedules_processed_total",
			Help:      "Due schedules processed by scans.",
		}),
		scanSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_notifications_sent_total",
			Help:      "Notifications delivered by scans.",
		}),
		scanFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_errors_total",
			Help:      "Errors collected by scans.",
		}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Wall time of one due-task scan.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		lastScan: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scan_last_success_timestamp_seconds",
			Help:      "Unix time of the last completed scan.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		rateLimitDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_rate_limit_rejections_total",
			Help:      "Requests rejected by the rate limiter.",
		}, []string{"route"}),
	}

	for _, c := range []prometheus.Collector{
		r.notifications, r.scanRuns, r.scanProcessed, r.scanSent, r.scanFailures, r.scanDuration,
		r.lastScan, r.httpRequests, r.httpDuration, r.rateLimitDenied,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Recorder) ObserveDispatch(channel entity.NotificationChannel, status entity.NotificationStatus) {
	r.notifications.WithLabelValues(string(channel), string(status)).Inc()
}

func (r *Recorder) ObserveScan(processed, sent, failed int, elapsed time.Duration) {
	r.scanRuns.Inc()
	r.scanProcessed.Add(float64(processed))
	r.scanSent.Add(float64(sent))
	r.scanFailures.Add(float64(failed))
	r.scanDuration.Observe(elapsed.Seconds())
	r.lastScan.SetToCurrentTime()
}

// ObserveHTTP records one served request. route is the registered path pattern.
func (r *Recorder) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveRateLimited counts a rejected request.
func (r *Recorder) ObserveRateLimited(route string) {
	r.rateLimitDenied.WithLabelValues(route).Inc()
}
