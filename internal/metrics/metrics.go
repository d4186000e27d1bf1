// Package metrics exposes the server's Prometheus collectors.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Chat metrics
	MessagesSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_messages_sent_total",
			Help: "Total number of messages stored",
		},
	)

	UsersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_users_created_total",
			Help: "Total number of users created by identity resolution",
		},
	)

	ActivityTouches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_activity_touches_total",
			Help: "Total number of activity touches by result",
		},
		[]string{"result"},
	)

	// API metrics
	GRPCRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_grpc_requests_total",
			Help: "Total number of gRPC requests by method and status code",
		},
		[]string{"method", "code"},
	)

	GRPCRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_grpc_request_duration_seconds",
			Help:    "gRPC request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	// Live query metrics
	LiveWatchers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_live_watchers",
			Help: "Number of running live query watchers",
		},
	)

	LiveSubscribers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_live_subscribers",
			Help: "Number of streams subscribed to live queries",
		},
	)

	LiveRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_live_refreshes_total",
			Help: "Total number of snapshots pushed to subscribers by query",
		},
		[]string{"query"},
	)

	LiveQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_live_query_duration_seconds",
			Help:    "Time spent evaluating a live query by query name",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	WebSocketConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_websocket_connections",
			Help: "Number of open WebSocket connections",
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(MessagesSent)
	prometheus.MustRegister(UsersCreated)
	prometheus.MustRegister(ActivityTouches)
	prometheus.MustRegister(GRPCRequestsTotal)
	prometheus.MustRegister(GRPCRequestDuration)
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(LiveWatchers)
	prometheus.MustRegister(LiveSubscribers)
	prometheus.MustRegister(LiveRefreshes)
	prometheus.MustRegister(LiveQueryDuration)
	prometheus.MustRegister(WebSocketConnections)
}

// RegisterActiveUsers exposes chat_active_users, computed by fn at scrape
// time. Registering twice keeps the first function.
func RegisterActiveUsers(fn func() float64) error {
	g := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "chat_active_users",
			Help: "Users seen within the online window",
		},
		fn,
	)
	if err := prometheus.Register(g); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return err
	}
	return nil
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer measures the duration of an operation.
type Timer struct {
	start time.Time
}

// NewTimer starts a timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the time elapsed since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ObserveDuration records the elapsed time on h.
func (t *Timer) ObserveDuration(h prometheus.Observer) {
	h.Observe(t.Duration().Seconds())
}

// ObserveDurationVec records the elapsed time on the labelled series of h.
func (t *Timer) ObserveDurationVec(h *prometheus.HistogramVec, labels ...string) {
	h.WithLabelValues(labels...).Observe(t.Duration().Seconds())
}
