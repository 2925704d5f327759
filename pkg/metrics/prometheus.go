package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder collects the service's Prometheus metrics.
type Recorder struct {
	requestsTotal        *prometheus.CounterVec
	requestDuration      *prometheus.HistogramVec
	oracleCalls          *prometheus.CounterVec
	oracleLatency        prometheus.Histogram
	signalsAcknowledged  prometheus.Counter
	subscriptionsCreated *prometheus.CounterVec
}

// New registers the metrics on reg. Pass prometheus.DefaultRegisterer in the
// application and a fresh registry in tests.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signal_api_http_requests_total",
				Help: "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "signal_api_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		oracleCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signal_api_oracle_calls_total",
				Help: "Total number of prediction oracle calls by outcome",
			},
			[]string{"outcome"},
		),
		oracleLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "signal_api_oracle_call_duration_seconds",
				Help:    "Duration of prediction oracle calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		signalsAcknowledged: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "signal_api_trading_signals_total",
				Help: "Total number of trading signals acknowledged",
			},
		),
		subscriptionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signal_api_subscriptions_total",
				Help: "Total number of subscription requests acknowledged by signal type",
			},
			[]string{"signal_type"},
		),
	}
}

func (r *Recorder) RecordRequest(method, route string, status int, elapsed time.Duration) {
	r.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Recorder) RecordOracleCall(elapsed time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	r.oracleCalls.WithLabelValues(outcome).Inc()
	r.oracleLatency.Observe(elapsed.Seconds())
}

func (r *Recorder) RecordSignal() {
	r.signalsAcknowledged.Inc()
}

func (r *Recorder) RecordSubscription(signalType string) {
	r.subscriptionsCreated.WithLabelValues(signalType).Inc()
}
