package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bidsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bids_total",
			Help: "Bid admission attempts by outcome",
		},
		[]string{"outcome"},
	)

	finalizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_finalizations_total",
			Help: "Auction finalization attempts by outcome",
		},
		[]string{"outcome"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "route", "status"},
	)
)

// Bid admission outcomes. "accepted" and "rejected" cover the validation
// path, "conflict" counts admissions that gave up after store conflicts.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"

	OutcomeFinalized = "finalized"
	OutcomeRepeated  = "repeated"
)

// TrackBid counts one bid admission attempt
func TrackBid(outcome string) {
	bidsTotal.WithLabelValues(outcome).Inc()
}

// TrackFinalization counts one finalization attempt
func TrackFinalization(outcome string) {
	finalizationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveRequest records one HTTP request's latency
func ObserveRequest(method, route string, status int, duration time.Duration) {
	httpRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
