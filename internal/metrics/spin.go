package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	spinTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spin_requests_total",
			Help: "Total spin settlements by result",
		},
		[]string{"result"},
	)

	spinDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spin_request_duration_ms",
			Help:    "Spin settlement duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		},
		[]string{"result"},
	)
)

// RecordSpin записывает бизнес-метрики одного расчета.
// result: "success" | "invalid_bet" | "unauthenticated" | "wallet_error" | "ledger_error"
func RecordSpin(result string, started time.Time) {
	spinTotal.WithLabelValues(result).Inc()
	durMs := float64(time.Since(started).Milliseconds())
	spinDuration.WithLabelValues(result).Observe(durMs)
}
