package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	walletTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_calls_total",
			Help: "Total external wallet calls by operation and result",
		},
		[]string{"op", "result"},
	)

	walletDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wallet_call_duration_ms",
			Help:    "External wallet call duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		},
		[]string{"op", "result"},
	)
)

// RecordWalletCall записывает метрики одного вызова внешнего кошелька.
// op: "authenticate" | "balance" | "transaction" | "cancel"
func RecordWalletCall(op, result string, started time.Time) {
	res := result
	if res != "success" {
		res = "fail"
	}
	walletTotal.WithLabelValues(op, res).Inc()
	durMs := float64(time.Since(started).Milliseconds())
	walletDuration.WithLabelValues(op, res).Observe(durMs)
}
