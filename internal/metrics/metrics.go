package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationDuration tracks the latency of airdrop ledger operations
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "airdrop_operation_duration_seconds",
			Help: "Duration of airdrop ledger operations in seconds",
			Buckets: []float64{
				0.001, // 1ms
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
				5.0,   // 5s
			},
		},
		[]string{"operation", "status"}, // operation name, success or failure
	)

	// ClaimsTotal counts settled claims
	ClaimsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "airdrop_claims_total",
			Help: "Number of successfully settled claims",
		},
	)
)

// RecordOperationDuration records the duration of one ledger operation
func RecordOperationDuration(operation, status string, duration float64) {
	OperationDuration.WithLabelValues(operation, status).Observe(duration)
}
