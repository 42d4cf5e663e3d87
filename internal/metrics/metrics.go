package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fairshare_http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fairshare_http_requests_total",
			Help: "Total number of HTTP requests by operation and status.",
		},
		[]string{"operation", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fairshare_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// BalanceComputations counts balance derivations by outcome ("ok" or "inconsistent").
	BalanceComputations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fairshare_balance_computations_total",
			Help: "Balance derivations by outcome.",
		},
		[]string{"outcome"},
	)

	// LedgerInconsistencies counts expenses found whose splits do not sum to their total.
	LedgerInconsistencies = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fairshare_ledger_inconsistencies_total",
		Help: "Expenses whose split rows do not sum to the expense total.",
	})

	// OperatorQueueDepth is the number of write actions waiting for a worker.
	OperatorQueueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fairshare_operator_queue_depth",
		Help: "Write actions waiting for an operator worker.",
	})

	// OperatorActions counts processed write actions by action name and outcome.
	OperatorActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fairshare_operator_actions_total",
			Help: "Write actions processed by the operator, by action and outcome.",
		},
		[]string{"action", "outcome"},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. It is safe to call
// more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpInFlight,
			httpRequestsTotal,
			httpRequestDuration,
			BalanceComputations,
			LedgerInconsistencies,
			OperatorQueueDepth,
			OperatorActions,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request count and latency per huma operation.
func Middleware(ctx huma.Context, next func(huma.Context)) {
	operation := ctx.Operation().OperationID

	httpInFlight.Inc()
	defer httpInFlight.Dec()
	start := time.Now()

	next(ctx)

	httpRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	httpRequestsTotal.WithLabelValues(operation, strconv.Itoa(ctx.Status())).Inc()
}
