package metrics

import "github.com/prometheus/client_golang/prometheus"

// Assistant Prometheus metrics.
var (
	AssistantRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "curator",
			Name:      "assistant_requests_total",
			Help:      "Total number of completion requests",
		},
		[]string{"provider", "model", "status"},
	)

	AssistantRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "curator",
			Name:      "assistant_request_duration_seconds",
			Help:      "Completion request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "model"},
	)

	AssistantTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "curator",
			Name:      "assistant_tokens_total",
			Help:      "Total completion tokens consumed",
		},
		[]string{"provider", "model", "type"},
	)

	AssistantCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "curator",
			Name:      "assistant_reply_cache_total",
			Help:      "Reply cache lookups by result",
		},
		[]string{"result"},
	)

	AssistantFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "curator",
			Name:      "assistant_fallback_total",
			Help:      "Conversations answered by the local search fallback",
		},
	)
)

// RegisterAssistantMetrics registers assistant metrics explicitly (no init()).
func RegisterAssistantMetrics() {
	prometheus.MustRegister(
		AssistantRequestsTotal,
		AssistantRequestDuration,
		AssistantTokensTotal,
		AssistantCacheTotal,
		AssistantFallbackTotal,
	)
}
