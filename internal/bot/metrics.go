package bot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Общий реестр для всех метрик бота; отдается через /metrics
	// операционного HTTP-сервера.
	registry = prometheus.NewRegistry()

	commandsProcessed = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "memecoin_agent_commands_processed_total",
			Help: "Total number of processed commands, partitioned by command name.",
		},
		[]string{"command"},
	)
	remoteCallsFailed = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "memecoin_agent_remote_calls_failed_total",
			Help: "Total number of failed remote calls, partitioned by operation.",
		},
		[]string{"operation"},
	)
	callbacksProcessed = promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "memecoin_agent_callbacks_processed_total",
			Help: "Total number of processed inline-button callbacks.",
		},
	)
)

// MetricsRegistry возвращает реестр метрик бота для HTTP-экспорта.
func MetricsRegistry() *prometheus.Registry {
	return registry
}

func metricsCommandProcessed(kind Kind) {
	commandsProcessed.WithLabelValues(kind.String()).Inc()
}

func metricsRemoteCallFailed(operation string) {
	remoteCallsFailed.WithLabelValues(operation).Inc()
}

func metricsCallbackProcessed() {
	callbacksProcessed.Inc()
}
