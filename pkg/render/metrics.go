package render

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the renderer.
//
// Metrics collected:
//   - dictmark_render_calls_total: Counter of render calls by outcome
//     (rendered, recovered, empty, error)
//   - dictmark_render_duration_seconds: Histogram of render call duration
//   - dictmark_render_parse_failures_total: Counter of unparseable documents
//   - dictmark_render_recovered_panics_total: Counter of walks recovered at
//     the top-level boundary
type Metrics struct {
	calls         *prometheus.CounterVec
	duration      prometheus.Histogram
	parseFailures prometheus.Counter
	panics        prometheus.Counter
}

// NewMetrics registers the renderer metrics with the registry. A nil
// registry uses the default registerer.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dictmark",
			Subsystem: "render",
			Name:      "calls_total",
			Help:      "Total render calls by outcome",
		}, []string{"outcome"}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dictmark",
			Subsystem: "render",
			Name:      "duration_seconds",
			Help:      "Render call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		parseFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dictmark",
			Subsystem: "render",
			Name:      "parse_failures_total",
			Help:      "Total entry documents that failed to parse",
		}),

		panics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dictmark",
			Subsystem: "render",
			Name:      "recovered_panics_total",
			Help:      "Total render walks recovered at the top-level boundary",
		}),
	}
}
