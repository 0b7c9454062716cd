package prometheus

import (
	"time"

	"github.com/delciak/biolink/internal/instance"
	"github.com/prometheus/client_golang/prometheus"
)

type Options struct {
	Labels prometheus.Labels
}

func New(o Options) instance.Prometheus {
	return &Instance{
		viewCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "biolink_view_count",
			Help:        "Current process-local page view count.",
			ConstLabels: o.Labels,
		}),
		lanyardFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "biolink_lanyard_fetches_total",
			Help:        "Lanyard presence fetches by outcome.",
			ConstLabels: o.Labels,
		}, []string{"outcome"}),
		lanyardDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "biolink_lanyard_fetch_duration_seconds",
			Help:        "Lanyard presence fetch duration.",
			ConstLabels: o.Labels,
			Buckets:     prometheus.DefBuckets,
		}),
		pollErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "biolink_presence_poll_errors_total",
			Help:        "Background presence polls that ended in an error.",
			ConstLabels: o.Labels,
		}),
	}
}

type Instance struct {
	viewCount       prometheus.Gauge
	lanyardFetches  *prometheus.CounterVec
	lanyardDuration prometheus.Histogram
	pollErrors      prometheus.Counter
}

func (m *Instance) Register(r prometheus.Registerer) {
	r.MustRegister(
		m.viewCount,
		m.lanyardFetches,
		m.lanyardDuration,
		m.pollErrors,
	)
}

func (m *Instance) SetViewCount(count int64) {
	m.viewCount.Set(float64(count))
}

func (m *Instance) ObserveLanyardFetch(outcome string, d time.Duration) {
	m.lanyardFetches.WithLabelValues(outcome).Inc()
	m.lanyardDuration.Observe(d.Seconds())
}

func (m *Instance) IncrementPollErrors() {
	m.pollErrors.Inc()
}
