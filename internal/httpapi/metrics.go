package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's collectors on a private registry.
type Metrics struct {
	registry  *prometheus.Registry
	generated *prometheus.CounterVec
	renderDur prometheus.Histogram
	drafts    *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "noticegen",
			Name:      "notices_generated_total",
			Help:      "Notices requested over HTTP, by result.",
		}, []string{"result"}),
		renderDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "noticegen",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering one notice.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		drafts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "noticegen",
			Name:      "drafts_total",
			Help:      "Body drafting requests, by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(
		m.generated,
		m.renderDur,
		m.drafts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeRender(seconds float64, err error) {
	if m == nil {
		return
	}
	m.renderDur.Observe(seconds)
	m.generated.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) observeDraft(err error) {
	if m == nil {
		return
	}
	m.drafts.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
