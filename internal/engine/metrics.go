package engine

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ivlev/motiongfx/internal/timeline"
)

// Metrics holds per-job render counters on a private registry, so two jobs
// in one process never share series.
type Metrics struct {
	Registry *prometheus.Registry

	framesRendered prometheus.Counter
	renderSeconds  prometheus.Histogram
	phaseFrames    *prometheus.CounterVec
}

func NewMetrics(template string) *Metrics {
	labels := prometheus.Labels{"template": template}
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		framesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "motiongfx_frames_rendered_total",
			Help:        "Frames composited for the job.",
			ConstLabels: labels,
		}),
		renderSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "motiongfx_frame_render_seconds",
			Help:        "Time spent compositing a single frame.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		phaseFrames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "motiongfx_phase_frames_total",
			Help:        "Frames composited per transition phase.",
			ConstLabels: labels,
		}, []string{"phase"}),
	}
	m.Registry.MustRegister(m.framesRendered, m.renderSeconds, m.phaseFrames)

	// Phases with no frames still show up as zero.
	for _, ph := range timeline.Phases() {
		m.phaseFrames.WithLabelValues(ph.String())
	}
	return m
}

func (m *Metrics) observe(ph timeline.Phase, d time.Duration) {
	m.framesRendered.Inc()
	m.renderSeconds.Observe(d.Seconds())
	m.phaseFrames.WithLabelValues(ph.String()).Inc()
}

// WriteTextfile dumps the registry in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return errors.Wrap(prometheus.WriteToTextfile(path, m.Registry), "write metrics")
}
