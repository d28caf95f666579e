// Package metrics records per-run counters in a private Prometheus registry
// and writes them in the text exposition format for node_exporter's
// textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ggcat2bcalm/internal/pipeline"
)

const namespace = "ggcat2bcalm"

// Run holds the metrics of one conversion.
type Run struct {
	reg *prometheus.Registry

	fragments     prometheus.Gauge
	extremities   prometheus.Gauge
	buckets       prometheus.Gauge
	sharedBuckets prometheus.Gauge
	links         prometheus.Gauge
	selfLinks     prometheus.Gauge
	outputBytes   prometheus.Counter
	passSeconds   *prometheus.HistogramVec
	runsTotal     *prometheus.CounterVec
}

func New() *Run {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	gauge := func(name, help string) prometheus.Gauge {
		return f.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}
	return &Run{
		reg:           reg,
		fragments:     gauge("unitigs", "Unitigs read from the input"),
		extremities:   gauge("extremities", "Extremities filed in the overlap index"),
		buckets:       gauge("overlap_buckets", "Distinct canonical (k-1)-mer keys"),
		sharedBuckets: gauge("shared_overlap_buckets", "Keys shared by at least two extremities"),
		links:         gauge("links", "Link descriptors emitted"),
		selfLinks:     gauge("self_links", "Self-adjacency descriptors emitted"),
		outputBytes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "output_bytes_total",
			Help:      "Bytes written to the output",
		}),
		passSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pass_duration_seconds",
			Help:      "Duration of each conversion phase",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120, 600},
		}, []string{"phase"}),
		runsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Conversions by outcome",
		}, []string{"outcome"}),
	}
}

// Observe copies pipeline stats into the gauges and histogram.
func (m *Run) Observe(st pipeline.Stats) {
	m.fragments.Set(float64(st.Fragments))
	m.extremities.Set(float64(st.Extremities))
	m.buckets.Set(float64(st.Buckets))
	m.sharedBuckets.Set(float64(st.SharedBuckets))
	m.links.Set(float64(st.Links))
	m.selfLinks.Set(float64(st.SelfLinks))
	m.observePass("index", st.IndexTime)
	m.observePass("infer", st.InferTime)
	m.observePass("emit", st.EmitTime)
}

func (m *Run) observePass(phase string, d time.Duration) {
	m.passSeconds.WithLabelValues(phase).Observe(d.Seconds())
}

func (m *Run) AddOutputBytes(n int64) { m.outputBytes.Add(float64(n)) }

// Outcome counts the run as "ok", "error" or "canceled".
func (m *Run) Outcome(outcome string) { m.runsTotal.WithLabelValues(outcome).Inc() }

// Registry exposes the underlying registry (tests, custom exporters).
func (m *Run) Registry() *prometheus.Registry { return m.reg }

// WriteTextfile writes every metric to path atomically.
func (m *Run) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
