package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "polyroots"

// Recorder holds the metrics of one pipeline run.
type Recorder struct {
	registry *prometheus.Registry

	rootsDecoded     prometheus.Counter
	degree           prometheus.Gauge
	buildSeconds     prometheus.Histogram
	evaluationSecs   *prometheus.HistogramVec
	defects          prometheus.Counter
	evaluatorsFailed *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry. Go runtime and
// process collectors are registered alongside the pipeline metrics.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		rootsDecoded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roots_decoded_total",
			Help:      "Number of roots decoded from the input document.",
		}),
		degree: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "polynomial_degree",
			Help:      "Degree of the reconstructed polynomial.",
		}),
		buildSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_seconds",
			Help:      "Time spent folding the roots into the polynomial.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 9),
		}),
		evaluationSecs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_seconds",
			Help:      "Time spent evaluating the polynomial at every root, by evaluator.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 9),
		}, []string{"evaluator"}),
		defects: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_defects_total",
			Help:      "Used roots at which the polynomial did not evaluate to zero.",
		}),
		evaluatorsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluator_failures_total",
			Help:      "Evaluators that returned an error, by evaluator.",
		}, []string{"evaluator"}),
	}
}

// Registry exposes the underlying registry, e.g. for promhttp or tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// RootsDecoded adds n decoded roots.
func (r *Recorder) RootsDecoded(n int) { r.rootsDecoded.Add(float64(n)) }

// PolynomialBuilt records the degree and build time of the polynomial.
func (r *Recorder) PolynomialBuilt(degree int, d time.Duration) {
	r.degree.Set(float64(degree))
	r.buildSeconds.Observe(d.Seconds())
}

// EvaluationDone records one evaluator's validation pass.
func (r *Recorder) EvaluationDone(evaluator string, d time.Duration, defects int, err error) {
	if err != nil {
		r.evaluatorsFailed.WithLabelValues(evaluator).Inc()
		return
	}
	r.evaluationSecs.WithLabelValues(evaluator).Observe(d.Seconds())
	r.defects.Add(float64(defects))
}

// WriteToTextfile writes every gathered metric to path in the text
// exposition format used by the node exporter textfile collector.
func (r *Recorder) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
