// Package metrics exports treedata generation events as Prometheus metrics.
//
// Recorder implements treedata.Observer:
//
//	rec := metrics.New(prometheus.DefaultRegisterer)
//	entries, err := treedata.GenerateTree(cfg, treedata.WithObserver(rec))
//
// Metrics:
//
//	treedata_generations_total{result}        GenerateTree calls by outcome
//	treedata_entries_total                    entries enumerated
//	treedata_groups_normalized_total{series}  (group, period) rescales
//	treedata_residual_corrections_total{series} rescales with a non-zero residual
//	treedata_residual_abs                     |residual| placed on last siblings
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/chwzr/ag-grid-treedata/treedata"
)

// Result label values for treedata_generations_total.
const (
	ResultOK         = "ok"
	ResultInvalid    = "invalid"
	ResultDegenerate = "degenerate"
	ResultError      = "error"
)

// Recorder is a Prometheus-backed treedata.Observer. Safe for concurrent use.
type Recorder struct {
	generations *prometheus.CounterVec
	entries     prometheus.Counter
	groups      *prometheus.CounterVec
	corrections *prometheus.CounterVec
	residualAbs prometheus.Histogram
}

// New registers the treedata metrics with reg and returns the Recorder.
// Registering twice on the same registry panics, as promauto does.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		generations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "treedata_generations_total",
			Help: "GenerateTree calls by result",
		}, []string{"result"}),
		entries: f.NewCounter(prometheus.CounterOpts{
			Name: "treedata_entries_total",
			Help: "Entries enumerated across all generations",
		}),
		groups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "treedata_groups_normalized_total",
			Help: "Sibling group rescales per period, by series",
		}, []string{"series"}),
		corrections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "treedata_residual_corrections_total",
			Help: "Rescales that left a non-zero rounding residual, by series",
		}, []string{"series"}),
		residualAbs: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "treedata_residual_abs",
			Help:    "Absolute rounding residual added to the last sibling",
			Buckets: []float64{0, 1, 2, 5, 10, 50},
		}),
	}
}

// EntriesEnumerated implements treedata.Observer.
func (r *Recorder) EntriesEnumerated(n int) {
	r.entries.Add(float64(n))
}

// GroupNormalized implements treedata.Observer.
func (r *Recorder) GroupNormalized(_ int, series treedata.Series, _ string, residual int64) {
	r.groups.WithLabelValues(string(series)).Inc()
	if residual != 0 {
		r.corrections.WithLabelValues(string(series)).Inc()
	}
	if residual < 0 {
		residual = -residual
	}
	r.residualAbs.Observe(float64(residual))
}

// GenerationDone implements treedata.Observer.
func (r *Recorder) GenerationDone(_ int, err error) {
	r.generations.WithLabelValues(resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, treedata.ErrValidation):
		return ResultInvalid
	case errors.Is(err, treedata.ErrDegenerateGroup):
		return ResultDegenerate
	default:
		return ResultError
	}
}

var _ treedata.Observer = (*Recorder)(nil)
