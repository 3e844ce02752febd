// Package metrics counts decode outcomes and field shape mismatches with
// Prometheus counters.
package metrics

import (
	"strconv"

	"github.com/signadot/graphmap/gomap"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Recorder struct {
	mismatches *prometheus.CounterVec
	decodes    *prometheus.CounterVec
}

// New registers the counters with reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		mismatches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "graphmap_field_mismatches_total",
			Help: "Number of fields whose value did not have the expected shape",
		}, []string{"type", "attr", "tolerated"}),
		decodes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "graphmap_decodes_total",
			Help: "Number of decode calls by result",
		}, []string{"type", "result"}),
	}
}

// Hook returns a mismatch hook feeding r.
func (r *Recorder) Hook() gomap.MismatchFunc {
	return func(m gomap.Mismatch) {
		r.mismatches.WithLabelValues(m.Type, m.Attr, strconv.FormatBool(m.Tolerated)).Inc()
	}
}

// ObserveDecode counts one decode of kind with its outcome.
func (r *Recorder) ObserveDecode(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.decodes.WithLabelValues(kind, result).Inc()
}
