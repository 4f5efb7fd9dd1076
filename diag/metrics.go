// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"cogentcore.org/proptypes/proptypes"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts diagnostics and sessions for a [Sink].
// A nil *Metrics counts nothing.
type Metrics struct {
	diagnostics *prometheus.CounterVec
	sessions    *prometheus.CounterVec
}

// NewMetrics returns new [Metrics] registered with the given registerer.
// It panics if the metrics are already registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "proptypes",
				Name:      "diagnostics_total",
				Help:      "Distinct failed prop type diagnostics per session",
			},
			[]string{"owner", "outcome"},
		),
		sessions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "proptypes",
				Name:      "sessions_total",
				Help:      "Validation sessions by result",
			},
			[]string{"result"},
		),
	}
	reg.MustRegister(m.diagnostics, m.sessions)
	return m
}

func (m *Metrics) diagnostic(d proptypes.Diagnostic) {
	if m == nil {
		return
	}
	m.diagnostics.WithLabelValues(d.Owner, d.Outcome.String()).Inc()
}

func (m *Metrics) session(passed bool) {
	if m == nil {
		return
	}
	result := "passed"
	if !passed {
		result = "failed"
	}
	m.sessions.WithLabelValues(result).Inc()
}

func (m *Metrics) aborted() {
	if m == nil {
		return
	}
	m.sessions.WithLabelValues("aborted").Inc()
}
