// SPDX-License-Identifier: MPL-2.0

// Package metrics provides Prometheus metrics for served terminal sessions.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unknownCommand labels lines whose first word is not a registered command,
// so arbitrary user input never becomes a label value.
const unknownCommand = "unknown"

var (
	sessionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "devterm_sessions_total",
			Help: "Total number of terminal sessions started",
		},
	)

	sessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "devterm_sessions_active",
			Help: "Number of terminal sessions currently open",
		},
	)

	sessionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "devterm_session_duration_seconds",
			Help:    "Terminal session duration in seconds",
			Buckets: []float64{1, 10, 60, 300, 900, 3600},
		},
	)

	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devterm_commands_total",
			Help: "Total number of submitted command lines",
		},
		[]string{"command", "known"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// SessionStarted records a new session and returns a func that records its end.
func SessionStarted(now func() time.Time) (ended func()) {
	start := now()
	sessionsTotal.Inc()
	sessionsActive.Inc()
	return func() {
		sessionsActive.Dec()
		sessionDuration.Observe(now().Sub(start).Seconds())
	}
}

// RecordCommand records one dispatched command line.
func RecordCommand(command string, known bool) {
	if !known {
		command = unknownCommand
	}
	commandsTotal.WithLabelValues(command, strconv.FormatBool(known)).Inc()
}
