// Package metrics holds the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "smart_notes"

// Analysis outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeDegraded = "degraded"
)

// Alert delivery results.
const (
	AlertSent    = "sent"
	AlertSkipped = "skipped"
	AlertFailed  = "failed"
)

var (
	// AnalysisTotal counts analyses by outcome.
	AnalysisTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analysis_total",
		Help:      "Note analyses by outcome.",
	}, []string{"outcome"})

	// ActiveCountdowns is the number of notes currently being ticked.
	ActiveCountdowns = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_countdowns",
		Help:      "Countdowns currently attached.",
	})

	// AlertsTotal counts lead-time alerts by delivery result.
	AlertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_total",
		Help:      "Lead-time alerts by delivery result.",
	}, []string{"result"})

	// NotesTotal counts stored notes by whether analysis degraded.
	NotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notes_created_total",
		Help:      "Notes created, labeled by analysis outcome.",
	}, []string{"outcome"})
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
