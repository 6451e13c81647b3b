// Package metrics exposes Prometheus collectors for the booking core.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsAdmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rental",
		Name:      "bookings_admitted_total",
		Help:      "Bookings that passed admission and committed.",
	})

	bookingConflicts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rental",
		Name:      "booking_conflicts_total",
		Help:      "Admissions rejected for availability conflicts, by detection stage.",
	}, []string{"stage"}) // "precheck" or "commit"

	bookingsClosed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rental",
		Name:      "bookings_closed_total",
		Help:      "Bookings leaving the active set, by terminal status.",
	}, []string{"status"})
)

// Register registers the booking collectors with the default Prometheus
// registry. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsAdmitted, bookingConflicts, bookingsClosed)
	})
}

// IncAdmitted counts a committed admission.
func IncAdmitted() {
	bookingsAdmitted.Inc()
}

// IncConflict counts a rejected admission. Stage is "precheck" when the
// in-memory overlap scan caught it, "commit" when the exclusion constraint did.
func IncConflict(stage string) {
	bookingConflicts.WithLabelValues(stage).Inc()
}

// IncClosed counts a booking reaching a terminal status.
func IncClosed(status string) {
	bookingsClosed.WithLabelValues(status).Inc()
}
