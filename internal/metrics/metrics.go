package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cowork_central"

var (
	once sync.Once

	admissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_admissions_total",
			Help:      "Booking admission attempts by result.",
		},
		[]string{"result"},
	)

	admissionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "booking_admission_duration_seconds",
			Help:      "Time spent admitting a booking, lock wait included.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	lockWait = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "space_lock_wait_seconds",
			Help:      "Time spent waiting for a per-space lock.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2, 5},
		},
	)

	transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transitions_total",
			Help:      "Booking status transitions by target status and origin.",
		},
		[]string{"status", "origin"},
	)

	availabilityChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_checks_total",
			Help:      "Availability checks by outcome.",
		},
		[]string{"outcome"},
	)

	dayCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "day_cache_requests_total",
			Help:      "Day listing cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(admissions, admissionDuration, lockWait, transitions, availabilityChecks, dayCache)
	})
}

func IncAdmission(result string) {
	admissions.WithLabelValues(result).Inc()
}

func ObserveAdmission(d time.Duration) {
	admissionDuration.Observe(d.Seconds())
}

func ObserveLockWait(d time.Duration) {
	lockWait.Observe(d.Seconds())
}

func IncTransition(status, origin string) {
	transitions.WithLabelValues(status, origin).Inc()
}

func IncAvailabilityCheck(available bool) {
	outcome := "conflict"
	if available {
		outcome = "available"
	}
	availabilityChecks.WithLabelValues(outcome).Inc()
}

func IncDayCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	dayCache.WithLabelValues(result).Inc()
}
