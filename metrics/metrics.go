package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotelpms",
			Name:      "reservation_created_total",
			Help:      "Count of reservations created by booking source.",
		},
		[]string{"source"},
	)

	reservationConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotelpms",
			Name:      "reservation_conflict_total",
			Help:      "Count of booking attempts rejected for overlapping dates.",
		},
	)

	reservationTransition = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotelpms",
			Name:      "reservation_transition_total",
			Help:      "Count of reservation status changes by target status.",
		},
		[]string{"status"},
	)

	housekeepingTask = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotelpms",
			Name:      "housekeeping_task_total",
			Help:      "Count of housekeeping task events by type.",
		},
		[]string{"type", "event"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservationCreated, reservationConflict, reservationTransition, housekeepingTask)
	})
}

func IncReservationCreated(source string) {
	reservationCreated.WithLabelValues(source).Inc()
}

func IncReservationConflict() {
	reservationConflict.Inc()
}

func IncReservationTransition(status string) {
	reservationTransition.WithLabelValues(status).Inc()
}

func IncHousekeepingTask(taskType, event string) {
	housekeepingTask.WithLabelValues(taskType, event).Inc()
}
