package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(reservationConflict)
	IncReservationConflict()
	assert.Equal(t, before+1, testutil.ToFloat64(reservationConflict))

	IncReservationCreated("phone")
	assert.Equal(t, 1.0, testutil.ToFloat64(reservationCreated.WithLabelValues("phone")))

	IncHousekeepingTask("cleaning", "completed")
	IncHousekeepingTask("cleaning", "completed")
	assert.Equal(t, 2.0, testutil.ToFloat64(housekeepingTask.WithLabelValues("cleaning", "completed")))
}
