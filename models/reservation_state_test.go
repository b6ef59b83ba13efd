package models

import (
	"testing"
	"time"

	apperrors "hotelpms/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationState_Transitions(t *testing.T) {
	at := time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)
	type action func(ReservationState, *Reservation, time.Time) error
	checkIn := func(s ReservationState, r *Reservation, at time.Time) error { return s.CheckIn(r, at) }
	checkOut := func(s ReservationState, r *Reservation, at time.Time) error { return s.CheckOut(r, at) }
	cancel := func(s ReservationState, r *Reservation, at time.Time) error { return s.Cancel(r, at) }

	tests := []struct {
		name string
		from ReservationStatus
		do   action
		want ReservationStatus
		ok   bool
	}{
		{"check in confirmed", ReservationConfirmed, checkIn, ReservationCheckedIn, true},
		{"cancel confirmed", ReservationConfirmed, cancel, ReservationCancelled, true},
		{"check out confirmed", ReservationConfirmed, checkOut, ReservationConfirmed, false},
		{"check out in house", ReservationCheckedIn, checkOut, ReservationCheckedOut, true},
		{"cancel in house", ReservationCheckedIn, cancel, ReservationCancelled, true},
		{"check in twice", ReservationCheckedIn, checkIn, ReservationCheckedIn, false},
		{"check in after checkout", ReservationCheckedOut, checkIn, ReservationCheckedOut, false},
		{"cancel after checkout", ReservationCheckedOut, cancel, ReservationCheckedOut, false},
		{"check out cancelled", ReservationCancelled, checkOut, ReservationCancelled, false},
		{"cancel twice", ReservationCancelled, cancel, ReservationCancelled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Reservation{Status: tt.from}
			err := tt.do(GetReservationState(tt.from), r, at)
			if tt.ok {
				require.NoError(t, err)
			} else {
				assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidTransition))
			}
			assert.Equal(t, tt.want, r.Status)
		})
	}
}

func TestReservationState_StampsTimestamps(t *testing.T) {
	at := time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)
	r := &Reservation{Status: ReservationConfirmed}

	require.NoError(t, GetReservationState(r.Status).CheckIn(r, at))
	require.NotNil(t, r.CheckedInAt)
	assert.True(t, r.CheckedInAt.Equal(at))

	later := at.Add(48 * time.Hour)
	require.NoError(t, GetReservationState(r.Status).CheckOut(r, later))
	require.NotNil(t, r.CheckedOutAt)
	assert.True(t, r.CheckedOutAt.Equal(later))
	assert.Nil(t, r.CancelledAt)
}

func TestApplyStatusOverride(t *testing.T) {
	at := time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)
	r := &Reservation{Status: ReservationCheckedOut}

	ApplyStatusOverride(r, ReservationConfirmed, at)
	assert.Equal(t, ReservationConfirmed, r.Status)
	assert.Nil(t, r.CheckedInAt)

	ApplyStatusOverride(r, ReservationCancelled, at)
	assert.Equal(t, ReservationCancelled, r.Status)
	require.NotNil(t, r.CancelledAt)
}

func TestActor(t *testing.T) {
	sys := SystemActor()
	assert.True(t, sys.IsSystem())
	assert.Nil(t, sys.StaffRef())
	assert.True(t, sys.HasRole(RoleAdmin))

	desk := Actor{StaffID: 4, Role: RoleReceptionist}
	require.NotNil(t, desk.StaffRef())
	assert.Equal(t, uint(4), *desk.StaffRef())
	assert.False(t, desk.HasRole(RoleManager, RoleAdmin))
	assert.True(t, StaffRole("housekeeping").Valid())
	assert.False(t, StaffRole("owner").Valid())
}
