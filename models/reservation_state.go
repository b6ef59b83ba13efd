package models

import (
	"fmt"
	"time"

	apperrors "hotelpms/errors"
)

// ReservationState holds the transitions allowed from one status.
type ReservationState interface {
	CheckIn(r *Reservation, at time.Time) error
	CheckOut(r *Reservation, at time.Time) error
	Cancel(r *Reservation, at time.Time) error
}

func invalid(r *Reservation, action string) error {
	return apperrors.InvalidTransition(fmt.Sprintf("cannot %s a reservation in status %s", action, r.Status))
}

// ConfirmedState: booked, guest not yet arrived.
type ConfirmedState struct{}

func (s *ConfirmedState) CheckIn(r *Reservation, at time.Time) error {
	r.Status = ReservationCheckedIn
	r.CheckedInAt = &at
	return nil
}

func (s *ConfirmedState) CheckOut(r *Reservation, at time.Time) error {
	return invalid(r, "check out")
}

func (s *ConfirmedState) Cancel(r *Reservation, at time.Time) error {
	r.Status = ReservationCancelled
	r.CancelledAt = &at
	return nil
}

// CheckedInState: guest in house.
type CheckedInState struct{}

func (s *CheckedInState) CheckIn(r *Reservation, at time.Time) error {
	return invalid(r, "check in")
}

func (s *CheckedInState) CheckOut(r *Reservation, at time.Time) error {
	r.Status = ReservationCheckedOut
	r.CheckedOutAt = &at
	return nil
}

func (s *CheckedInState) Cancel(r *Reservation, at time.Time) error {
	r.Status = ReservationCancelled
	r.CancelledAt = &at
	return nil
}

// TerminalState covers checked_out and cancelled.
type TerminalState struct{}

func (s *TerminalState) CheckIn(r *Reservation, at time.Time) error {
	return invalid(r, "check in")
}

func (s *TerminalState) CheckOut(r *Reservation, at time.Time) error {
	return invalid(r, "check out")
}

func (s *TerminalState) Cancel(r *Reservation, at time.Time) error {
	return invalid(r, "cancel")
}

// GetReservationState returns the state object for status.
func GetReservationState(status ReservationStatus) ReservationState {
	switch status {
	case ReservationConfirmed:
		return &ConfirmedState{}
	case ReservationCheckedIn:
		return &CheckedInState{}
	default:
		return &TerminalState{}
	}
}

// ApplyStatusOverride sets status directly, stamping the matching timestamp. It skips the
// transition rules and is reserved for privileged amendments.
func ApplyStatusOverride(r *Reservation, status ReservationStatus, at time.Time) {
	r.Status = status
	switch status {
	case ReservationCheckedIn:
		r.CheckedInAt = &at
	case ReservationCheckedOut:
		r.CheckedOutAt = &at
	case ReservationCancelled:
		r.CancelledAt = &at
	}
}
