package models

import (
	"math"
	"time"

	"hotelpms/utils"
)

// StayRange is the half-open interval [CheckIn, CheckOut) of nights a room is held.
type StayRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) StayRange {
	return StayRange{CheckIn: utils.DateOnly(checkIn), CheckOut: utils.DateOnly(checkOut)}
}

func (s StayRange) Valid() bool {
	return s.CheckOut.After(s.CheckIn)
}

// Nights counts calendar nights, rounding partial days up.
func (s StayRange) Nights() int {
	days := s.CheckOut.Sub(s.CheckIn).Hours() / 24
	return int(math.Ceil(days))
}

// Overlaps is the single intersection test for stays. Back-to-back stays, where one
// checks out the day the other checks in, do not overlap.
func (s StayRange) Overlaps(other StayRange) bool {
	return s.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(s.CheckOut)
}
