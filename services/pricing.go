package services

import (
	"math"
	"time"

	apperrors "hotelpms/errors"
	"hotelpms/models"
)

// Nights counts the calendar nights between checkIn and checkOut. Times of day are
// ignored so timezone offsets never produce fractional nights.
func Nights(checkIn, checkOut time.Time) (int, error) {
	stay := models.NewStayRange(checkIn, checkOut)
	if !stay.Valid() {
		return 0, apperrors.Validation("checkOutDate must be after checkInDate")
	}
	nights := stay.Nights()
	if nights < 1 {
		nights = 1
	}
	return nights, nil
}

// Total is nights × rate, rounded to cents.
func Total(nights int, rate float64) float64 {
	return math.Round(float64(nights)*rate*100) / 100
}
