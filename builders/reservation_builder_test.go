package builders

import (
	"testing"
	"time"

	"hotelpms/models"

	"github.com/stretchr/testify/assert"
)

func TestReservationBuilder(t *testing.T) {
	staff := uint(2)
	room := &models.Room{ID: 5, BaseRate: 120}
	stay := models.StayRange{
		CheckIn:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}

	r := NewReservationBuilder().
		WithGuest(9).
		WithRoom(room).
		WithStay(stay).
		WithGuests(2).
		WithPricing(2, 240).
		WithConfirmation("HTLTEST01").
		WithRequests("late arrival", "VIP").
		WithSource(models.SourcePhone).
		CreatedBy(&staff).
		Build()

	assert.Equal(t, models.ReservationConfirmed, r.Status)
	assert.Equal(t, uint(9), r.GuestID)
	assert.Equal(t, uint(5), r.RoomID)
	assert.Equal(t, 120.0, r.RoomRate)
	assert.Equal(t, 2, r.NumberOfNights)
	assert.Equal(t, 240.0, r.TotalAmount)
	assert.Zero(t, r.PaidAmount)
	assert.Equal(t, "HTLTEST01", r.ConfirmationNumber)
	assert.Equal(t, models.SourcePhone, r.Source)
	assert.Equal(t, &staff, r.CreatedBy)

	room.BaseRate = 150
	assert.Equal(t, 120.0, r.RoomRate)
}

func TestReservationBuilder_DefaultSource(t *testing.T) {
	r := NewReservationBuilder().WithSource("").Build()
	assert.Equal(t, models.SourceWalkIn, r.Source)
	assert.Nil(t, r.CreatedBy)
}
