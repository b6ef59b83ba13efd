package builders

import (
	"hotelpms/models"
)

// ReservationBuilder assembles a reservation step by step.
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder starts a reservation in status confirmed with nothing paid.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{
			Status: models.ReservationConfirmed,
			Source: models.SourceWalkIn,
		},
	}
}

func (b *ReservationBuilder) WithGuest(guestID uint) *ReservationBuilder {
	b.reservation.GuestID = guestID
	return b
}

// WithRoom records the room and snapshots its current base rate.
func (b *ReservationBuilder) WithRoom(room *models.Room) *ReservationBuilder {
	b.reservation.RoomID = room.ID
	b.reservation.RoomRate = room.BaseRate
	return b
}

func (b *ReservationBuilder) WithStay(stay models.StayRange) *ReservationBuilder {
	b.reservation.CheckInDate = stay.CheckIn
	b.reservation.CheckOutDate = stay.CheckOut
	return b
}

func (b *ReservationBuilder) WithGuests(count int) *ReservationBuilder {
	b.reservation.NumberOfGuests = count
	return b
}

// WithPricing sets the derived nights and total.
func (b *ReservationBuilder) WithPricing(nights int, total float64) *ReservationBuilder {
	b.reservation.NumberOfNights = nights
	b.reservation.TotalAmount = total
	return b
}

func (b *ReservationBuilder) WithConfirmation(number string) *ReservationBuilder {
	b.reservation.ConfirmationNumber = number
	return b
}

func (b *ReservationBuilder) WithRequests(specialRequests, notes string) *ReservationBuilder {
	b.reservation.SpecialRequests = specialRequests
	b.reservation.Notes = notes
	return b
}

func (b *ReservationBuilder) WithSource(source models.BookingSource) *ReservationBuilder {
	if source != "" {
		b.reservation.Source = source
	}
	return b
}

func (b *ReservationBuilder) CreatedBy(staffID *uint) *ReservationBuilder {
	b.reservation.CreatedBy = staffID
	return b
}

func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
