package models

import (
	"time"
)

type ReservationStatus string

const (
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

// ActiveStatuses hold the room and take part in overlap checks.
var ActiveStatuses = []ReservationStatus{ReservationConfirmed, ReservationCheckedIn}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationConfirmed, ReservationCheckedIn, ReservationCheckedOut, ReservationCancelled:
		return true
	}
	return false
}

func (s ReservationStatus) Active() bool {
	return s == ReservationConfirmed || s == ReservationCheckedIn
}

type BookingSource string

const (
	SourceWalkIn  BookingSource = "walk_in"
	SourcePhone   BookingSource = "phone"
	SourceWebsite BookingSource = "website"
	SourceOTA     BookingSource = "ota"
	SourceEmail   BookingSource = "email"
)

type Reservation struct {
	ID                 uint              `json:"id" gorm:"primaryKey"`
	ConfirmationNumber string            `json:"confirmationNumber" gorm:"uniqueIndex;size:32;not null"`
	GuestID            uint              `json:"guestId" gorm:"not null;index"`
	Guest              *Guest            `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
	RoomID             uint              `json:"roomId" gorm:"not null;index:idx_reservation_room_dates,priority:1"`
	Room               *Room             `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	CheckInDate        time.Time         `json:"checkInDate" gorm:"type:date;not null;index:idx_reservation_room_dates,priority:2"`
	CheckOutDate       time.Time         `json:"checkOutDate" gorm:"type:date;not null;index:idx_reservation_room_dates,priority:3"`
	NumberOfGuests     int               `json:"numberOfGuests" gorm:"not null;default:1"`
	NumberOfNights     int               `json:"numberOfNights" gorm:"not null"`
	RoomRate           float64           `json:"roomRate" gorm:"not null"`
	TotalAmount        float64           `json:"totalAmount" gorm:"not null"`
	PaidAmount         float64           `json:"paidAmount" gorm:"not null;default:0"`
	Status             ReservationStatus `json:"status" gorm:"size:16;not null;index"`
	SpecialRequests    string            `json:"specialRequests" gorm:"type:text"`
	Notes              string            `json:"notes" gorm:"type:text"`
	Source             BookingSource     `json:"source" gorm:"size:16;not null;default:walk_in"`
	CreatedBy          *uint             `json:"createdBy"`
	CreatedAt          time.Time         `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt          time.Time         `json:"updatedAt" gorm:"autoUpdateTime"`
	CheckedInAt        *time.Time        `json:"checkedInAt"`
	CheckedOutAt       *time.Time        `json:"checkedOutAt"`
	CancelledAt        *time.Time        `json:"cancelledAt"`
}

func (r *Reservation) Stay() StayRange {
	return NewStayRange(r.CheckInDate, r.CheckOutDate)
}
