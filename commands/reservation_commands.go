package commands

import (
	"time"

	apperrors "hotelpms/errors"
	"hotelpms/models"
	"hotelpms/utils"
	"hotelpms/validator"
)

// CreateReservation is the validated input of a booking.
type CreateReservation struct {
	GuestID         uint                 `validate:"required"`
	RoomID          uint                 `validate:"required"`
	CheckInDate     time.Time            `validate:"required"`
	CheckOutDate    time.Time            `validate:"required"`
	NumberOfGuests  int                  `validate:"required,gte=1"`
	SpecialRequests string               `validate:"max=2000"`
	Notes           string               `validate:"max=2000"`
	Source          models.BookingSource `validate:"omitempty,oneof=walk_in phone website ota email"`
}

func (c *CreateReservation) Normalize() {
	c.CheckInDate = utils.DateOnly(c.CheckInDate)
	c.CheckOutDate = utils.DateOnly(c.CheckOutDate)
	if c.Source == "" {
		c.Source = models.SourceWalkIn
	}
}

func (c *CreateReservation) Stay() models.StayRange {
	return models.NewStayRange(c.CheckInDate, c.CheckOutDate)
}

func (c *CreateReservation) Validate() error {
	c.Normalize()
	if err := validator.ValidateStruct(c); err != nil {
		return err
	}
	if !c.Stay().Valid() {
		return apperrors.Validation("checkOutDate must be after checkInDate")
	}
	return nil
}

// AmendReservation carries a partial update; nil fields are left untouched.
type AmendReservation struct {
	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	NumberOfGuests  *int                      `validate:"omitempty,gte=1"`
	Status          *models.ReservationStatus `validate:"omitempty,reservationstatus"`
	PaidAmount      *float64                  `validate:"omitempty,gte=0"`
	SpecialRequests *string                   `validate:"omitempty,max=2000"`
	Notes           *string                   `validate:"omitempty,max=2000"`
	Source          *models.BookingSource     `validate:"omitempty,oneof=walk_in phone website ota email"`
}

func (c *AmendReservation) Validate() error {
	if c.CheckInDate != nil {
		d := utils.DateOnly(*c.CheckInDate)
		c.CheckInDate = &d
	}
	if c.CheckOutDate != nil {
		d := utils.DateOnly(*c.CheckOutDate)
		c.CheckOutDate = &d
	}
	if err := validator.ValidateStruct(c); err != nil {
		return err
	}
	if c.Empty() {
		return apperrors.Validation("nothing to update")
	}
	return nil
}

func (c *AmendReservation) DatesChanged() bool {
	return c.CheckInDate != nil || c.CheckOutDate != nil
}

func (c *AmendReservation) Empty() bool {
	return c.CheckInDate == nil && c.CheckOutDate == nil && c.NumberOfGuests == nil &&
		c.Status == nil && c.PaidAmount == nil && c.SpecialRequests == nil &&
		c.Notes == nil && c.Source == nil
}

// ReservationFilter narrows reservation listings.
type ReservationFilter struct {
	Status     models.ReservationStatus
	RoomID     uint
	GuestID    uint
	From       *time.Time
	To         *time.Time
	GuestQuery string
	Page       int
	Limit      int
}
