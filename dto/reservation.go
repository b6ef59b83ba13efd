package dto

import (
	"fmt"
	"strings"

	"hotelpms/commands"
	apperrors "hotelpms/errors"
	"hotelpms/models"
)

// CreateReservationRequest is the body of POST /reservations. Dates are yyyy-mm-dd.
type CreateReservationRequest struct {
	GuestID         uint   `json:"guestId" example:"12"`
	RoomID          uint   `json:"roomId" example:"3"`
	CheckInDate     string `json:"checkInDate" example:"2024-01-01"`
	CheckOutDate    string `json:"checkOutDate" example:"2024-01-03"`
	NumberOfGuests  int    `json:"numberOfGuests" example:"2"`
	SpecialRequests string `json:"specialRequests"`
	Notes           string `json:"notes"`
	Source          string `json:"source" example:"website"`
}

func (r CreateReservationRequest) ToCommand() (commands.CreateReservation, error) {
	checkIn, err := parseRequiredDate("checkInDate", r.CheckInDate)
	if err != nil {
		return commands.CreateReservation{}, err
	}
	checkOut, err := parseRequiredDate("checkOutDate", r.CheckOutDate)
	if err != nil {
		return commands.CreateReservation{}, err
	}
	return commands.CreateReservation{
		GuestID:         r.GuestID,
		RoomID:          r.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: r.SpecialRequests,
		Notes:           r.Notes,
		Source:          models.BookingSource(r.Source),
	}, nil
}

// AmendReservationRequest is the body of PATCH /reservations/:id. Omitted fields stay as they are.
type AmendReservationRequest struct {
	CheckInDate     *string  `json:"checkInDate,omitempty"`
	CheckOutDate    *string  `json:"checkOutDate,omitempty"`
	NumberOfGuests  *int     `json:"numberOfGuests,omitempty"`
	Status          *string  `json:"status,omitempty"`
	PaidAmount      *float64 `json:"paidAmount,omitempty"`
	SpecialRequests *string  `json:"specialRequests,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	Source          *string  `json:"source,omitempty"`
}

func (r AmendReservationRequest) ToCommand() (commands.AmendReservation, error) {
	cmd := commands.AmendReservation{
		NumberOfGuests:  r.NumberOfGuests,
		PaidAmount:      r.PaidAmount,
		SpecialRequests: r.SpecialRequests,
		Notes:           r.Notes,
	}
	if r.CheckInDate != nil {
		d, err := parseRequiredDate("checkInDate", *r.CheckInDate)
		if err != nil {
			return cmd, err
		}
		cmd.CheckInDate = &d
	}
	if r.CheckOutDate != nil {
		d, err := parseRequiredDate("checkOutDate", *r.CheckOutDate)
		if err != nil {
			return cmd, err
		}
		cmd.CheckOutDate = &d
	}
	if r.Status != nil {
		st := models.ReservationStatus(*r.Status)
		cmd.Status = &st
	}
	if r.Source != nil {
		src := models.BookingSource(*r.Source)
		cmd.Source = &src
	}
	return cmd, nil
}

type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

type CheckOutResponse struct {
	Reservation  *models.Reservation      `json:"reservation"`
	CleaningTask *models.HousekeepingTask `json:"cleaningTask"`
}

// ReservationListQuery binds the query string of GET /reservations.
type ReservationListQuery struct {
	Status  string `form:"status"`
	RoomID  uint   `form:"roomId"`
	GuestID uint   `form:"guestId"`
	From    string `form:"from"`
	To      string `form:"to"`
	Guest   string `form:"guest"`
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
}

func (q ReservationListQuery) ToFilter() (commands.ReservationFilter, error) {
	filter := commands.ReservationFilter{
		Status:     models.ReservationStatus(q.Status),
		RoomID:     q.RoomID,
		GuestID:    q.GuestID,
		GuestQuery: strings.TrimSpace(q.Guest),
		Page:       q.Page,
		Limit:      q.Limit,
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return filter, apperrors.Validation(fmt.Sprintf("unknown status %q", q.Status))
	}
	if q.From != "" {
		d, err := parseRequiredDate("from", q.From)
		if err != nil {
			return filter, err
		}
		filter.From = &d
	}
	if q.To != "" {
		d, err := parseRequiredDate("to", q.To)
		if err != nil {
			return filter, err
		}
		filter.To = &d
	}
	return filter, nil
}
