package dto

import (
	"hotelpms/commands"
	"hotelpms/models"
)

// AvailabilityQuery binds GET /rooms/availability. Type is free text ("dlx", "Suite").
type AvailabilityQuery struct {
	CheckInDate    string `form:"checkIn"`
	CheckOutDate   string `form:"checkOut"`
	Type           string `form:"type"`
	NumberOfGuests int    `form:"guests"`
}

func (q AvailabilityQuery) ToCommand() (commands.AvailabilityQuery, error) {
	checkIn, err := parseRequiredDate("checkIn", q.CheckInDate)
	if err != nil {
		return commands.AvailabilityQuery{}, err
	}
	checkOut, err := parseRequiredDate("checkOut", q.CheckOutDate)
	if err != nil {
		return commands.AvailabilityQuery{}, err
	}
	return commands.AvailabilityQuery{
		Stay:           models.NewStayRange(checkIn, checkOut),
		RoomType:       q.Type,
		NumberOfGuests: q.NumberOfGuests,
	}, nil
}

type RoomStatusRequest struct {
	Status string `json:"status" binding:"required" example:"maintenance"`
}
