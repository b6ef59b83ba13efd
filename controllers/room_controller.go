package controllers

import (
	"hotelpms/dto"
	"hotelpms/models"
	"hotelpms/response"
	"hotelpms/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) RoomController {
	return RoomController{Service: service}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param status query string false "Room status"
// @Param type query string false "Room type"
// @Success 200 {object} response.Response{data=[]models.Room}
// @Security BearerAuth
// @Router /rooms [get]
func (r RoomController) GetRooms(c *gin.Context) {
	rooms, err := r.Service.List(c.Request.Context(), models.RoomStatus(c.Query("status")), models.RoomType(c.Query("type")))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, rooms)
}

// @Summary Get a room
// @Tags rooms
// @Produce json
// @Param id path int true "Room id"
// @Success 200 {object} response.Response{data=models.Room}
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /rooms/{id} [get]
func (r RoomController) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := r.Service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, room)
}

// GetAvailability godoc
// @Summary Rooms free for a stay
// @Tags rooms
// @Produce json
// @Param checkIn query string true "Arrival day"
// @Param checkOut query string true "Departure day"
// @Param type query string false "Room type, matched loosely"
// @Param guests query int false "Party size"
// @Success 200 {object} response.Response{data=[]models.Room}
// @Security BearerAuth
// @Router /rooms/availability [get]
func (r RoomController) GetAvailability(c *gin.Context) {
	var q dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query")
		return
	}
	query, err := q.ToCommand()
	if err != nil {
		response.FromError(c, err)
		return
	}
	rooms, err := r.Service.Available(c.Request.Context(), query)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, rooms)
}

// @Summary Take a room out of service or put it back
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room id"
// @Param body body dto.RoomStatusRequest true "available, maintenance or blocked"
// @Success 200 {object} response.Response{data=models.Room}
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /rooms/{id}/status [put]
func (r RoomController) ChangeRoomStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status is required")
		return
	}
	room, err := r.Service.SetManualStatus(c.Request.Context(), actor, id, models.RoomStatus(req.Status))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, room)
}
