package controllers

import (
	"hotelpms/dto"
	"hotelpms/response"
	"hotelpms/services"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) ReservationController {
	return ReservationController{Service: service}
}

// CreateReservation godoc
// @Summary Book a room
// @Tags reservations
// @Accept json
// @Produce json
// @Param body body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} response.Response{data=models.Reservation}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /reservations [post]
func (r ReservationController) CreateReservation(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		response.FromError(c, err)
		return
	}
	reservation, err := r.Service.Create(c.Request.Context(), actor, cmd)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, reservation)
}

// GetReservations godoc
// @Summary List reservations
// @Tags reservations
// @Produce json
// @Param status query string false "confirmed, checked_in, checked_out or cancelled"
// @Param roomId query int false "Room id"
// @Param guestId query int false "Guest id"
// @Param from query string false "Stays ending after this day"
// @Param to query string false "Stays starting before this day"
// @Param guest query string false "Fuzzy guest name or email"
// @Param page query int false "Page, from 0"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response{data=[]models.Reservation}
// @Security BearerAuth
// @Router /reservations [get]
func (r ReservationController) GetReservations(c *gin.Context) {
	var q dto.ReservationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query")
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		response.FromError(c, err)
		return
	}
	reservations, total, err := r.Service.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	page, limit := services.NormalizePage(filter.Page, filter.Limit)
	response.SuccessWithPagination(c, reservations, page, limit, total)
}

// GetReservation godoc
// @Summary Get a reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation id"
// @Success 200 {object} response.Response{data=models.Reservation}
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /reservations/{id} [get]
func (r ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reservation, err := r.Service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, reservation)
}

// @Summary Find a reservation by confirmation number
// @Tags reservations
// @Produce json
// @Param number path string true "Confirmation number"
// @Success 200 {object} response.Response{data=models.Reservation}
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /reservations/confirmation/{number} [get]
func (r ReservationController) GetByConfirmation(c *gin.Context) {
	reservation, err := r.Service.GetByConfirmation(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, reservation)
}

// AmendReservation godoc
// @Summary Amend a reservation
// @Description Only supplied fields change. Changing a date reprices the stay; changing status directly requires a manager.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation id"
// @Param body body dto.AmendReservationRequest true "Changes"
// @Success 200 {object} response.Response{data=models.Reservation}
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /reservations/{id} [patch]
func (r ReservationController) AmendReservation(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AmendReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		response.FromError(c, err)
		return
	}
	reservation, err := r.Service.Amend(c.Request.Context(), actor, id, cmd)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, reservation)
}

// @Summary Check a guest in
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation id"
// @Success 200 {object} response.Response{data=models.Reservation}
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /reservations/{id}/check-in [post]
func (r ReservationController) CheckIn(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	reservation, err := r.Service.CheckIn(c.Request.Context(), actor, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, reservation)
}

// @Summary Check a guest out
// @Description Marks the room dirty and raises a cleaning task.
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation id"
// @Success 200 {object} response.Response{data=dto.CheckOutResponse}
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /reservations/{id}/check-out [post]
func (r ReservationController) CheckOut(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	reservation, task, err := r.Service.CheckOut(c.Request.Context(), actor, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.CheckOutResponse{Reservation: reservation, CleaningTask: task})
}

// @Summary Cancel a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation id"
// @Param body body dto.CancelReservationRequest false "Reason"
// @Success 200 {object} response.Response{data=models.Reservation}
// @Failure 403 {object} response.Response
// @Security BearerAuth
// @Router /reservations/{id}/cancel [post]
func (r ReservationController) Cancel(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CancelReservationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "invalid request body")
			return
		}
	}
	reservation, err := r.Service.Cancel(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, reservation)
}

// @Summary Delete a reservation
// @Tags reservations
// @Param id path int true "Reservation id"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Security BearerAuth
// @Router /reservations/{id} [delete]
func (r ReservationController) DeleteReservation(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := r.Service.Delete(c.Request.Context(), actor, id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}
