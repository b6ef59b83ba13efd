package controllers

import (
	"hotelpms/dto"
	"hotelpms/response"
	"hotelpms/services"

	"github.com/gin-gonic/gin"
)

type HousekeepingController struct {
	Service *services.HousekeepingService
}

func NewHousekeepingController(service *services.HousekeepingService) HousekeepingController {
	return HousekeepingController{Service: service}
}

// @Summary List housekeeping tasks
// @Tags housekeeping
// @Produce json
// @Param roomId query int false "Room id"
// @Param status query string false "pending, in_progress or completed"
// @Param type query string false "Task type"
// @Param assignedTo query int false "Staff id"
// @Param page query int false "Page, from 0"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response{data=[]models.HousekeepingTask}
// @Security BearerAuth
// @Router /housekeeping/tasks [get]
func (h HousekeepingController) GetTasks(c *gin.Context) {
	var q dto.TaskListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query")
		return
	}
	filter := q.ToFilter()
	tasks, total, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	page, limit := services.NormalizePage(filter.Page, filter.Limit)
	response.SuccessWithPagination(c, tasks, page, limit, total)
}

// @Summary Raise a housekeeping task
// @Tags housekeeping
// @Accept json
// @Produce json
// @Param body body dto.CreateTaskRequest true "Task"
// @Success 201 {object} response.Response{data=models.HousekeepingTask}
// @Security BearerAuth
// @Router /housekeeping/tasks [post]
func (h HousekeepingController) CreateTask(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	task, err := h.Service.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, task)
}

// @Summary Assign a task
// @Tags housekeeping
// @Accept json
// @Produce json
// @Param id path int true "Task id"
// @Param body body dto.AssignTaskRequest true "Assignee"
// @Success 200 {object} response.Response{data=models.HousekeepingTask}
// @Security BearerAuth
// @Router /housekeeping/tasks/{id}/assign [put]
func (h HousekeepingController) AssignTask(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "staffId is required")
		return
	}
	task, err := h.Service.Assign(c.Request.Context(), actor, id, req.StaffID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, task)
}

// @Summary Start a task
// @Tags housekeeping
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} response.Response{data=models.HousekeepingTask}
// @Security BearerAuth
// @Router /housekeeping/tasks/{id}/start [post]
func (h HousekeepingController) StartTask(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := h.Service.Start(c.Request.Context(), actor, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, task)
}

// CompleteTask godoc
// @Summary Complete a task
// @Description Completing a cleaning task makes a dirty room available again.
// @Tags housekeeping
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} response.Response{data=models.HousekeepingTask}
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /housekeeping/tasks/{id}/complete [post]
func (h HousekeepingController) CompleteTask(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := h.Service.Complete(c.Request.Context(), actor, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, task)
}
