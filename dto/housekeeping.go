package dto

import (
	"hotelpms/commands"
	"hotelpms/models"
)

type CreateTaskRequest struct {
	RoomID           uint   `json:"roomId"`
	Type             string `json:"type" example:"maintenance"`
	Priority         string `json:"priority" example:"high"`
	Description      string `json:"description"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
	AssignedTo       *uint  `json:"assignedTo"`
}

func (r CreateTaskRequest) ToCommand() commands.CreateTask {
	return commands.CreateTask{
		RoomID:           r.RoomID,
		Type:             models.TaskType(r.Type),
		Priority:         models.TaskPriority(r.Priority),
		Description:      r.Description,
		EstimatedMinutes: r.EstimatedMinutes,
		AssignedTo:       r.AssignedTo,
	}
}

type AssignTaskRequest struct {
	StaffID uint `json:"staffId" binding:"required"`
}

type TaskListQuery struct {
	RoomID     uint   `form:"roomId"`
	Status     string `form:"status"`
	Type       string `form:"type"`
	AssignedTo uint   `form:"assignedTo"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

func (q TaskListQuery) ToFilter() commands.TaskFilter {
	return commands.TaskFilter{
		RoomID:     q.RoomID,
		Status:     models.TaskStatus(q.Status),
		Type:       models.TaskType(q.Type),
		AssignedTo: q.AssignedTo,
		Page:       q.Page,
		Limit:      q.Limit,
	}
}
