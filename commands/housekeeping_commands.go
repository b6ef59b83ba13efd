package commands

import "hotelpms/models"

// CreateTask raises a manual work order.
type CreateTask struct {
	RoomID           uint                `validate:"required"`
	Type             models.TaskType     `validate:"required,tasktype"`
	Priority         models.TaskPriority `validate:"omitempty,oneof=low normal high urgent"`
	Description      string              `validate:"max=2000"`
	EstimatedMinutes int                 `validate:"gte=0,lte=1440"`
	AssignedTo       *uint
}

type TaskFilter struct {
	RoomID     uint
	Status     models.TaskStatus
	Type       models.TaskType
	AssignedTo uint
	Page       int
	Limit      int
}

// AvailabilityQuery asks for rooms free over a stay.
type AvailabilityQuery struct {
	Stay           models.StayRange
	RoomType       string
	NumberOfGuests int
}
