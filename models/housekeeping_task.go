package models

import "time"

type TaskType string

const (
	TaskCleaning    TaskType = "cleaning"
	TaskMaintenance TaskType = "maintenance"
	TaskInspection  TaskType = "inspection"
	TaskTurndown    TaskType = "turndown"
)

func (t TaskType) Valid() bool {
	switch t {
	case TaskCleaning, TaskMaintenance, TaskInspection, TaskTurndown:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityNormal TaskPriority = "normal"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// HousekeepingTask is a work order against a room. Tasks raised by a reservation event
// carry its id. A reservation holds at most one open cleaning task at a time.
type HousekeepingTask struct {
	ID               uint         `json:"id" gorm:"primaryKey"`
	RoomID           uint         `json:"roomId" gorm:"not null;index"`
	Room             *Room        `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	ReservationID    *uint        `json:"reservationId" gorm:"index:idx_task_reservation_type"`
	Type             TaskType     `json:"type" gorm:"size:16;not null;index:idx_task_reservation_type"`
	Priority         TaskPriority `json:"priority" gorm:"size:16;not null;default:normal"`
	Status           TaskStatus   `json:"status" gorm:"size:16;not null;default:pending;index"`
	AssignedTo       *uint        `json:"assignedTo"`
	Description      string       `json:"description" gorm:"type:text"`
	EstimatedMinutes int          `json:"estimatedMinutes"`
	CreatedBy        *uint        `json:"createdBy"`
	StartedAt        *time.Time   `json:"startedAt"`
	CompletedAt      *time.Time   `json:"completedAt"`
	CreatedAt        time.Time    `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time    `json:"updatedAt" gorm:"autoUpdateTime"`
}
