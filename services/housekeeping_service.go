package services

import (
	"context"
	"fmt"
	"time"

	"hotelpms/commands"
	"hotelpms/constants"
	apperrors "hotelpms/errors"
	"hotelpms/metrics"
	"hotelpms/models"
	"hotelpms/services/logger"
	"hotelpms/services/notification"
	"hotelpms/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkOrderEmitter raises housekeeping work orders inside a reservation transaction.
type WorkOrderEmitter interface {
	EmitCleaningTask(ctx context.Context, tx *gorm.DB, roomID uint, reservationID *uint, createdBy *uint) (*models.HousekeepingTask, bool, error)
	TaskCreated(task *models.HousekeepingTask)
}

type HousekeepingService struct {
	db              *gorm.DB
	rooms           RoomInventory
	cache           *Cache
	logger          logger.Logger
	notifier        notification.Service
	cleaningMinutes int
	now             func() time.Time
}

type HousekeepingServiceOptions struct {
	DB              *gorm.DB
	Rooms           RoomInventory
	Cache           *Cache
	Logger          logger.Logger
	Notifier        notification.Service
	CleaningMinutes int
	Now             func() time.Time
}

func NewHousekeepingService(opts HousekeepingServiceOptions) *HousekeepingService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Notifier == nil {
		opts.Notifier = notification.NopService{}
	}
	if opts.CleaningMinutes <= 0 {
		opts.CleaningMinutes = constants.DefaultCleaningMinutes
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &HousekeepingService{
		db:              opts.DB,
		rooms:           opts.Rooms,
		cache:           opts.Cache,
		logger:          opts.Logger,
		notifier:        opts.Notifier,
		cleaningMinutes: opts.CleaningMinutes,
		now:             opts.Now,
	}
}

// EmitCleaningTask creates the pending post-departure cleaning order for a room. When the
// reservation already has an open cleaning task, that task is returned and created is false.
// Completed tasks are history; a later departure gets a fresh order.
func (s *HousekeepingService) EmitCleaningTask(ctx context.Context, tx *gorm.DB, roomID uint, reservationID *uint, createdBy *uint) (*models.HousekeepingTask, bool, error) {
	tx = tx.WithContext(ctx)
	if reservationID != nil {
		var existing models.HousekeepingTask
		err := tx.Where("reservation_id = ? AND type = ? AND status IN ?", *reservationID, models.TaskCleaning,
			[]models.TaskStatus{models.TaskPending, models.TaskInProgress}).
			Order("id DESC").First(&existing).Error
		if err == nil {
			return &existing, false, nil
		}
		if !isNotFound(err) {
			return nil, false, apperrors.Database("look up cleaning task", err)
		}
	}

	description := constants.PostDepartureCleaningLabel
	if reservationID != nil {
		description = fmt.Sprintf("%s for reservation #%d", constants.PostDepartureCleaningLabel, *reservationID)
	}
	task := models.HousekeepingTask{
		RoomID:           roomID,
		ReservationID:    reservationID,
		Type:             models.TaskCleaning,
		Priority:         models.PriorityNormal,
		Status:           models.TaskPending,
		Description:      description,
		EstimatedMinutes: s.cleaningMinutes,
		CreatedBy:        createdBy,
	}
	if err := tx.Create(&task).Error; err != nil {
		return nil, false, apperrors.Database("create cleaning task", err)
	}
	return &task, true, nil
}

// Create raises a manual work order.
func (s *HousekeepingService) Create(ctx context.Context, actor models.Actor, cmd commands.CreateTask) (*models.HousekeepingTask, error) {
	if err := validator.ValidateStruct(cmd); err != nil {
		return nil, err
	}
	if cmd.Priority == "" {
		cmd.Priority = models.PriorityNormal
	}
	task := models.HousekeepingTask{
		RoomID:           cmd.RoomID,
		Type:             cmd.Type,
		Priority:         cmd.Priority,
		Status:           models.TaskPending,
		Description:      cmd.Description,
		EstimatedMinutes: cmd.EstimatedMinutes,
		AssignedTo:       cmd.AssignedTo,
		CreatedBy:        actor.StaffRef(),
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.rooms.GetRoom(ctx, tx, cmd.RoomID); err != nil {
			return err
		}
		if cmd.AssignedTo != nil {
			if err := s.ensureStaff(tx, *cmd.AssignedTo); err != nil {
				return err
			}
		}
		if err := tx.Create(&task).Error; err != nil {
			return apperrors.Database("create task", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.TaskCreated(&task)
	return &task, nil
}

// TaskCreated records and broadcasts a new task once its transaction committed.
func (s *HousekeepingService) TaskCreated(task *models.HousekeepingTask) {
	metrics.IncHousekeepingTask(string(task.Type), "created")
	s.publish(constants.EventTaskCreated, task)
}

func (s *HousekeepingService) Get(ctx context.Context, id uint) (*models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	if err := s.db.WithContext(ctx).Preload("Room").First(&task, id).Error; err != nil {
		return nil, taskLoadError(id, err)
	}
	return &task, nil
}

func (s *HousekeepingService) List(ctx context.Context, filter commands.TaskFilter) ([]models.HousekeepingTask, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.HousekeepingTask{})
	if filter.RoomID != 0 {
		q = q.Where("room_id = ?", filter.RoomID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.AssignedTo != 0 {
		q = q.Where("assigned_to = ?", filter.AssignedTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Database("count tasks", err)
	}
	page, limit := NormalizePage(filter.Page, filter.Limit)
	var tasks []models.HousekeepingTask
	if err := q.Preload("Room").Order("created_at DESC, id DESC").Offset(page * limit).Limit(limit).Find(&tasks).Error; err != nil {
		return nil, 0, apperrors.Database("list tasks", err)
	}
	return tasks, total, nil
}

func (s *HousekeepingService) Assign(ctx context.Context, actor models.Actor, id uint, staffID uint) (*models.HousekeepingTask, error) {
	return s.mutate(ctx, id, func(tx *gorm.DB, task *models.HousekeepingTask) error {
		if task.Status == models.TaskCompleted {
			return apperrors.InvalidTransition("cannot assign a completed task")
		}
		if err := s.ensureStaff(tx, staffID); err != nil {
			return err
		}
		task.AssignedTo = &staffID
		return nil
	})
}

// Start moves a pending task to in_progress, assigning it to the actor if unassigned.
func (s *HousekeepingService) Start(ctx context.Context, actor models.Actor, id uint) (*models.HousekeepingTask, error) {
	return s.mutate(ctx, id, func(tx *gorm.DB, task *models.HousekeepingTask) error {
		if task.Status != models.TaskPending {
			return apperrors.InvalidTransition(fmt.Sprintf("cannot start a task in status %s", task.Status))
		}
		now := s.now()
		task.Status = models.TaskInProgress
		task.StartedAt = &now
		if task.AssignedTo == nil {
			task.AssignedTo = actor.StaffRef()
		}
		return nil
	})
}

// Complete closes a task. Completing a cleaning task is the only way a dirty room
// becomes available again; other task types leave the room untouched.
func (s *HousekeepingService) Complete(ctx context.Context, actor models.Actor, id uint) (*models.HousekeepingTask, error) {
	task, err := s.mutate(ctx, id, func(tx *gorm.DB, task *models.HousekeepingTask) error {
		if task.Status == models.TaskCompleted {
			return apperrors.InvalidTransition("task already completed")
		}
		now := s.now()
		task.Status = models.TaskCompleted
		task.CompletedAt = &now
		if task.StartedAt == nil {
			task.StartedAt = &now
		}
		if task.Type != models.TaskCleaning {
			return nil
		}
		room, err := s.rooms.LockRoom(ctx, tx, task.RoomID)
		if err != nil {
			return err
		}
		if room.Status != models.RoomStatusDirty {
			s.logger.Debug("room %s is %s, leaving status after cleaning task %d", room.Number, room.Status, task.ID)
			return nil
		}
		return s.rooms.SetRoomStatus(ctx, tx, room.ID, models.RoomStatusAvailable)
	})
	if err != nil {
		return nil, err
	}
	metrics.IncHousekeepingTask(string(task.Type), "completed")
	// Cached reservations embed the room.
	s.cache.DeletePattern(ctx, constants.CacheReservationPattern)
	s.cache.DeletePattern(ctx, constants.CacheReportPattern)
	s.publish(constants.EventTaskCompleted, task)
	s.logger.Info("task %d (%s) on room %d completed by staff %d", task.ID, task.Type, task.RoomID, actor.StaffID)
	return task, nil
}

func (s *HousekeepingService) mutate(ctx context.Context, id uint, fn func(tx *gorm.DB, task *models.HousekeepingTask) error) (*models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&task, id).Error; err != nil {
			return taskLoadError(id, err)
		}
		if err := fn(tx, &task); err != nil {
			return err
		}
		if err := tx.Save(&task).Error; err != nil {
			return apperrors.Database("save task", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *HousekeepingService) ensureStaff(tx *gorm.DB, staffID uint) error {
	var count int64
	if err := tx.Model(&models.Staff{}).Where("id = ? AND active = ?", staffID, true).Count(&count).Error; err != nil {
		return apperrors.Database("look up staff", err)
	}
	if count == 0 {
		return apperrors.NotFound(fmt.Sprintf("staff %d not found", staffID))
	}
	return nil
}

func (s *HousekeepingService) publish(event string, task *models.HousekeepingTask) {
	msg, err := notification.NewMessageBuilder(event).Task(task.ID).Room(task.RoomID).Data(task).Build()
	if err != nil {
		s.logger.Error("build %s event: %v", event, err)
		return
	}
	if err := s.notifier.SendMessage(msg); err != nil {
		s.logger.Error("send %s event: %v", event, err)
	}
}

func taskLoadError(id uint, err error) error {
	if isNotFound(err) {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, fmt.Sprintf("task %d not found", id), apperrors.ErrTaskNotFound)
	}
	return apperrors.Database("load task", err)
}

// NormalizePage applies the paging defaults and caps limit at constants.MaxLimit.
func NormalizePage(page, limit int) (int, int) {
	if page < 0 {
		page = constants.DefaultPage
	}
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	return page, limit
}
