package services

import (
	"context"
	"fmt"

	"hotelpms/commands"
	"hotelpms/constants"
	apperrors "hotelpms/errors"
	"hotelpms/models"
	"hotelpms/services/logger"
	"hotelpms/services/notification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomInventory is what the reservation and housekeeping flows need from room
// management. tx is the transaction of the calling operation.
type RoomInventory interface {
	GetRoom(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
	LockRoom(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
	SetRoomStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus) error
}

type RoomService struct {
	db       *gorm.DB
	cache    *Cache
	logger   logger.Logger
	notifier notification.Service
}

type RoomServiceOptions struct {
	DB       *gorm.DB
	Cache    *Cache
	Logger   logger.Logger
	Notifier notification.Service
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Notifier == nil {
		opts.Notifier = notification.NopService{}
	}
	return &RoomService{db: opts.DB, cache: opts.Cache, logger: opts.Logger, notifier: opts.Notifier}
}

func (s *RoomService) GetRoom(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	return s.loadRoom(tx.WithContext(ctx), id)
}

// LockRoom loads the room holding a row lock until tx ends. Every reservation write for a
// room goes through this lock, which serialises overlap checks per room.
func (s *RoomService) LockRoom(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	return s.loadRoom(tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (s *RoomService) loadRoom(q *gorm.DB, id uint) (*models.Room, error) {
	var room models.Room
	if err := q.First(&room, id).Error; err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, fmt.Sprintf("room %d not found", id), apperrors.ErrRoomNotFound)
		}
		return nil, apperrors.Database("load room", err)
	}
	return &room, nil
}

func (s *RoomService) SetRoomStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus) error {
	res := tx.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return apperrors.Database("update room status", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, fmt.Sprintf("room %d not found", id), apperrors.ErrRoomNotFound)
	}
	return nil
}

func (s *RoomService) Get(ctx context.Context, id uint) (*models.Room, error) {
	return s.GetRoom(ctx, s.db, id)
}

func (s *RoomService) List(ctx context.Context, status models.RoomStatus, roomType models.RoomType) ([]models.Room, error) {
	q := s.db.WithContext(ctx).Model(&models.Room{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if roomType != "" {
		q = q.Where("type = ?", roomType)
	}
	var rooms []models.Room
	if err := q.Order("number").Find(&rooms).Error; err != nil {
		return nil, apperrors.Database("list rooms", err)
	}
	return rooms, nil
}

// Available lists bookable rooms with no active reservation intersecting the stay.
// The SQL predicate is the half-open test of models.StayRange.Overlaps.
func (s *RoomService) Available(ctx context.Context, query commands.AvailabilityQuery) ([]models.Room, error) {
	if !query.Stay.Valid() {
		return nil, apperrors.Validation("checkOutDate must be after checkInDate")
	}
	q := s.db.WithContext(ctx).Model(&models.Room{}).
		Where("status NOT IN ?", []string{string(models.RoomStatusMaintenance), string(models.RoomStatusBlocked)}).
		Where("NOT EXISTS (?)", s.db.Model(&models.Reservation{}).
			Select("1").
			Where("reservations.room_id = rooms.id").
			Where("reservations.status IN ?", activeStatuses()).
			Where("reservations.check_in_date < ? AND reservations.check_out_date > ?", query.Stay.CheckOut, query.Stay.CheckIn))
	if query.RoomType != "" {
		roomType, ok := ParseRoomType(query.RoomType)
		if !ok {
			return nil, apperrors.Validation(fmt.Sprintf("unknown room type %q", query.RoomType))
		}
		q = q.Where("type = ?", roomType)
	}
	if query.NumberOfGuests > 0 {
		q = q.Where("max_occupancy >= ?", query.NumberOfGuests)
	}
	var rooms []models.Room
	if err := q.Order("base_rate, number").Find(&rooms).Error; err != nil {
		return nil, apperrors.Database("search availability", err)
	}
	return rooms, nil
}

// SetManualStatus lets managers take a room out of service or put it back. Occupied and
// dirty rooms only leave those states through check-out and cleaning.
func (s *RoomService) SetManualStatus(ctx context.Context, actor models.Actor, id uint, status models.RoomStatus) (*models.Room, error) {
	if !actor.HasRole(models.RoleManager, models.RoleAdmin) {
		return nil, apperrors.Unauthorized("changing room status requires a manager")
	}
	switch status {
	case models.RoomStatusAvailable, models.RoomStatusMaintenance, models.RoomStatusBlocked:
	default:
		return nil, apperrors.Validation(fmt.Sprintf("room status %q cannot be set manually", status))
	}

	var room *models.Room
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		room, err = s.LockRoom(ctx, tx, id)
		if err != nil {
			return err
		}
		if room.Status == models.RoomStatusOccupied || (room.Status == models.RoomStatusDirty && status == models.RoomStatusAvailable) {
			return apperrors.InvalidTransition(fmt.Sprintf("room %s is %s", room.Number, room.Status))
		}
		if err := s.SetRoomStatus(ctx, tx, id, status); err != nil {
			return err
		}
		room.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("room %s set to %s by staff %d", room.Number, status, actor.StaffID)
	// Cached reservations embed the room.
	s.cache.DeletePattern(ctx, constants.CacheReservationPattern)
	s.cache.DeletePattern(ctx, constants.CacheReportPattern)
	if msg, err := notification.NewMessageBuilder(constants.EventRoomStatusChanged).Room(room.ID).Data(room).Build(); err == nil {
		if err := s.notifier.SendMessage(msg); err != nil {
			s.logger.Error("notify room status: %v", err)
		}
	}
	return room, nil
}

func activeStatuses() []string {
	out := make([]string, len(models.ActiveStatuses))
	for i, st := range models.ActiveStatuses {
		out[i] = string(st)
	}
	return out
}
