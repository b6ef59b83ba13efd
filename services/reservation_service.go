package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotelpms/builders"
	"hotelpms/commands"
	"hotelpms/constants"
	apperrors "hotelpms/errors"
	"hotelpms/metrics"
	"hotelpms/models"
	"hotelpms/services/logger"
	"hotelpms/services/notification"
	"hotelpms/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const guestSearchLimit = 5000

type ReservationService struct {
	db                   *gorm.DB
	rooms                RoomInventory
	housekeeping         WorkOrderEmitter
	cache                *Cache
	notifier             notification.Service
	logger               logger.Logger
	now                  func() time.Time
	newConfirmation      func(time.Time) string
	repriceAtCurrentRate bool
}

type ReservationServiceOptions struct {
	DB           *gorm.DB
	Rooms        RoomInventory
	Housekeeping WorkOrderEmitter
	Cache        *Cache
	Notifier     notification.Service
	Logger       logger.Logger
	Now          func() time.Time
	// NewConfirmation defaults to NewConfirmationNumber.
	NewConfirmation func(time.Time) string
	// RepriceAtCurrentRate makes date amendments use the room's current base rate
	// instead of the rate snapshotted at booking.
	RepriceAtCurrentRate bool
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Notifier == nil {
		opts.Notifier = notification.NopService{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewConfirmation == nil {
		opts.NewConfirmation = NewConfirmationNumber
	}
	return &ReservationService{
		db:                   opts.DB,
		rooms:                opts.Rooms,
		housekeeping:         opts.Housekeeping,
		cache:                opts.Cache,
		notifier:             opts.Notifier,
		logger:               opts.Logger,
		now:                  opts.Now,
		newConfirmation:      opts.NewConfirmation,
		repriceAtCurrentRate: opts.RepriceAtCurrentRate,
	}
}

// Create books a room. The room row stays locked from the overlap check until the insert
// commits, so concurrent bookings of one room are checked one after the other.
func (s *ReservationService) Create(ctx context.Context, actor models.Actor, cmd commands.CreateReservation) (*models.Reservation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	stay := cmd.Stay()
	nights, err := Nights(stay.CheckIn, stay.CheckOut)
	if err != nil {
		return nil, err
	}

	var reservation *models.Reservation
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := s.rooms.LockRoom(ctx, tx, cmd.RoomID)
		if err != nil {
			return err
		}
		if err := s.ensureGuest(tx, cmd.GuestID); err != nil {
			return err
		}
		if room.MaxOccupancy > 0 && cmd.NumberOfGuests > room.MaxOccupancy {
			return apperrors.Validation(fmt.Sprintf("room %s holds at most %d guests", room.Number, room.MaxOccupancy))
		}
		if err := s.checkAvailability(tx, room.ID, stay, 0); err != nil {
			return err
		}

		reservation = builders.NewReservationBuilder().
			WithGuest(cmd.GuestID).
			WithRoom(room).
			WithStay(stay).
			WithGuests(cmd.NumberOfGuests).
			WithPricing(nights, Total(nights, room.BaseRate)).
			WithConfirmation(s.newConfirmation(s.now())).
			WithRequests(cmd.SpecialRequests, cmd.Notes).
			WithSource(cmd.Source).
			CreatedBy(actor.StaffRef()).
			Build()
		if err := tx.Create(reservation).Error; err != nil {
			return writeError("create reservation", err)
		}
		return nil
	})
	if err != nil {
		s.countConflict(err)
		return nil, err
	}

	metrics.IncReservationCreated(string(reservation.Source))
	s.logger.Info("reservation %s created for room %d (%s to %s) by staff %d",
		reservation.ConfirmationNumber, reservation.RoomID,
		utils.FormatDate(reservation.CheckInDate), utils.FormatDate(reservation.CheckOutDate), actor.StaffID)
	s.afterWrite(ctx, constants.EventReservationCreated, reservation)
	return reservation, nil
}

// CheckIn moves a confirmed reservation to checked_in and marks the room occupied.
func (s *ReservationService) CheckIn(ctx context.Context, actor models.Actor, id uint) (*models.Reservation, error) {
	reservation, err := s.transition(ctx, id, func(tx *gorm.DB, r *models.Reservation) error {
		if err := models.GetReservationState(r.Status).CheckIn(r, s.now()); err != nil {
			return err
		}
		return s.rooms.SetRoomStatus(ctx, tx, r.RoomID, models.RoomStatusOccupied)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("reservation %s checked in by staff %d", reservation.ConfirmationNumber, actor.StaffID)
	s.afterWrite(ctx, constants.EventReservationCheckedIn, reservation)
	return reservation, nil
}

// CheckOut closes a stay: the reservation becomes checked_out, the room dirty, and a
// pending cleaning task is raised. All three writes share one transaction.
func (s *ReservationService) CheckOut(ctx context.Context, actor models.Actor, id uint) (*models.Reservation, *models.HousekeepingTask, error) {
	var (
		task    *models.HousekeepingTask
		created bool
	)
	reservation, err := s.transition(ctx, id, func(tx *gorm.DB, r *models.Reservation) error {
		if err := models.GetReservationState(r.Status).CheckOut(r, s.now()); err != nil {
			return err
		}
		var err error
		task, created, err = s.releaseRoom(ctx, tx, actor, r)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("reservation %s checked out by staff %d, cleaning task %d raised",
		reservation.ConfirmationNumber, actor.StaffID, task.ID)
	s.afterWrite(ctx, constants.EventReservationCheckedOut, reservation)
	if created {
		s.housekeeping.TaskCreated(task)
	}
	return reservation, task, nil
}

// Cancel is the administrative exit from confirmed or checked_in. An in-house guest leaves
// the room to clean, as on checkout.
func (s *ReservationService) Cancel(ctx context.Context, actor models.Actor, id uint, reason string) (*models.Reservation, error) {
	if !actor.HasRole(models.RoleManager, models.RoleAdmin) {
		return nil, apperrors.Unauthorized("cancelling a reservation requires a manager")
	}
	var (
		task    *models.HousekeepingTask
		created bool
	)
	reservation, err := s.transition(ctx, id, func(tx *gorm.DB, r *models.Reservation) error {
		wasInHouse := r.Status == models.ReservationCheckedIn
		if err := models.GetReservationState(r.Status).Cancel(r, s.now()); err != nil {
			return err
		}
		if reason = strings.TrimSpace(reason); reason != "" {
			r.Notes = strings.TrimSpace(r.Notes + "\nCancelled: " + reason)
		}
		if !wasInHouse {
			return nil
		}
		var err error
		task, created, err = s.releaseRoom(ctx, tx, actor, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("reservation %s cancelled by staff %d", reservation.ConfirmationNumber, actor.StaffID)
	s.afterWrite(ctx, constants.EventReservationCancelled, reservation)
	if created {
		s.housekeeping.TaskCreated(task)
	}
	return reservation, nil
}

// Amend applies a partial update. Changing either date reprices the stay and, for active
// reservations, re-runs the overlap check against the other bookings of the room. A direct
// status change is a privileged override: it stamps the matching timestamp and skips both
// the transition rules and the availability check.
func (s *ReservationService) Amend(ctx context.Context, actor models.Actor, id uint, cmd commands.AmendReservation) (*models.Reservation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if cmd.Status != nil && !actor.HasRole(models.RoleManager, models.RoleAdmin) {
		return nil, apperrors.Unauthorized("overriding reservation status requires a manager")
	}

	var reservation models.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lockReservation(tx, id, &reservation); err != nil {
			return err
		}
		var room *models.Room
		if cmd.DatesChanged() || cmd.NumberOfGuests != nil {
			var err error
			if room, err = s.rooms.LockRoom(ctx, tx, reservation.RoomID); err != nil {
				return err
			}
		}

		if cmd.DatesChanged() {
			checkIn, checkOut := reservation.CheckInDate, reservation.CheckOutDate
			if cmd.CheckInDate != nil {
				checkIn = *cmd.CheckInDate
			}
			if cmd.CheckOutDate != nil {
				checkOut = *cmd.CheckOutDate
			}
			nights, err := Nights(checkIn, checkOut)
			if err != nil {
				return err
			}
			stay := models.NewStayRange(checkIn, checkOut)
			if reservation.Status.Active() {
				if err := s.checkAvailability(tx, reservation.RoomID, stay, reservation.ID); err != nil {
					return err
				}
			}
			rate := reservation.RoomRate
			if s.repriceAtCurrentRate {
				rate = room.BaseRate
			}
			reservation.CheckInDate = stay.CheckIn
			reservation.CheckOutDate = stay.CheckOut
			reservation.NumberOfNights = nights
			reservation.RoomRate = rate
			reservation.TotalAmount = Total(nights, rate)
		}
		if cmd.NumberOfGuests != nil {
			if room.MaxOccupancy > 0 && *cmd.NumberOfGuests > room.MaxOccupancy {
				return apperrors.Validation(fmt.Sprintf("room %s holds at most %d guests", room.Number, room.MaxOccupancy))
			}
			reservation.NumberOfGuests = *cmd.NumberOfGuests
		}
		if cmd.PaidAmount != nil {
			reservation.PaidAmount = *cmd.PaidAmount
		}
		if cmd.SpecialRequests != nil {
			reservation.SpecialRequests = *cmd.SpecialRequests
		}
		if cmd.Notes != nil {
			reservation.Notes = *cmd.Notes
		}
		if cmd.Source != nil {
			reservation.Source = *cmd.Source
		}
		if cmd.Status != nil && *cmd.Status != reservation.Status {
			models.ApplyStatusOverride(&reservation, *cmd.Status, s.now())
			metrics.IncReservationTransition(string(reservation.Status))
		}

		if err := tx.Save(&reservation).Error; err != nil {
			return writeError("amend reservation", err)
		}
		return nil
	})
	if err != nil {
		s.countConflict(err)
		return nil, err
	}
	s.logger.Info("reservation %s amended by staff %d", reservation.ConfirmationNumber, actor.StaffID)
	s.afterWrite(ctx, constants.EventReservationAmended, &reservation)
	return &reservation, nil
}

// Delete hard-removes a reservation. Room status and housekeeping tasks are left as they are.
func (s *ReservationService) Delete(ctx context.Context, actor models.Actor, id uint) error {
	if !actor.HasRole(models.RoleManager, models.RoleAdmin) {
		return apperrors.Unauthorized("deleting a reservation requires a manager")
	}
	res := s.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return apperrors.Database("delete reservation", res.Error)
	}
	if res.RowsAffected == 0 {
		return reservationNotFound(id)
	}
	s.logger.Info("reservation %d deleted by staff %d", id, actor.StaffID)
	s.afterWrite(ctx, constants.EventReservationDeleted, &models.Reservation{ID: id})
	return nil
}

// Get returns a reservation with its guest and room, served from the cache when present.
func (s *ReservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	key := reservationCacheKey(id)
	var reservation models.Reservation
	if s.cache.Get(ctx, key, &reservation) {
		return &reservation, nil
	}
	if err := s.db.WithContext(ctx).Preload("Guest").Preload("Room").First(&reservation, id).Error; err != nil {
		if isNotFound(err) {
			return nil, reservationNotFound(id)
		}
		return nil, apperrors.Database("load reservation", err)
	}
	s.cache.Set(ctx, key, &reservation)
	return &reservation, nil
}

func (s *ReservationService) GetByConfirmation(ctx context.Context, number string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.WithContext(ctx).Preload("Guest").Preload("Room").
		Where("confirmation_number = ?", strings.ToUpper(strings.TrimSpace(number))).
		First(&reservation).Error
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound,
				fmt.Sprintf("reservation %s not found", number), apperrors.ErrReservationNotFound)
		}
		return nil, apperrors.Database("load reservation", err)
	}
	return &reservation, nil
}

// List pages through reservations. From/To select stays intersecting [From, To).
func (s *ReservationService) List(ctx context.Context, filter commands.ReservationFilter) ([]models.Reservation, int64, error) {
	db := s.db.WithContext(ctx)
	q := db.Model(&models.Reservation{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.RoomID != 0 {
		q = q.Where("room_id = ?", filter.RoomID)
	}
	if filter.GuestID != 0 {
		q = q.Where("guest_id = ?", filter.GuestID)
	}
	if filter.From != nil {
		q = q.Where("check_out_date > ?", utils.DateOnly(*filter.From))
	}
	if filter.To != nil {
		q = q.Where("check_in_date < ?", utils.DateOnly(*filter.To))
	}
	if filter.GuestQuery != "" {
		var guests []models.Guest
		if err := db.Select("id", "first_name", "last_name", "email").Limit(guestSearchLimit).Find(&guests).Error; err != nil {
			return nil, 0, apperrors.Database("search guests", err)
		}
		ids := MatchGuests(filter.GuestQuery, guests)
		if len(ids) == 0 {
			return []models.Reservation{}, 0, nil
		}
		q = q.Where("guest_id IN ?", ids)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Database("count reservations", err)
	}
	page, limit := NormalizePage(filter.Page, filter.Limit)
	var reservations []models.Reservation
	err := q.Preload("Guest").Preload("Room").
		Order("check_in_date DESC, id DESC").
		Offset(page * limit).Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, 0, apperrors.Database("list reservations", err)
	}
	return reservations, total, nil
}

// checkAvailability fails with Conflict when stay intersects an active reservation of
// the room other than excludeID.
func (s *ReservationService) checkAvailability(tx *gorm.DB, roomID uint, stay models.StayRange, excludeID uint) error {
	q := tx.Select("id", "confirmation_number", "check_in_date", "check_out_date").
		Where("room_id = ? AND status IN ?", roomID, activeStatuses())
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var existing []models.Reservation
	if err := q.Find(&existing).Error; err != nil {
		return apperrors.Database("check availability", err)
	}
	for _, e := range existing {
		if stay.Overlaps(e.Stay()) {
			return apperrors.NewAppError(apperrors.ErrCodeConflict,
				fmt.Sprintf("room is booked from %s to %s (%s)",
					utils.FormatDate(e.CheckInDate), utils.FormatDate(e.CheckOutDate), e.ConfirmationNumber),
				apperrors.ErrRoomNotAvailable)
		}
	}
	return nil
}

func (s *ReservationService) transition(ctx context.Context, id uint, fn func(tx *gorm.DB, r *models.Reservation) error) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lockReservation(tx, id, &reservation); err != nil {
			return err
		}
		if err := fn(tx, &reservation); err != nil {
			return err
		}
		if err := tx.Save(&reservation).Error; err != nil {
			return apperrors.Database("save reservation", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.IncReservationTransition(string(reservation.Status))
	return &reservation, nil
}

// releaseRoom marks the room dirty and raises its cleaning task.
func (s *ReservationService) releaseRoom(ctx context.Context, tx *gorm.DB, actor models.Actor, r *models.Reservation) (*models.HousekeepingTask, bool, error) {
	if err := s.rooms.SetRoomStatus(ctx, tx, r.RoomID, models.RoomStatusDirty); err != nil {
		return nil, false, err
	}
	reservationID := r.ID
	return s.housekeeping.EmitCleaningTask(ctx, tx, r.RoomID, &reservationID, actor.StaffRef())
}

func (s *ReservationService) lockReservation(tx *gorm.DB, id uint, out *models.Reservation) error {
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(out, id).Error; err != nil {
		if isNotFound(err) {
			return reservationNotFound(id)
		}
		return apperrors.Database("load reservation", err)
	}
	return nil
}

func (s *ReservationService) ensureGuest(tx *gorm.DB, guestID uint) error {
	var count int64
	if err := tx.Model(&models.Guest{}).Where("id = ?", guestID).Count(&count).Error; err != nil {
		return apperrors.Database("look up guest", err)
	}
	if count == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, fmt.Sprintf("guest %d not found", guestID), apperrors.ErrGuestNotFound)
	}
	return nil
}

func (s *ReservationService) countConflict(err error) {
	if apperrors.Is(err, apperrors.ErrCodeConflict) {
		metrics.IncReservationConflict()
	}
}

// afterWrite runs once a write has committed: drop stale projections and tell the desk.
func (s *ReservationService) afterWrite(ctx context.Context, event string, r *models.Reservation) {
	s.cache.Delete(ctx, reservationCacheKey(r.ID))
	s.cache.DeletePattern(ctx, constants.CacheReportPattern)

	msg, err := notification.NewMessageBuilder(event).Reservation(r.ID).Room(r.RoomID).Data(r).Build()
	if err != nil {
		s.logger.Error("build %s event: %v", event, err)
		return
	}
	if err := s.notifier.SendMessage(msg); err != nil {
		s.logger.Error("send %s event: %v", event, err)
	}
}

func writeError(op string, err error) error {
	if isOverlapViolation(err) {
		return apperrors.NewAppError(apperrors.ErrCodeConflict, "room is already booked for these dates", apperrors.ErrRoomNotAvailable)
	}
	if isUniqueViolation(err) {
		return apperrors.Database(op+": duplicate confirmation number", err)
	}
	return apperrors.Database(op, err)
}

func reservationNotFound(id uint) error {
	return apperrors.NewAppError(apperrors.ErrCodeNotFound, fmt.Sprintf("reservation %d not found", id), apperrors.ErrReservationNotFound)
}

func reservationCacheKey(id uint) string {
	return constants.CacheReservationPrefix + strconv.FormatUint(uint64(id), 10)
}
