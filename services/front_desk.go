package services

import (
	"time"

	"hotelpms/services/logger"
	"hotelpms/services/notification"

	"gorm.io/gorm"
)

// FrontDesk bundles the services behind the HTTP API so handlers and jobs share one
// wiring of inventory, reservations and housekeeping.
type FrontDesk struct {
	Rooms        *RoomService
	Reservations *ReservationService
	Housekeeping *HousekeepingService
	Reports      *ReportService
}

type FrontDeskOptions struct {
	DB                   *gorm.DB
	Cache                *Cache
	Notifier             notification.Service
	Logger               logger.Logger
	CleaningMinutes      int
	RepriceAtCurrentRate bool
	Now                  func() time.Time
}

// NewFrontDesk wires the services together.
func NewFrontDesk(opts FrontDeskOptions) *FrontDesk {
	rooms := NewRoomService(RoomServiceOptions{
		DB:       opts.DB,
		Cache:    opts.Cache,
		Logger:   opts.Logger,
		Notifier: opts.Notifier,
	})
	housekeeping := NewHousekeepingService(HousekeepingServiceOptions{
		DB:              opts.DB,
		Rooms:           rooms,
		Cache:           opts.Cache,
		Logger:          opts.Logger,
		Notifier:        opts.Notifier,
		CleaningMinutes: opts.CleaningMinutes,
		Now:             opts.Now,
	})
	reservations := NewReservationService(ReservationServiceOptions{
		DB:                   opts.DB,
		Rooms:                rooms,
		Housekeeping:         housekeeping,
		Cache:                opts.Cache,
		Notifier:             opts.Notifier,
		Logger:               opts.Logger,
		Now:                  opts.Now,
		RepriceAtCurrentRate: opts.RepriceAtCurrentRate,
	})
	return &FrontDesk{
		Rooms:        rooms,
		Reservations: reservations,
		Housekeeping: housekeeping,
		Reports:      NewReportService(opts.DB, opts.Cache),
	}
}
