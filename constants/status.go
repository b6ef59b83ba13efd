package constants

import "time"

// Dates travel as ISO calendar days.
const DateLayout = "2006-01-02"

// Confirmation numbers
const (
	ConfirmationPrefix       = "HTL"
	ConfirmationRandomLength = 6
)

// Housekeeping defaults
const (
	DefaultCleaningMinutes     = 60
	PostDepartureCleaningLabel = "Post-departure cleaning"
)

// Pagination
const (
	DefaultPage  = 0
	DefaultLimit = 10
	MaxLimit     = 100
)

// Redis cache keys
const (
	CacheReservationPrefix  = "reservations:"
	CacheReservationPattern = "reservations:*"
	CacheReportPrefix       = "reports:daily:"
	CacheReportPattern      = "reports:*"
	DefaultCacheTTL         = 10 * time.Minute
)

// Live events pushed over the websocket
const (
	EventReservationCreated    = "reservation.created"
	EventReservationCheckedIn  = "reservation.checked_in"
	EventReservationCheckedOut = "reservation.checked_out"
	EventReservationCancelled  = "reservation.cancelled"
	EventReservationAmended    = "reservation.amended"
	EventReservationDeleted    = "reservation.deleted"
	EventTaskCreated           = "housekeeping.task_created"
	EventTaskCompleted         = "housekeeping.task_completed"
	EventRoomStatusChanged     = "room.status_changed"
	EventDailyDigest           = "report.daily_digest"
)
