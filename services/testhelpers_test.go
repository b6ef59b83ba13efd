package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"hotelpms/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	receptionist = models.Actor{StaffID: 2, Role: models.RoleReceptionist}
	manager      = models.Actor{StaffID: 1, Role: models.RoleManager}
	housekeeper  = models.Actor{StaffID: 3, Role: models.RoleHousekeeping}
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// newTestDB opens a private in-memory database. A single connection keeps the data alive
// and makes concurrent transactions run one after another.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Room{},
		&models.Guest{},
		&models.Staff{},
		&models.Reservation{},
		&models.HousekeepingTask{},
	))
	require.NoError(t, db.Create([]models.Staff{
		{ID: 1, Name: "Mara Quint", Email: "mara@hotel.test", Role: models.RoleManager, Active: true},
		{ID: 2, Name: "Dev Aurel", Email: "dev@hotel.test", Role: models.RoleReceptionist, Active: true},
		{ID: 3, Name: "Lio Brand", Email: "lio@hotel.test", Role: models.RoleHousekeeping, Active: true},
	}).Error)
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, number string, roomType models.RoomType, rate float64, maxOccupancy int) *models.Room {
	t.Helper()
	room := &models.Room{
		Number:       number,
		Type:         roomType,
		Floor:        1,
		MaxOccupancy: maxOccupancy,
		BaseRate:     rate,
		Status:       models.RoomStatusAvailable,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func seedGuest(t *testing.T, db *gorm.DB, first, last, email string) *models.Guest {
	t.Helper()
	guest := &models.Guest{FirstName: first, LastName: last, Email: email}
	require.NoError(t, db.Create(guest).Error)
	return guest
}

func roomStatus(t *testing.T, db *gorm.DB, id uint) models.RoomStatus {
	t.Helper()
	var room models.Room
	require.NoError(t, db.First(&room, id).Error)
	return room.Status
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) SendMessage(message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

func (n *recordingNotifier) contains(event string) bool {
	return n.count(event) > 0
}

func (n *recordingNotifier) count(event string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, m := range n.messages {
		if strings.Contains(m, `"type":"`+event+`"`) {
			c++
		}
	}
	return c
}

type fixture struct {
	db       *gorm.DB
	desk     *FrontDesk
	notifier *recordingNotifier
	room     *models.Room
	guest    *models.Guest
}

func newFixture(t *testing.T, opts ...func(*FrontDeskOptions)) *fixture {
	t.Helper()
	db := newTestDB(t)
	notifier := &recordingNotifier{}
	o := FrontDeskOptions{
		DB:       db,
		Notifier: notifier,
		Now:      func() time.Time { return time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC) },
	}
	for _, fn := range opts {
		fn(&o)
	}
	return &fixture{
		db:       db,
		desk:     NewFrontDesk(o),
		notifier: notifier,
		room:     seedRoom(t, db, "101", models.RoomTypeDouble, 100, 2),
		guest:    seedGuest(t, db, "Ada", "Lovelace", "ada@example.com"),
	}
}
