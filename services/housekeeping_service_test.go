package services

import (
	"context"
	"testing"

	"hotelpms/commands"
	"hotelpms/constants"
	apperrors "hotelpms/errors"
	"hotelpms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (f *fixture) checkedOutTask(t *testing.T) *models.HousekeepingTask {
	t.Helper()
	ctx := context.Background()
	r, err := f.book(t, receptionist, f.room.ID, "2024-01-01", "2024-01-03")
	require.NoError(t, err)
	_, err = f.desk.Reservations.CheckIn(ctx, receptionist, r.ID)
	require.NoError(t, err)
	_, task, err := f.desk.Reservations.CheckOut(ctx, receptionist, r.ID)
	require.NoError(t, err)
	return task
}

func TestComplete_CleaningTaskMakesRoomAvailable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task := f.checkedOutTask(t)
	require.Equal(t, models.RoomStatusDirty, roomStatus(t, f.db, f.room.ID))

	started, err := f.desk.Housekeeping.Start(ctx, housekeeper, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskInProgress, started.Status)
	require.NotNil(t, started.AssignedTo)
	assert.Equal(t, housekeeper.StaffID, *started.AssignedTo)
	assert.Equal(t, models.RoomStatusDirty, roomStatus(t, f.db, f.room.ID))

	done, err := f.desk.Housekeeping.Complete(ctx, housekeeper, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, done.Status)
	assert.NotNil(t, done.CompletedAt)
	assert.Equal(t, models.RoomStatusAvailable, roomStatus(t, f.db, f.room.ID))
	assert.True(t, f.notifier.contains(constants.EventTaskCompleted))

	_, err = f.desk.Housekeeping.Complete(ctx, housekeeper, task.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidTransition))
}

func TestComplete_PendingTaskCanBeClosedDirectly(t *testing.T) {
	f := newFixture(t)
	task := f.checkedOutTask(t)

	done, err := f.desk.Housekeeping.Complete(context.Background(), housekeeper, task.ID)
	require.NoError(t, err)
	assert.NotNil(t, done.StartedAt)
	assert.Equal(t, models.RoomStatusAvailable, roomStatus(t, f.db, f.room.ID))
}

func TestComplete_OtherTaskTypesLeaveRoomAlone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.db.Model(&models.Room{}).Where("id = ?", f.room.ID).Update("status", models.RoomStatusDirty).Error)

	for _, typ := range []models.TaskType{models.TaskMaintenance, models.TaskInspection} {
		task, err := f.desk.Housekeeping.Create(ctx, manager, commands.CreateTask{RoomID: f.room.ID, Type: typ})
		require.NoError(t, err)
		_, err = f.desk.Housekeeping.Complete(ctx, housekeeper, task.ID)
		require.NoError(t, err)
		assert.Equal(t, models.RoomStatusDirty, roomStatus(t, f.db, f.room.ID), string(typ))
	}
}

func TestComplete_CleaningDoesNotReopenMaintenanceRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.db.Model(&models.Room{}).Where("id = ?", f.room.ID).Update("status", models.RoomStatusMaintenance).Error)

	task, err := f.desk.Housekeeping.Create(ctx, manager, commands.CreateTask{RoomID: f.room.ID, Type: models.TaskCleaning})
	require.NoError(t, err)
	_, err = f.desk.Housekeeping.Complete(ctx, housekeeper, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusMaintenance, roomStatus(t, f.db, f.room.ID))
}

func TestEmitCleaningTask_OncePerReservation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	reservationID := uint(77)

	var first, second *models.HousekeepingTask
	var firstCreated, secondCreated bool
	err := f.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if first, firstCreated, err = f.desk.Housekeeping.EmitCleaningTask(ctx, tx, f.room.ID, &reservationID, nil); err != nil {
			return err
		}
		second, secondCreated, err = f.desk.Housekeeping.EmitCleaningTask(ctx, tx, f.room.ID, &reservationID, nil)
		return err
	})
	require.NoError(t, err)
	assert.True(t, firstCreated)
	assert.False(t, secondCreated)
	assert.Equal(t, first.ID, second.ID)

	var n int64
	require.NoError(t, f.db.Model(&models.HousekeepingTask{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
	assert.Nil(t, first.CreatedBy)
	assert.Equal(t, models.TaskPending, first.Status)
}

func TestEmitCleaningTask_ReusesInProgressTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task := f.checkedOutTask(t)
	_, err := f.desk.Housekeeping.Start(ctx, housekeeper, task.ID)
	require.NoError(t, err)

	var again *models.HousekeepingTask
	var created bool
	err = f.db.Transaction(func(tx *gorm.DB) error {
		var err error
		again, created, err = f.desk.Housekeeping.EmitCleaningTask(ctx, tx, f.room.ID, task.ReservationID, nil)
		return err
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, task.ID, again.ID)
	assert.Equal(t, models.TaskInProgress, again.Status)
}

func TestEmitCleaningTask_NewTaskAfterCompletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.checkedOutTask(t)
	_, err := f.desk.Housekeeping.Complete(ctx, housekeeper, first.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoomStatusAvailable, roomStatus(t, f.db, f.room.ID))
	require.Equal(t, 1, f.notifier.count(constants.EventTaskCreated))

	// A manager reopens the stay and the guest leaves a second time.
	reservationID := *first.ReservationID
	status := models.ReservationCheckedIn
	_, err = f.desk.Reservations.Amend(ctx, manager, reservationID, commands.AmendReservation{Status: &status})
	require.NoError(t, err)
	_, second, err := f.desk.Reservations.CheckOut(ctx, receptionist, reservationID)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, models.TaskPending, second.Status)
	assert.Equal(t, models.RoomStatusDirty, roomStatus(t, f.db, f.room.ID))
	assert.Equal(t, 2, f.notifier.count(constants.EventTaskCreated))

	var tasks []models.HousekeepingTask
	require.NoError(t, f.db.Where("reservation_id = ? AND type = ?", reservationID, models.TaskCleaning).
		Order("id").Find(&tasks).Error)
	require.Len(t, tasks, 2)
	assert.Equal(t, models.TaskCompleted, tasks[0].Status)
	assert.Equal(t, models.TaskPending, tasks[1].Status)

	_, err = f.desk.Housekeeping.Complete(ctx, housekeeper, second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusAvailable, roomStatus(t, f.db, f.room.ID))
}

func TestEmitCleaningTask_OpenTaskIsNotAnnouncedTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.checkedOutTask(t)
	require.Equal(t, 1, f.notifier.count(constants.EventTaskCreated))

	// Reopened before housekeeping got to the room: the pending order still covers it.
	reservationID := *first.ReservationID
	status := models.ReservationCheckedIn
	_, err := f.desk.Reservations.Amend(ctx, manager, reservationID, commands.AmendReservation{Status: &status})
	require.NoError(t, err)
	_, second, err := f.desk.Reservations.CheckOut(ctx, receptionist, reservationID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, f.notifier.count(constants.EventTaskCreated))
	assert.Len(t, f.cleaningTasks(t, f.room.ID), 1)
}

func TestCancel_InHouseAfterCompletedCleaningRaisesNewTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.checkedOutTask(t)
	_, err := f.desk.Housekeeping.Complete(ctx, housekeeper, first.ID)
	require.NoError(t, err)

	reservationID := *first.ReservationID
	status := models.ReservationCheckedIn
	_, err = f.desk.Reservations.Amend(ctx, manager, reservationID, commands.AmendReservation{Status: &status})
	require.NoError(t, err)
	_, err = f.desk.Reservations.Cancel(ctx, manager, reservationID, "walked out")
	require.NoError(t, err)

	assert.Equal(t, models.RoomStatusDirty, roomStatus(t, f.db, f.room.ID))
	var pending []models.HousekeepingTask
	require.NoError(t, f.db.Where("reservation_id = ? AND status = ?", reservationID, models.TaskPending).Find(&pending).Error)
	require.Len(t, pending, 1)
	assert.NotEqual(t, first.ID, pending[0].ID)
	assert.Equal(t, 2, f.notifier.count(constants.EventTaskCreated))
}

func TestEmitCleaningTask_UsesConfiguredDuration(t *testing.T) {
	f := newFixture(t, func(o *FrontDeskOptions) { o.CleaningMinutes = 45 })
	task := f.checkedOutTask(t)
	assert.Equal(t, 45, task.EstimatedMinutes)
}

func TestStart_OnlyFromPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task := f.checkedOutTask(t)

	_, err := f.desk.Housekeeping.Start(ctx, housekeeper, task.ID)
	require.NoError(t, err)
	_, err = f.desk.Housekeeping.Start(ctx, housekeeper, task.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidTransition))

	_, err = f.desk.Housekeeping.Start(ctx, housekeeper, 999)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestAssign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	task := f.checkedOutTask(t)

	assigned, err := f.desk.Housekeeping.Assign(ctx, manager, task.ID, housekeeper.StaffID)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedTo)
	assert.Equal(t, housekeeper.StaffID, *assigned.AssignedTo)

	_, err = f.desk.Housekeeping.Assign(ctx, manager, task.ID, 404)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}

func TestCreateTask_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.desk.Housekeeping.Create(ctx, manager, commands.CreateTask{RoomID: f.room.ID, Type: "laundry"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	_, err = f.desk.Housekeeping.Create(ctx, manager, commands.CreateTask{RoomID: 999, Type: models.TaskMaintenance})
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)

	task, err := f.desk.Housekeeping.Create(ctx, manager, commands.CreateTask{RoomID: f.room.ID, Type: models.TaskTurndown})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityNormal, task.Priority)
	assert.Equal(t, models.TaskPending, task.Status)
}

func TestListTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cleaning := f.checkedOutTask(t)
	_, err := f.desk.Housekeeping.Create(ctx, manager, commands.CreateTask{RoomID: f.room.ID, Type: models.TaskInspection, Priority: models.PriorityHigh})
	require.NoError(t, err)

	all, total, err := f.desk.Housekeeping.List(ctx, commands.TaskFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	onlyCleaning, total, err := f.desk.Housekeeping.List(ctx, commands.TaskFilter{Type: models.TaskCleaning})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, cleaning.ID, onlyCleaning[0].ID)
	require.NotNil(t, onlyCleaning[0].Room)
	assert.Equal(t, "101", onlyCleaning[0].Room.Number)

	got, err := f.desk.Housekeeping.Get(ctx, cleaning.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCleaning, got.Type)
}
