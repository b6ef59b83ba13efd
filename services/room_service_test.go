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
)

func roomNumbers(rooms []models.Room) []string {
	out := make([]string, len(rooms))
	for i, r := range rooms {
		out[i] = r.Number
	}
	return out
}

func stay(checkIn, checkOut string) models.StayRange {
	return models.StayRange{CheckIn: day(checkIn), CheckOut: day(checkOut)}
}

func TestAvailable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedRoom(t, f.db, "102", models.RoomTypeDouble, 110, 2)
	seedRoom(t, f.db, "201", models.RoomTypeDeluxe, 220, 3)
	repair := seedRoom(t, f.db, "202", models.RoomTypeDeluxe, 200, 4)
	require.NoError(t, f.db.Model(repair).Update("status", models.RoomStatusMaintenance).Error)

	_, err := f.book(t, receptionist, f.room.ID, "2024-01-10", "2024-01-12")
	require.NoError(t, err)

	tests := []struct {
		name  string
		query commands.AvailabilityQuery
		want  []string
	}{
		{"overlapping stay hides booked room", commands.AvailabilityQuery{Stay: stay("2024-01-11", "2024-01-13")}, []string{"102", "201"}},
		{"departure day is free", commands.AvailabilityQuery{Stay: stay("2024-01-12", "2024-01-14")}, []string{"101", "102", "201"}},
		{"arrival day is free", commands.AvailabilityQuery{Stay: stay("2024-01-08", "2024-01-10")}, []string{"101", "102", "201"}},
		{"room type filter", commands.AvailabilityQuery{Stay: stay("2024-01-01", "2024-01-02"), RoomType: "Deluxe"}, []string{"201"}},
		{"room type alias", commands.AvailabilityQuery{Stay: stay("2024-01-01", "2024-01-02"), RoomType: "dlx"}, []string{"201"}},
		{"guest count", commands.AvailabilityQuery{Stay: stay("2024-01-01", "2024-01-02"), NumberOfGuests: 3}, []string{"201"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms, err := f.desk.Rooms.Available(ctx, tt.query)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, roomNumbers(rooms))
		})
	}
}

func TestAvailable_CancelledReservationFreesRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r, err := f.book(t, receptionist, f.room.ID, "2024-01-10", "2024-01-12")
	require.NoError(t, err)
	_, err = f.desk.Reservations.Cancel(ctx, manager, r.ID, "")
	require.NoError(t, err)

	rooms, err := f.desk.Rooms.Available(ctx, commands.AvailabilityQuery{Stay: stay("2024-01-10", "2024-01-12")})
	require.NoError(t, err)
	assert.Equal(t, []string{"101"}, roomNumbers(rooms))
}

func TestAvailable_RejectsBadQuery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.desk.Rooms.Available(ctx, commands.AvailabilityQuery{Stay: stay("2024-01-05", "2024-01-05")})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	_, err = f.desk.Rooms.Available(ctx, commands.AvailabilityQuery{Stay: stay("2024-01-01", "2024-01-02"), RoomType: "penthouse"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}

func TestSetManualStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.desk.Rooms.SetManualStatus(ctx, receptionist, f.room.ID, models.RoomStatusMaintenance)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeUnauthorized))

	_, err = f.desk.Rooms.SetManualStatus(ctx, manager, f.room.ID, models.RoomStatusOccupied)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	room, err := f.desk.Rooms.SetManualStatus(ctx, manager, f.room.ID, models.RoomStatusMaintenance)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusMaintenance, room.Status)
	assert.Equal(t, models.RoomStatusMaintenance, roomStatus(t, f.db, f.room.ID))
	assert.True(t, f.notifier.contains(constants.EventRoomStatusChanged))

	_, err = f.desk.Rooms.SetManualStatus(ctx, manager, 999, models.RoomStatusBlocked)
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestSetManualStatus_DirtyRoomNeedsCleaning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.db.Model(&models.Room{}).Where("id = ?", f.room.ID).Update("status", models.RoomStatusDirty).Error)

	_, err := f.desk.Rooms.SetManualStatus(ctx, manager, f.room.ID, models.RoomStatusAvailable)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidTransition))

	room, err := f.desk.Rooms.SetManualStatus(ctx, manager, f.room.ID, models.RoomStatusMaintenance)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusMaintenance, room.Status)
}

func TestRoomList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedRoom(t, f.db, "301", models.RoomTypeSuite, 400, 4)

	rooms, err := f.desk.Rooms.List(ctx, "", models.RoomTypeSuite)
	require.NoError(t, err)
	assert.Equal(t, []string{"301"}, roomNumbers(rooms))

	rooms, err = f.desk.Rooms.List(ctx, models.RoomStatusAvailable, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "301"}, roomNumbers(rooms))

	_, err = f.desk.Rooms.Get(ctx, 999)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}
