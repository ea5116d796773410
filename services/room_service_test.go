package services

import (
	"testing"

	"hotel-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomValidation(t *testing.T) {
	db := testDB(t)
	svc := NewRoomService(db)

	tests := []struct {
		name    string
		room    models.Room
		wantErr error
	}{
		{"empty room number", models.Room{RoomType: models.RoomTypeSingle, PricePerNight: 50}, ErrValidation},
		{"blank room number", models.Room{RoomNumber: "   ", RoomType: models.RoomTypeSingle, PricePerNight: 50}, ErrValidation},
		{"unknown room type", models.Room{RoomNumber: "101", RoomType: "Penthouse", PricePerNight: 50}, ErrValidation},
		{"zero price", models.Room{RoomNumber: "101", RoomType: models.RoomTypeSingle}, ErrValidation},
		{"negative price", models.Room{RoomNumber: "101", RoomType: models.RoomTypeSingle, PricePerNight: -10}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := tt.room
			assert.ErrorIs(t, svc.Create(&room), tt.wantErr)
		})
	}
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	db := testDB(t)
	svc := NewRoomService(db)

	room := models.Room{RoomNumber: "101", RoomType: models.RoomTypeSuite, PricePerNight: 250, IsAvailable: true}
	require.NoError(t, svc.Create(&room))

	dup := models.Room{RoomNumber: "101", RoomType: models.RoomTypeSingle, PricePerNight: 80, IsAvailable: true}
	assert.ErrorIs(t, svc.Create(&dup), ErrDuplicateRoom)
}

func TestListAvailableFiltersAndOrders(t *testing.T) {
	db := testDB(t)
	svc := NewRoomService(db)

	createTestRoom(t, db, "103", 100)
	createTestRoom(t, db, "101", 100)
	taken := createTestRoom(t, db, "102", 100)
	require.NoError(t, svc.SetAvailability(taken.ID, false))

	rooms, err := svc.ListAvailable()
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, "103", rooms[1].RoomNumber)
	for _, r := range rooms {
		assert.True(t, r.IsAvailable, "listing must never include an unavailable room")
	}
}

func TestRoomCapacityByType(t *testing.T) {
	assert.Equal(t, 1, models.Room{RoomType: models.RoomTypeSingle}.Capacity())
	assert.Equal(t, 2, models.Room{RoomType: models.RoomTypeDouble}.Capacity())
	assert.Equal(t, 4, models.Room{RoomType: models.RoomTypeSuite}.Capacity())
	assert.Equal(t, 3, models.Room{RoomType: models.RoomTypeDeluxe}.Capacity())
	assert.Equal(t, 2, models.Room{RoomType: "unknown"}.Capacity())
}

func TestDeleteRoom(t *testing.T) {
	db := testDB(t)
	svc := NewRoomService(db)

	room := createTestRoom(t, db, "104", 100)
	require.NoError(t, svc.Delete(room.ID))

	_, err := svc.GetByID(room.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	assert.ErrorIs(t, svc.Delete(room.ID), ErrRoomNotFound)
}

func TestDeleteRoomLeavesBookingsBehind(t *testing.T) {
	db := testDB(t)
	rooms := NewRoomService(db)
	bookings := NewBookingService(db)

	customer := createTestCustomer(t, db, "dangling@example.com")
	room := createTestRoom(t, db, "105", 100)

	booking, err := bookings.Create(customer.ID, room.ID, "2024-01-01", "2024-01-02")
	require.NoError(t, err)

	require.NoError(t, rooms.Delete(room.ID))

	// booking survives with a dangling room reference
	list, err := bookings.ListForCustomer(customer.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, booking.ID, list[0].ID)
}
