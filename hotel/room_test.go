package hotel_test

import (
	"testing"

	"hotel-desk/hotel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	t.Run("should create room with the given fields", func(t *testing.T) {
		r, err := hotel.NewRoom(hotel.Double, 101, hotel.Vacant, 150)

		require.NoError(t, err)
		assert.Equal(t, hotel.Double, r.Type())
		assert.Equal(t, 101, r.Number())
		assert.Equal(t, hotel.Vacant, r.State())
		assert.Equal(t, 150.0, r.Price())
		assert.Empty(t, r.Guest())
		assert.False(t, r.IsOccupied())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		r, err := hotel.NewRoom("Penthouse", 0, "Ocupada", -1)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), `room type "Penthouse" is invalid`)
		assert.Contains(t, err.Error(), "room number 0 is not positive")
		assert.Contains(t, err.Error(), `room state "Ocupada" is invalid`)
		assert.Contains(t, err.Error(), "room price -1.00 is negative")
	})
}

func TestRoomTransitions(t *testing.T) {
	t.Run("should check in a vacant room", func(t *testing.T) {
		r, _ := hotel.NewRoom(hotel.Suite, 102, hotel.Vacant, 300)

		out := r.CheckIn()

		assert.True(t, out.OK())
		assert.Equal(t, hotel.MsgRoomCheckedIn, out.Message)
		assert.True(t, r.IsOccupied())
	})

	t.Run("should check out an occupied room", func(t *testing.T) {
		r, _ := hotel.NewRoom(hotel.Suite, 102, hotel.Occupied, 300)

		out := r.CheckOut()

		assert.True(t, out.OK())
		assert.Equal(t, hotel.MsgRoomCheckedOut, out.Message)
		assert.False(t, r.IsOccupied())
	})

	t.Run("should refuse check-in on an occupied room", func(t *testing.T) {
		r, _ := hotel.NewRoom(hotel.Individual, 103, hotel.Occupied, 100)

		out := r.CheckIn()

		assert.Equal(t, hotel.KindInvalidTransition, out.Kind)
		assert.Equal(t, hotel.MsgRoomOccupied, out.Message)
		assert.True(t, r.IsOccupied())
	})

	t.Run("should refuse check-out on a vacant room", func(t *testing.T) {
		r, _ := hotel.NewRoom(hotel.Double, 104, hotel.Vacant, 200)

		out := r.CheckOut()

		assert.Equal(t, hotel.KindInvalidTransition, out.Kind)
		assert.Equal(t, hotel.MsgRoomVacant, out.Message)
		assert.False(t, r.IsOccupied())
	})

	t.Run("should reflect the last successful transition", func(t *testing.T) {
		r, _ := hotel.NewRoom(hotel.Double, 105, hotel.Vacant, 200)

		require.True(t, r.CheckIn().OK())
		assert.False(t, r.CheckIn().OK())
		assert.True(t, r.IsOccupied())

		require.True(t, r.CheckOut().OK())
		assert.False(t, r.CheckOut().OK())
		assert.False(t, r.IsOccupied())
	})
}

func TestParseRoomTypeAndState(t *testing.T) {
	typ, err := hotel.ParseRoomType(" suite ")
	require.NoError(t, err)
	assert.Equal(t, hotel.Suite, typ)

	_, err = hotel.ParseRoomType("Doble")
	assert.Error(t, err)

	st, err := hotel.ParseRoomState("OCCUPIED")
	require.NoError(t, err)
	assert.Equal(t, hotel.Occupied, st)

	_, err = hotel.ParseRoomState("Desocupada")
	assert.Error(t, err)

	assert.Equal(t, []hotel.RoomType{hotel.Individual, hotel.Double, hotel.Suite}, hotel.RoomTypes())
}
