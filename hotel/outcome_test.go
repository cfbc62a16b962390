package hotel_test

import (
	"encoding/json"
	"testing"

	"hotel-desk/hotel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeJSON(t *testing.T) {
	out := hotel.Outcome{Kind: hotel.KindInvalidTransition, Message: hotel.MsgRoomNotAvailable, RoomNumber: 102}

	raw, err := json.Marshal(out)

	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"invalid_transition","message":"Room not available or already occupied.","roomNumber":102}`, string(raw))
	assert.Equal(t, hotel.MsgRoomNotAvailable, out.String())
	assert.False(t, out.OK())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ok", hotel.KindOK.String())
	assert.Equal(t, "not_found", hotel.KindNotFound.String())
	assert.Equal(t, "noop", hotel.KindNoop.String())
	assert.Equal(t, "conflict", hotel.KindConflict.String())
	assert.Equal(t, "invalid", hotel.KindInvalid.String())
	assert.Equal(t, "unknown", hotel.Kind(42).String())
}
