package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-desk/hotel"
	"hotel-desk/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForOutcome(t *testing.T) {
	cases := map[hotel.Kind]int{
		hotel.KindOK:                http.StatusCreated,
		hotel.KindNotFound:          http.StatusNotFound,
		hotel.KindNoop:              http.StatusNotFound,
		hotel.KindInvalidTransition: http.StatusConflict,
		hotel.KindConflict:          http.StatusConflict,
		hotel.KindInvalid:           http.StatusBadRequest,
		hotel.Kind(99):              http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, utils.StatusForOutcome(hotel.Outcome{Kind: kind}, http.StatusCreated), kind.String())
	}
}

func TestJSONOutcome(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	utils.JSONOutcome(c, hotel.Outcome{Kind: hotel.KindNotFound, Message: hotel.MsgRoomNotFound}, http.StatusOK)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body struct {
		Success bool `json:"success"`
		Outcome struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"outcome"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "not_found", body.Outcome.Kind)
	assert.Equal(t, "Room not found.", body.Outcome.Message)
}
