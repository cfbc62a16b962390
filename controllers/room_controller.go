package controllers

import (
	"net/http"

	"hotel-desk/hotel"
	"hotel-desk/services"
	"hotel-desk/utils"

	"github.com/gin-gonic/gin"
)

type roomView struct {
	RoomNumber int     `json:"roomNumber"`
	Type       string  `json:"type"`
	State      string  `json:"state"`
	Price      float64 `json:"price"`
	Occupied   bool    `json:"occupied"`
	Guest      string  `json:"guest,omitempty"`
}

func newRoomView(r hotel.Room) roomView {
	return roomView{
		RoomNumber: r.Number(),
		Type:       string(r.Type()),
		State:      string(r.State()),
		Price:      r.Price(),
		Occupied:   r.IsOccupied(),
		Guest:      r.Guest(),
	}
}

type createRoomPayload struct {
	RoomNumber int     `json:"roomNumber" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	State      string  `json:"state"`
	Price      float64 `json:"price"`
}

type updateRoomPayload struct {
	Price *float64 `json:"price"`
	State *string  `json:"state"`
}

type RoomController struct {
	HotelSvc *services.HotelService
}

func NewRoomController(svc *services.HotelService) *RoomController {
	return &RoomController{HotelSvc: svc}
}

// GetRoomTypes (GET /api/room-types)
func (ctrl *RoomController) GetRoomTypes(c *gin.Context) {
	types := hotel.RoomTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	utils.JSONSuccess(c, http.StatusOK, names)
}

// GetRooms (GET /api/rooms)
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms := ctrl.HotelSvc.Rooms()
	views := make([]roomView, 0, len(rooms))
	for _, r := range rooms {
		views = append(views, newRoomView(r))
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

// GetRoom (GET /api/rooms/:number)
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	number, ok := intParam(c, "number")
	if !ok {
		return
	}
	room, found := ctrl.HotelSvc.Room(number)
	if !found {
		utils.JSONError(c, http.StatusNotFound, hotel.MsgRoomNotFound)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, newRoomView(room))
}

// CreateRoom (POST /api/rooms)
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	typ, err := hotel.ParseRoomType(payload.Type)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	state := hotel.Vacant
	if payload.State != "" {
		if state, err = hotel.ParseRoomState(payload.State); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	room, err := hotel.NewRoom(typ, payload.RoomNumber, state, payload.Price)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	out, err := ctrl.HotelSvc.AddRoom(room)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONOutcome(c, out, http.StatusCreated)
}

// UpdateRoom (PATCH /api/rooms/:number)
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	number, ok := intParam(c, "number")
	if !ok {
		return
	}

	var payload updateRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	var state *hotel.RoomState
	if payload.State != nil {
		st, err := hotel.ParseRoomState(*payload.State)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		state = &st
	}

	out, err := ctrl.HotelSvc.UpdateRoom(number, payload.Price, state)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONOutcome(c, out, http.StatusOK)
}

// DeleteRoom (DELETE /api/rooms/:number)
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	number, ok := intParam(c, "number")
	if !ok {
		return
	}

	out, err := ctrl.HotelSvc.RemoveRoom(number)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONOutcome(c, out, http.StatusOK)
}

// GetRoomHistory (GET /api/rooms/:number/history)
func (ctrl *RoomController) GetRoomHistory(c *gin.Context) {
	number, ok := intParam(c, "number")
	if !ok {
		return
	}

	ops, err := ctrl.HotelSvc.History(number)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ops)
}
