package controllers

import (
	"net/http"
	"sort"

	"hotel-desk/services"
	"hotel-desk/utils"

	"github.com/gin-gonic/gin"
)

type checkInPayload struct {
	RoomNumber int    `json:"roomNumber" binding:"required"`
	GuestName  string `json:"guestName" binding:"required"`
}

type checkOutPayload struct {
	RoomNumber int `json:"roomNumber" binding:"required"`
}

type reservationView struct {
	RoomNumber int    `json:"roomNumber"`
	Guest      string `json:"guest"`
}

type ReservationController struct {
	HotelSvc *services.HotelService
}

func NewReservationController(svc *services.HotelService) *ReservationController {
	return &ReservationController{HotelSvc: svc}
}

// GetReservations (GET /api/reservations), ordered by room number.
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	res := ctrl.HotelSvc.Reservations()
	views := make([]reservationView, 0, len(res))
	for number, guest := range res {
		views = append(views, reservationView{RoomNumber: number, Guest: guest})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].RoomNumber < views[j].RoomNumber })
	utils.JSONSuccess(c, http.StatusOK, views)
}

// CheckIn (POST /api/checkin)
func (ctrl *ReservationController) CheckIn(c *gin.Context) {
	var payload checkInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid check-in payload: "+err.Error())
		return
	}

	out, err := ctrl.HotelSvc.CheckIn(payload.RoomNumber, payload.GuestName)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONOutcome(c, out, http.StatusOK)
}

// CheckOut (POST /api/checkout)
func (ctrl *ReservationController) CheckOut(c *gin.Context) {
	var payload checkOutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid check-out payload: "+err.Error())
		return
	}

	out, err := ctrl.HotelSvc.CheckOut(payload.RoomNumber)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONOutcome(c, out, http.StatusOK)
}
