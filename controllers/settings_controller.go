package controllers

import (
	"net/http"

	"hotel-desk/services"
	"hotel-desk/utils"

	"github.com/gin-gonic/gin"
)

type hotelSettingsPayload struct {
	Name string `json:"name" binding:"required"`
}

type SettingsController struct {
	HotelSvc *services.HotelService
}

func NewSettingsController(svc *services.HotelService) *SettingsController {
	return &SettingsController{HotelSvc: svc}
}

// GetHotel (GET /api/hotel)
func (ctrl *SettingsController) GetHotel(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.HotelSvc.Summary())
}

// UpdateHotel (PUT /api/hotel)
func (ctrl *SettingsController) UpdateHotel(c *gin.Context) {
	var payload hotelSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	out, err := ctrl.HotelSvc.Rename(payload.Name)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONOutcome(c, out, http.StatusOK)
}
