package utils

import (
	"net/http"

	"hotel-desk/hotel"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// StatusForOutcome maps an outcome kind to its HTTP status. okCode is used
// for successes so creates can answer 201.
func StatusForOutcome(out hotel.Outcome, okCode int) int {
	switch out.Kind {
	case hotel.KindOK:
		return okCode
	case hotel.KindNotFound, hotel.KindNoop:
		return http.StatusNotFound
	case hotel.KindInvalidTransition, hotel.KindConflict:
		return http.StatusConflict
	case hotel.KindInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// JSONOutcome writes the outcome with success reflecting its kind.
func JSONOutcome(c *gin.Context, out hotel.Outcome, okCode int) {
	c.JSON(StatusForOutcome(out, okCode), gin.H{"success": out.OK(), "outcome": out})
}
