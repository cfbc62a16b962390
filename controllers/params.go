package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"hotel-desk/utils"

	"github.com/gin-gonic/gin"
)

// intParam reads a numeric path parameter and answers 400 when it is not one.
func intParam(c *gin.Context, name string) (int, bool) {
	raw := strings.TrimSpace(c.Param(name))
	v, err := strconv.Atoi(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("%s must be an integer, got %q", name, raw))
		return 0, false
	}
	return v, true
}
