package controllers

import (
	"net/http"

	"github.com/Mourad-Gh-code/HydrationTime/services"

	"github.com/gin-gonic/gin"
)

func userIDFromCtx(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	uid, ok := v.(string)
	return uid, ok && uid != ""
}

// fail maps service errors onto HTTP statuses: validation → 400, rest → 500.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if services.IsValidation(err) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
