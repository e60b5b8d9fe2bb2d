package handlers

import (
	"errors"
	"log"
	"net/http"

	"commquiz/services"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto the API's error envelope. Anything
// outside the domain taxonomy is a storage failure and must not leak its
// internals to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
	case errors.Is(err, services.ErrNoActiveSession):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No active session found"})
	case errors.Is(err, services.ErrAlreadyAttempted):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "You have already attempted this session"})
	case errors.Is(err, services.ErrInsufficientQuestions):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Not enough questions in the selected sessions"})
	default:
		log.Printf("Unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}
