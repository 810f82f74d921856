// File: /controllers/errors.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventshub-api/services"
	"eventshub-api/utils"
)

// handleServiceError maps the service layer's sentinel errors onto HTTP
// statuses. Anything unrecognized is an internal error and its detail stays
// in the server log.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.SendError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		utils.SendError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrRateLimited):
		utils.SendError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.SendError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidState):
		utils.SendError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("controllers: unexpected error: %v", err)
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
	}
}
