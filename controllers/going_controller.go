// File: /controllers/going_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventshub-api/services"
)

type GoingController struct {
	going *services.GoingService
}

func NewGoingController(going *services.GoingService) *GoingController {
	return &GoingController{going: going}
}

// Toggle flips the caller's going state for an event and returns the new state.
func (gc *GoingController) Toggle(c *gin.Context) {
	var req struct {
		UserName string `json:"user_name"`
	}
	// The body is optional; an empty name is allowed.
	_ = c.ShouldBindJSON(&req)

	going, err := gc.going.Toggle(c.Param("id"), c.GetString("user_id"), req.UserName)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"going": going})
}

// Counts returns attendee counts for the requested event ids.
func (gc *GoingController) Counts(c *gin.Context) {
	var req struct {
		EventIDs []string `json:"event_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	counts, err := gc.going.CountGoing(req.EventIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load counts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"counts": counts})
}

// Status reports, per requested event id, whether the caller is going.
func (gc *GoingController) Status(c *gin.Context) {
	var req struct {
		EventIDs []string `json:"event_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := gc.going.StatusFor(req.EventIDs, c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// Attendees lists the going records for one event (admin only).
func (gc *GoingController) Attendees(c *gin.Context) {
	records, err := gc.going.AttendeesFor(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendees": records, "count": len(records)})
}
