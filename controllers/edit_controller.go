// File: /controllers/edit_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventshub-api/models"
	"eventshub-api/services"
	"eventshub-api/utils"
)

type EditController struct {
	edits  *services.EditService
	events *services.EventService
}

func NewEditController(edits *services.EditService, events *services.EventService) *EditController {
	return &EditController{edits: edits, events: events}
}

type submitEditRequest struct {
	OriginalEvent   models.MergedEvent   `json:"original_event"`
	ProposedChanges models.MetadataPatch `json:"proposed_changes"`
}

// Submit records a pending edit proposal against an event.
func (ec *EditController) Submit(c *gin.Context) {
	var req submitEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eventID := c.Param("id")
	userID := c.GetString("user_id")
	userEmail := c.GetString("email")

	id, err := ec.edits.Submit(eventID, req.OriginalEvent, req.ProposedChanges, userID, userEmail)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendCreated(c, "Edit request submitted", gin.H{"id": id})
}

// Mine lists the authenticated user's edit proposals, newest first.
func (ec *EditController) Mine(c *gin.Context) {
	edits, err := ec.edits.ForUser(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load edits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"edits": edits, "count": len(edits)})
}

// Pending lists the edits awaiting review, oldest first (admin only).
func (ec *EditController) Pending(c *gin.Context) {
	edits, err := ec.edits.Pending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load edits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"edits": edits, "count": len(edits)})
}

// Decide approves or rejects a pending edit (admin only). Approval merges the
// proposed changes into the event's metadata.
func (ec *EditController) Decide(c *gin.Context) {
	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ec.edits.Decide(c.Param("id"), req.Status, req.AdminNotes, c.GetBool("is_admin"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if req.Status == models.RequestStatusApproved {
		ec.events.InvalidateCache()
	}

	utils.SendSuccess(c, "Edit "+string(req.Status), nil)
}
