// File: /controllers/request_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventshub-api/models"
	"eventshub-api/services"
	"eventshub-api/utils"
)

type RequestController struct {
	requests *services.RequestService
}

func NewRequestController(requests *services.RequestService) *RequestController {
	return &RequestController{requests: requests}
}

// Submit creates a new pending event request for the authenticated user.
func (rc *RequestController) Submit(c *gin.Context) {
	var input services.SubmitRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	userEmail := c.GetString("email")

	id, err := rc.requests.Submit(input, userID, userEmail)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendCreated(c, "Event request submitted", gin.H{"id": id})
}

// Mine lists the authenticated user's requests, newest first.
func (rc *RequestController) Mine(c *gin.Context) {
	requests, err := rc.requests.ForUser(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "count": len(requests)})
}

// Pending lists the requests awaiting review, oldest first (admin only).
func (rc *RequestController) Pending(c *gin.Context) {
	requests, err := rc.requests.Pending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "count": len(requests)})
}

type decideRequest struct {
	Status     models.RequestStatus `json:"status" binding:"required"`
	AdminNotes string               `json:"admin_notes"`
}

// Decide approves or rejects a pending request (admin only).
func (rc *RequestController) Decide(c *gin.Context) {
	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := rc.requests.Decide(c.Param("id"), req.Status, req.AdminNotes, c.GetBool("is_admin"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Request "+string(req.Status), nil)
}

// Delete removes one of the caller's own approved requests.
func (rc *RequestController) Delete(c *gin.Context) {
	err := rc.requests.Delete(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Request deleted", nil)
}
