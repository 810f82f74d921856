// File: /controllers/notification_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventshub-api/services"
	"eventshub-api/utils"
)

type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// List returns the caller's notifications, newest first.
func (nc *NotificationController) List(c *gin.Context) {
	notifications, err := nc.notifications.ListForUser(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "count": len(notifications)})
}

// UnreadCount returns the caller's unread notification count.
func (nc *NotificationController) UnreadCount(c *gin.Context) {
	count, err := nc.notifications.UnreadCount(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load count"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkRead marks one of the caller's notifications as read.
func (nc *NotificationController) MarkRead(c *gin.Context) {
	if err := nc.notifications.MarkRead(c.Param("id"), c.GetString("user_id")); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Notification marked as read", nil)
}

// ListAdmin returns the global admin notifications, newest first (admin only).
func (nc *NotificationController) ListAdmin(c *gin.Context) {
	notifications, err := nc.notifications.ListAdmin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "count": len(notifications)})
}

// AdminUnreadCount returns the unread admin notification count (admin only).
func (nc *NotificationController) AdminUnreadCount(c *gin.Context) {
	count, err := nc.notifications.AdminUnreadCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load count"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkAdminRead marks an admin notification as read (admin only).
func (nc *NotificationController) MarkAdminRead(c *gin.Context) {
	if err := nc.notifications.MarkAdminRead(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Notification marked as read", nil)
}
