package handlers

import (
	"MedClinic/models"
	"MedClinic/services"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the notification collection nested under an
// appointment: /appointments/:id/notifications.
type NotificationHandler struct {
	service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	appointmentID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var notification models.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	notification.AppointmentID = appointmentID
	if err := h.service.Create(c, &notification); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, notification)
}

func (h *NotificationHandler) GetNotificationByID(c *gin.Context) {
	appointmentID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	notificationID, ok := paramUint(c, "notification_id")
	if !ok {
		return
	}
	notification, err := h.service.GetByID(c, appointmentID, notificationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, notification)
}

func (h *NotificationHandler) GetNotificationsByAppointment(c *gin.Context) {
	appointmentID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	notifications, err := h.service.GetAllByAppointment(c, appointmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, notifications)
}

func (h *NotificationHandler) UpdateNotification(c *gin.Context) {
	appointmentID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	notificationID, ok := paramUint(c, "notification_id")
	if !ok {
		return
	}
	var notification models.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	notification.ID = notificationID
	notification.AppointmentID = appointmentID
	if err := h.service.Update(c, &notification); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, notification)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	appointmentID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	notificationID, ok := paramUint(c, "notification_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, appointmentID, notificationID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, nil)
}
