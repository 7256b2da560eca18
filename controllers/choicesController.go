package controllers

import (
	"MedClinic/models"

	"github.com/gin-gonic/gin"
)

// choicesHandler returns the enumeration catalog as code and label pairs
// so clients can render selection lists without hardcoding codes.
func choicesHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"appointment_statuses":  models.AppointmentStatuses,
		"notification_types":    models.NotificationTypes,
		"notification_statuses": models.NotificationStatuses,
		"exam_request_statuses": models.ExamRequestStatuses,
		"payment_methods":       models.PaymentMethods,
		"payment_statuses":      models.PaymentStatuses,
		"expense_categories":    models.ExpenseCategories,
		"genders":               models.Genders,
		"blood_types":           models.BloodTypes,
		"weekdays":              models.Weekdays,
	})
}

// SetupChoicesRoute publishes the enumeration catalog.
func SetupChoicesRoute(router *gin.Engine) {
	router.GET("/choices", choicesHandler)
}
