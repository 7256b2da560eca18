package handlers

import (
	"MedClinic/models"
	"MedClinic/serializers"
	"MedClinic/services"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &appointment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	appointment, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, appointment)
}

// GetAppointmentDetail returns the projection with the doctor, patient
// and notification expansions and enum labels.
func (h *AppointmentHandler) GetAppointmentDetail(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	appointment, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, serializers.NewAppointmentDetail(*appointment))
}

// GetAllAppointments lists appointments, optionally narrowed by the
// doctor_id and date query parameters.
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	doctorID := c.Query("doctor_id")
	date := c.Query("date")
	appointments, err := h.service.GetAll(c, doctorID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointment.ID = id
	if err := h.service.Update(c, &appointment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, nil)
}
