package handlers

import (
	"MedClinic/models"
	"MedClinic/services"

	"github.com/gin-gonic/gin"
)

// DoctorScheduleHandler serves the schedule collection nested under a
// doctor: /doctors/:id/schedules.
type DoctorScheduleHandler struct {
	service *services.DoctorScheduleService
}

func NewDoctorScheduleHandler(service *services.DoctorScheduleService) *DoctorScheduleHandler {
	return &DoctorScheduleHandler{service: service}
}

func (h *DoctorScheduleHandler) CreateSchedule(c *gin.Context) {
	var schedule models.DoctorSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	schedule.DoctorID = c.Param("id")
	if err := h.service.Create(c, &schedule); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, schedule)
}

func (h *DoctorScheduleHandler) GetScheduleByID(c *gin.Context) {
	scheduleID, ok := paramUint(c, "schedule_id")
	if !ok {
		return
	}
	schedule, err := h.service.GetByID(c, c.Param("id"), scheduleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, schedule)
}

func (h *DoctorScheduleHandler) GetSchedulesByDoctor(c *gin.Context) {
	schedules, err := h.service.GetAllByDoctor(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, schedules)
}

func (h *DoctorScheduleHandler) UpdateSchedule(c *gin.Context) {
	scheduleID, ok := paramUint(c, "schedule_id")
	if !ok {
		return
	}
	var schedule models.DoctorSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	schedule.ID = scheduleID
	schedule.DoctorID = c.Param("id")
	if err := h.service.Update(c, &schedule); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, schedule)
}

func (h *DoctorScheduleHandler) DeleteSchedule(c *gin.Context) {
	scheduleID, ok := paramUint(c, "schedule_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, c.Param("id"), scheduleID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, nil)
}
