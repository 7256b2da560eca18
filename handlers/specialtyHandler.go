package handlers

import (
	"MedClinic/models"
	"MedClinic/services"

	"github.com/gin-gonic/gin"
)

type SpecialtyHandler struct {
	service *services.SpecialtyService
}

func NewSpecialtyHandler(service *services.SpecialtyService) *SpecialtyHandler {
	return &SpecialtyHandler{service: service}
}

func (h *SpecialtyHandler) CreateSpecialty(c *gin.Context) {
	var specialty models.Specialty
	if err := c.ShouldBindJSON(&specialty); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &specialty); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, specialty)
}

func (h *SpecialtyHandler) GetSpecialtyByID(c *gin.Context) {
	id := c.Param("id")
	specialty, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, specialty)
}

func (h *SpecialtyHandler) GetAllSpecialties(c *gin.Context) {
	specialties, err := h.service.GetAll(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, specialties)
}

func (h *SpecialtyHandler) UpdateSpecialty(c *gin.Context) {
	id := c.Param("id")
	var specialty models.Specialty
	if err := c.ShouldBindJSON(&specialty); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	specialty.ID = id
	if err := h.service.Update(c, &specialty); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, specialty)
}

func (h *SpecialtyHandler) DeleteSpecialty(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, nil)
}
