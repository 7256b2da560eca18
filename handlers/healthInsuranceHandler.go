package handlers

import (
	"MedClinic/models"
	"MedClinic/services"

	"github.com/gin-gonic/gin"
)

type HealthInsuranceHandler struct {
	service *services.HealthInsuranceService
}

func NewHealthInsuranceHandler(service *services.HealthInsuranceService) *HealthInsuranceHandler {
	return &HealthInsuranceHandler{service: service}
}

func (h *HealthInsuranceHandler) CreateHealthInsurance(c *gin.Context) {
	var insurance models.HealthInsurance
	if err := c.ShouldBindJSON(&insurance); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &insurance); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, insurance)
}

func (h *HealthInsuranceHandler) GetHealthInsuranceByID(c *gin.Context) {
	id := c.Param("id")
	insurance, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, insurance)
}

func (h *HealthInsuranceHandler) GetAllHealthInsurances(c *gin.Context) {
	insurances, err := h.service.GetAll(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, insurances)
}

func (h *HealthInsuranceHandler) UpdateHealthInsurance(c *gin.Context) {
	id := c.Param("id")
	var insurance models.HealthInsurance
	if err := c.ShouldBindJSON(&insurance); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	insurance.ID = id
	if err := h.service.Update(c, &insurance); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, insurance)
}

func (h *HealthInsuranceHandler) DeleteHealthInsurance(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, nil)
}
