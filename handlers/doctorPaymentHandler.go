package handlers

import (
	"MedClinic/models"
	"MedClinic/services"

	"github.com/gin-gonic/gin"
)

type DoctorPaymentHandler struct {
	service *services.DoctorPaymentService
}

func NewDoctorPaymentHandler(service *services.DoctorPaymentService) *DoctorPaymentHandler {
	return &DoctorPaymentHandler{service: service}
}

func (h *DoctorPaymentHandler) CreateDoctorPayment(c *gin.Context) {
	var payment models.DoctorPayment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &payment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, payment)
}

func (h *DoctorPaymentHandler) GetDoctorPaymentByID(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	payment, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, payment)
}

func (h *DoctorPaymentHandler) GetAllDoctorPayments(c *gin.Context) {
	payments, err := h.service.GetAll(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, payments)
}

func (h *DoctorPaymentHandler) UpdateDoctorPayment(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var payment models.DoctorPayment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	payment.ID = id
	if err := h.service.Update(c, &payment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, payment)
}

func (h *DoctorPaymentHandler) DeleteDoctorPayment(c *gin.Context) {
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
