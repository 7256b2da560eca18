package handlers

import (
	"MedClinic/models"
	"MedClinic/serializers"
	"MedClinic/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payment models.Payment
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

func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
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

// GetPaymentDetail returns the projection with the patient and
// insurance expansions and enum labels.
func (h *PaymentHandler) GetPaymentDetail(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	payment, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, serializers.NewPaymentDetail(*payment))
}

func (h *PaymentHandler) GetAllPayments(c *gin.Context) {
	payments, err := h.service.GetAll(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, payments)
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var payment models.Payment
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

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
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
