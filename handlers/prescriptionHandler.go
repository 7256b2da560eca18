package handlers

import (
	"MedClinic/models"
	"MedClinic/services"

	"github.com/gin-gonic/gin"
)

// PrescriptionHandler serves the prescription collection nested under a
// medical record: /medical_records/:id/prescriptions.
type PrescriptionHandler struct {
	service *services.PrescriptionService
}

func NewPrescriptionHandler(service *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service}
}

func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	recordID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var prescription models.Prescription
	if err := c.ShouldBindJSON(&prescription); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	prescription.MedicalRecordID = recordID
	if err := h.service.Create(c, &prescription); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, prescription)
}

func (h *PrescriptionHandler) GetPrescriptionByID(c *gin.Context) {
	recordID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	prescriptionID, ok := paramUint(c, "prescription_id")
	if !ok {
		return
	}
	prescription, err := h.service.GetByID(c, recordID, prescriptionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, prescription)
}

func (h *PrescriptionHandler) GetPrescriptionsByRecord(c *gin.Context) {
	recordID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	prescriptions, err := h.service.GetAllByRecord(c, recordID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, prescriptions)
}

func (h *PrescriptionHandler) UpdatePrescription(c *gin.Context) {
	recordID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	prescriptionID, ok := paramUint(c, "prescription_id")
	if !ok {
		return
	}
	var prescription models.Prescription
	if err := c.ShouldBindJSON(&prescription); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	prescription.ID = prescriptionID
	prescription.MedicalRecordID = recordID
	if err := h.service.Update(c, &prescription); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, prescription)
}

func (h *PrescriptionHandler) DeletePrescription(c *gin.Context) {
	recordID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	prescriptionID, ok := paramUint(c, "prescription_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, recordID, prescriptionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, nil)
}
