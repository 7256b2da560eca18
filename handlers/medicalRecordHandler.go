package handlers

import (
	"MedClinic/models"
	"MedClinic/serializers"
	"MedClinic/services"

	"github.com/gin-gonic/gin"
)

type MedicalRecordHandler struct {
	service *services.MedicalRecordService
}

func NewMedicalRecordHandler(service *services.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{service: service}
}

func (h *MedicalRecordHandler) CreateMedicalRecord(c *gin.Context) {
	var record models.MedicalRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &record); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, record)
}

func (h *MedicalRecordHandler) GetMedicalRecordByID(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	record, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, record)
}

// GetMedicalRecordDetail returns the projection with the patient, doctor
// and appointment expansions plus prescriptions and exam requests.
func (h *MedicalRecordHandler) GetMedicalRecordDetail(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	record, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, serializers.NewMedicalRecordDetail(*record))
}

func (h *MedicalRecordHandler) GetAllMedicalRecords(c *gin.Context) {
	records, err := h.service.GetAll(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, records)
}

func (h *MedicalRecordHandler) UpdateMedicalRecord(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var record models.MedicalRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	record.ID = id
	if err := h.service.Update(c, &record); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, record)
}

func (h *MedicalRecordHandler) DeleteMedicalRecord(c *gin.Context) {
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
