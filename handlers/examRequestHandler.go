package handlers

import (
	"MedClinic/models"
	"MedClinic/services"

	"github.com/gin-gonic/gin"
)

// ExamRequestHandler serves the exam request collection nested under a
// medical record: /medical_records/:id/exam_requests.
type ExamRequestHandler struct {
	service *services.ExamRequestService
}

func NewExamRequestHandler(service *services.ExamRequestService) *ExamRequestHandler {
	return &ExamRequestHandler{service: service}
}

func (h *ExamRequestHandler) CreateExamRequest(c *gin.Context) {
	recordID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var examRequest models.ExamRequest
	if err := c.ShouldBindJSON(&examRequest); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	examRequest.MedicalRecordID = recordID
	if err := h.service.Create(c, &examRequest); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, examRequest)
}

func (h *ExamRequestHandler) GetExamRequestByID(c *gin.Context) {
	recordID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	examRequestID, ok := paramUint(c, "exam_request_id")
	if !ok {
		return
	}
	examRequest, err := h.service.GetByID(c, recordID, examRequestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, examRequest)
}

func (h *ExamRequestHandler) GetExamRequestsByRecord(c *gin.Context) {
	recordID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	examRequests, err := h.service.GetAllByRecord(c, recordID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, examRequests)
}

func (h *ExamRequestHandler) UpdateExamRequest(c *gin.Context) {
	recordID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	examRequestID, ok := paramUint(c, "exam_request_id")
	if !ok {
		return
	}
	var examRequest models.ExamRequest
	if err := c.ShouldBindJSON(&examRequest); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	examRequest.ID = examRequestID
	examRequest.MedicalRecordID = recordID
	if err := h.service.Update(c, &examRequest); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, examRequest)
}

func (h *ExamRequestHandler) DeleteExamRequest(c *gin.Context) {
	recordID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	examRequestID, ok := paramUint(c, "exam_request_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, recordID, examRequestID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(204, nil)
}
