package repositories

import (
	"context"
	"fmt"

	"MedClinic/cache"
	"MedClinic/models"
	"MedClinic/utils"

	"gorm.io/gorm"
)

type ExamRequestRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewExamRequestRepository(db *gorm.DB, cache *cache.Cache) *ExamRequestRepository {
	return &ExamRequestRepository{db: db, cache: cache}
}

func (r *ExamRequestRepository) Create(ctx context.Context, examRequest *models.ExamRequest) error {
	if examRequest.Status == "" {
		examRequest.Status = models.ExamRequested
	}
	if err := utils.ValidateExamRequestData(*examRequest); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(examRequest).Error; err != nil {
		return utils.TranslateDBError("exam_request", fmt.Sprint(examRequest.ID), err)
	}
	return r.invalidateRecord(ctx, examRequest.MedicalRecordID)
}

func (r *ExamRequestRepository) GetByID(ctx context.Context, recordID, id uint) (*models.ExamRequest, error) {
	var examRequest models.ExamRequest
	err := r.db.WithContext(ctx).
		First(&examRequest, "id = ? AND medical_record_id = ?", id, recordID).Error
	if err != nil {
		return nil, utils.TranslateDBError("exam_request", fmt.Sprint(id), err)
	}
	return &examRequest, nil
}

func (r *ExamRequestRepository) GetAllByRecord(ctx context.Context, recordID uint) ([]models.ExamRequest, error) {
	var examRequests []models.ExamRequest
	err := r.db.WithContext(ctx).
		Where("medical_record_id = ?", recordID).
		Order("id").
		Find(&examRequests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get exam requests for record %d: %w", recordID, err)
	}
	return examRequests, nil
}

// Update accepts any status value for any current status; exam requests
// carry no transition table.
func (r *ExamRequestRepository) Update(ctx context.Context, examRequest *models.ExamRequest) error {
	if err := utils.ValidateExamRequestData(*examRequest); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Omit("created_at").Save(examRequest)
	if tx.Error != nil {
		return utils.TranslateDBError("exam_request", fmt.Sprint(examRequest.ID), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "exam_request", ID: fmt.Sprint(examRequest.ID)}
	}
	return r.invalidateRecord(ctx, examRequest.MedicalRecordID)
}

func (r *ExamRequestRepository) Delete(ctx context.Context, recordID, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.ExamRequest{}, "id = ? AND medical_record_id = ?", id, recordID)
	if tx.Error != nil {
		return utils.TranslateDBError("exam_request", fmt.Sprint(id), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "exam_request", ID: fmt.Sprint(id)}
	}
	return r.invalidateRecord(ctx, recordID)
}

// invalidateRecord drops the cached medical record detail, which embeds
// the record's exam requests.
func (r *ExamRequestRepository) invalidateRecord(ctx context.Context, recordID uint) error {
	if err := r.cache.Delete(ctx, fmt.Sprintf("medical_record_cache:%d", recordID)); err != nil {
		return fmt.Errorf("failed to delete medical record cache: %w", err)
	}
	return nil
}
