package repositories

import (
	"context"
	"fmt"

	"MedClinic/cache"
	"MedClinic/models"
	"MedClinic/utils"

	"gorm.io/gorm"
)

type PrescriptionRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPrescriptionRepository(db *gorm.DB, cache *cache.Cache) *PrescriptionRepository {
	return &PrescriptionRepository{db: db, cache: cache}
}

func (r *PrescriptionRepository) Create(ctx context.Context, prescription *models.Prescription) error {
	if err := utils.ValidatePrescriptionData(*prescription); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(prescription).Error; err != nil {
		return utils.TranslateDBError("prescription", fmt.Sprint(prescription.ID), err)
	}
	return r.invalidateRecord(ctx, prescription.MedicalRecordID)
}

func (r *PrescriptionRepository) GetByID(ctx context.Context, recordID, id uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.db.WithContext(ctx).
		First(&prescription, "id = ? AND medical_record_id = ?", id, recordID).Error
	if err != nil {
		return nil, utils.TranslateDBError("prescription", fmt.Sprint(id), err)
	}
	return &prescription, nil
}

func (r *PrescriptionRepository) GetAllByRecord(ctx context.Context, recordID uint) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.WithContext(ctx).
		Where("medical_record_id = ?", recordID).
		Order("id").
		Find(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get prescriptions for record %d: %w", recordID, err)
	}
	return prescriptions, nil
}

func (r *PrescriptionRepository) Update(ctx context.Context, prescription *models.Prescription) error {
	if err := utils.ValidatePrescriptionData(*prescription); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Omit("created_at").Save(prescription)
	if tx.Error != nil {
		return utils.TranslateDBError("prescription", fmt.Sprint(prescription.ID), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "prescription", ID: fmt.Sprint(prescription.ID)}
	}
	return r.invalidateRecord(ctx, prescription.MedicalRecordID)
}

func (r *PrescriptionRepository) Delete(ctx context.Context, recordID, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.Prescription{}, "id = ? AND medical_record_id = ?", id, recordID)
	if tx.Error != nil {
		return utils.TranslateDBError("prescription", fmt.Sprint(id), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "prescription", ID: fmt.Sprint(id)}
	}
	return r.invalidateRecord(ctx, recordID)
}

// invalidateRecord drops the cached medical record detail, which embeds
// the record's prescriptions.
func (r *PrescriptionRepository) invalidateRecord(ctx context.Context, recordID uint) error {
	if err := r.cache.Delete(ctx, fmt.Sprintf("medical_record_cache:%d", recordID)); err != nil {
		return fmt.Errorf("failed to delete medical record cache: %w", err)
	}
	return nil
}
