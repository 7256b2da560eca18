package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"MedClinic/cache"
	"MedClinic/models"
	"MedClinic/utils"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	MedicalRecordCacheExpiry = 7 * 24 * time.Hour
)

type MedicalRecordRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewMedicalRecordRepository(db *gorm.DB, cache *cache.Cache) *MedicalRecordRepository {
	return &MedicalRecordRepository{db: db, cache: cache}
}

// Create persists a medical record. The unique index on appointment_id
// enforces one record per appointment; Date is stamped here and never
// refreshed afterwards.
func (r *MedicalRecordRepository) Create(ctx context.Context, record *models.MedicalRecord) error {
	if record.Date == "" {
		record.Date = time.Now().Format("2006-01-02")
	}
	if err := utils.ValidateMedicalRecordData(*record); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &utils.ConstraintViolation{Entity: "medical_record", Field: "appointment_id"}
		}
		return utils.TranslateDBError("medical_record", fmt.Sprint(record.ID), err)
	}
	return r.invalidate(ctx, record.ID)
}

func (r *MedicalRecordRepository) GetByID(ctx context.Context, id uint) (*models.MedicalRecord, error) {
	cacheKey := r.getRecordCacheKey(id)
	var cached models.MedicalRecord
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get medical record from cache: %v", err)
	}

	var record models.MedicalRecord
	err := r.db.WithContext(ctx).
		Preload("Patient.HealthInsurance").
		Preload("Doctor.Specialties").
		Preload("Doctor.Schedules").
		Preload("Appointment.Notifications").
		Preload("Prescriptions").
		Preload("ExamRequests").
		First(&record, "id = ?", id).Error
	if err != nil {
		return nil, utils.TranslateDBError("medical_record", fmt.Sprint(id), err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, record, MedicalRecordCacheExpiry); err != nil {
		log.Printf("Failed to set medical record in cache: %v", err)
	}
	return &record, nil
}

func (r *MedicalRecordRepository) GetAll(ctx context.Context) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all medical records: %w", err)
	}
	return records, nil
}

// Update refreshes the clinical note fields. Date stays whatever creation
// set it to: callers cannot move a record to another day.
func (r *MedicalRecordRepository) Update(ctx context.Context, record *models.MedicalRecord) error {
	if err := utils.ValidateMedicalRecordData(*record); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Omit("date", "created_at").Save(record)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return &utils.ConstraintViolation{Entity: "medical_record", Field: "appointment_id"}
		}
		return utils.TranslateDBError("medical_record", fmt.Sprint(record.ID), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "medical_record", ID: fmt.Sprint(record.ID)}
	}
	return r.invalidate(ctx, record.ID)
}

// Delete removes the record together with its prescriptions and exam
// requests (cascade).
func (r *MedicalRecordRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.MedicalRecord{}, "id = ?", id)
	if tx.Error != nil {
		return utils.TranslateDBError("medical_record", fmt.Sprint(id), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "medical_record", ID: fmt.Sprint(id)}
	}
	return r.invalidate(ctx, id)
}

func (r *MedicalRecordRepository) invalidate(ctx context.Context, id uint) error {
	if err := r.cache.Delete(ctx, r.getRecordCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete medical record cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "medical_records_cache")
}

func (r *MedicalRecordRepository) getRecordCacheKey(id uint) string {
	return fmt.Sprintf("medical_record_cache:%d", id)
}
