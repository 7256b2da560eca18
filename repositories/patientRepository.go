package repositories

import (
	"context"
	"fmt"
	"log"
	"time"

	"MedClinic/cache"
	"MedClinic/models"
	"MedClinic/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PatientCacheExpiry = 7 * 24 * time.Hour
)

type PatientRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPatientRepository(db *gorm.DB, cache *cache.Cache) *PatientRepository {
	return &PatientRepository{db: db, cache: cache}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if err := utils.ValidatePatientData(*patient); err != nil {
		return err
	}
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return utils.TranslateDBError("patient", patient.ID, err)
	}
	return r.invalidate(ctx, patient.ID)
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	cacheKey := r.getPatientCacheKey(id)
	var cached models.Patient
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err := r.db.WithContext(ctx).
		Preload("HealthInsurance").
		First(&patient, "id = ?", id).Error
	if err != nil {
		return nil, utils.TranslateDBError("patient", id, err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, patient, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}
	return &patient, nil
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	cacheKey := "patients_cache"
	var cached []models.Patient
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	if err := r.db.WithContext(ctx).Order("created_at").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, patients, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}
	return patients, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	if err := utils.ValidatePatientData(*patient); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Omit("created_at").Save(patient)
	if tx.Error != nil {
		return utils.TranslateDBError("patient", patient.ID, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "patient", ID: patient.ID}
	}
	return r.invalidate(ctx, patient.ID)
}

// Delete removes the patient. Appointments, payments and medical records
// reference patients with protect semantics, so the database rejects the
// delete while any of them exist.
func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&models.Patient{}, "id = ?", id)
	if tx.Error != nil {
		return utils.TranslateDBError("patient", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "patient", ID: id}
	}
	return r.invalidate(ctx, id)
}

func (r *PatientRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "patients_cache")
}

func (r *PatientRepository) getPatientCacheKey(id string) string {
	return fmt.Sprintf("patient_cache:%s", id)
}
