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
	DoctorCacheExpiry = 7 * 24 * time.Hour
)

type DoctorRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDoctorRepository(db *gorm.DB, cache *cache.Cache) *DoctorRepository {
	return &DoctorRepository{db: db, cache: cache}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := utils.ValidateDoctorData(*doctor); err != nil {
		return err
	}
	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return utils.TranslateDBError("doctor", doctor.ID, err)
	}
	return r.invalidate(ctx, doctor.ID)
}

func (r *DoctorRepository) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	cacheKey := r.getDoctorCacheKey(id)
	var cached models.Doctor
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get doctor from cache: %v", err)
	}

	var doctor models.Doctor
	err := r.db.WithContext(ctx).
		Preload("Specialties").
		Preload("Schedules").
		First(&doctor, "id = ?", id).Error
	if err != nil {
		return nil, utils.TranslateDBError("doctor", id, err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, doctor, DoctorCacheExpiry); err != nil {
		log.Printf("Failed to set doctor in cache: %v", err)
	}
	return &doctor, nil
}

func (r *DoctorRepository) GetAll(ctx context.Context) ([]models.Doctor, error) {
	cacheKey := "doctors_cache"
	var cached []models.Doctor
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get doctors from cache: %v", err)
	}

	var doctors []models.Doctor
	err := r.db.WithContext(ctx).
		Preload("Specialties").
		Order("created_at").
		Find(&doctors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all doctors: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, doctors, DoctorCacheExpiry); err != nil {
		log.Printf("Failed to set doctors in cache: %v", err)
	}
	return doctors, nil
}

func (r *DoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	if err := utils.ValidateDoctorData(*doctor); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Omit("Specialties", "Schedules", "created_at").Save(doctor)
	if tx.Error != nil {
		return utils.TranslateDBError("doctor", doctor.ID, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "doctor", ID: doctor.ID}
	}
	// Replace keeps the specialty links in step with the submitted set,
	// removing stale join rows that Save would leave behind.
	if doctor.Specialties != nil {
		if err := r.db.WithContext(ctx).Model(doctor).Association("Specialties").Replace(doctor.Specialties); err != nil {
			return utils.TranslateDBError("doctor", doctor.ID, err)
		}
	}
	return r.invalidate(ctx, doctor.ID)
}

// Delete removes the doctor. Appointments, medical records and payouts
// reference doctors with protect semantics; schedules and specialty links
// cascade away with the doctor.
func (r *DoctorRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&models.Doctor{}, "id = ?", id)
	if tx.Error != nil {
		return utils.TranslateDBError("doctor", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "doctor", ID: id}
	}
	return r.invalidate(ctx, id)
}

func (r *DoctorRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getDoctorCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete doctor cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "doctors_cache")
}

func (r *DoctorRepository) getDoctorCacheKey(id string) string {
	return fmt.Sprintf("doctor_cache:%s", id)
}
