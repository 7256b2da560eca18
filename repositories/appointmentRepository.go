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
	AppointmentCacheExpiry = 7 * 24 * time.Hour
)

type AppointmentRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewAppointmentRepository(db *gorm.DB, cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{db: db, cache: cache}
}

// Create persists an appointment. The database's unique index on
// (doctor_id, date, start_time) is the double-booking guard: two concurrent
// inserts for the same slot cannot both commit, so there is no check-then-
// insert race to worry about here.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment.Status == "" {
		appointment.Status = models.AppointmentScheduled
	}
	if err := utils.ValidateAppointmentData(*appointment); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return r.translateSlotError(appointment, err)
	}
	return r.invalidate(ctx, appointment.ID)
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	cacheKey := r.getAppointmentCacheKey(id)
	var cached models.Appointment
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get appointment from cache: %v", err)
	}

	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient.HealthInsurance").
		Preload("Doctor.Specialties").
		Preload("Doctor.Schedules").
		Preload("Notifications").
		First(&appointment, "id = ?", id).Error
	if err != nil {
		return nil, utils.TranslateDBError("appointment", fmt.Sprint(id), err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, appointment, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointment in cache: %v", err)
	}
	return &appointment, nil
}

// GetAll lists appointments in insertion order, optionally narrowed by
// doctor and/or date. Filtered reads skip the cache; the unfiltered listing
// is the hot path.
func (r *AppointmentRepository) GetAll(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	cacheKey := "appointments_cache"
	filtered := doctorID != "" || date != ""
	if !filtered {
		var cached []models.Appointment
		if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		} else if err != redis.Nil {
			log.Printf("Failed to get appointments from cache: %v", err)
		}
	}

	query := r.db.WithContext(ctx).Order("id")
	if doctorID != "" {
		query = query.Where("doctor_id = ?", doctorID)
	}
	if date != "" {
		query = query.Where("date = ?", date)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to get appointments: %w", err)
	}

	if !filtered {
		if err := r.cache.SetJSON(ctx, cacheKey, appointments, AppointmentCacheExpiry); err != nil {
			log.Printf("Failed to set appointments in cache: %v", err)
		}
	}
	return appointments, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if err := utils.ValidateAppointmentData(*appointment); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Omit("created_at").Save(appointment)
	if tx.Error != nil {
		return r.translateSlotError(appointment, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "appointment", ID: fmt.Sprint(appointment.ID)}
	}
	return r.invalidate(ctx, appointment.ID)
}

// Delete removes the appointment; its notifications, payment and medical
// record (with that record's prescriptions and exam requests) cascade away.
func (r *AppointmentRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if tx.Error != nil {
		return utils.TranslateDBError("appointment", fmt.Sprint(id), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "appointment", ID: fmt.Sprint(id)}
	}
	return r.invalidate(ctx, id)
}

// translateSlotError maps a duplicate-key failure to a DoubleBookingError.
// The slot index is the appointment table's only unique index, so any
// duplicate-key error on a write is a double booking.
func (r *AppointmentRepository) translateSlotError(appointment *models.Appointment, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &utils.DoubleBookingError{
			DoctorID:  appointment.DoctorID,
			Date:      appointment.Date,
			StartTime: appointment.StartTime,
		}
	}
	return utils.TranslateDBError("appointment", fmt.Sprint(appointment.ID), err)
}

func (r *AppointmentRepository) invalidate(ctx context.Context, id uint) error {
	if err := r.cache.Delete(ctx, r.getAppointmentCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete appointment cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "appointments_cache")
}

func (r *AppointmentRepository) getAppointmentCacheKey(id uint) string {
	return fmt.Sprintf("appointment_cache:%d", id)
}
