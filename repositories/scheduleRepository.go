package repositories

import (
	"context"
	"fmt"

	"MedClinic/cache"
	"MedClinic/models"
	"MedClinic/utils"

	"gorm.io/gorm"
)

type DoctorScheduleRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDoctorScheduleRepository(db *gorm.DB, cache *cache.Cache) *DoctorScheduleRepository {
	return &DoctorScheduleRepository{db: db, cache: cache}
}

// Create adds an availability window. The (doctor, weekday, start, end)
// combination is unique, so re-declaring the same window fails.
func (r *DoctorScheduleRepository) Create(ctx context.Context, schedule *models.DoctorSchedule) error {
	if err := utils.ValidateDoctorScheduleData(*schedule); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(schedule).Error; err != nil {
		return utils.TranslateDBError("doctor_schedule", schedule.DoctorID, err)
	}
	return r.invalidateDoctor(ctx, schedule.DoctorID)
}

func (r *DoctorScheduleRepository) GetByID(ctx context.Context, doctorID string, id uint) (*models.DoctorSchedule, error) {
	var schedule models.DoctorSchedule
	err := r.db.WithContext(ctx).
		First(&schedule, "id = ? AND doctor_id = ?", id, doctorID).Error
	if err != nil {
		return nil, utils.TranslateDBError("doctor_schedule", fmt.Sprint(id), err)
	}
	return &schedule, nil
}

func (r *DoctorScheduleRepository) GetAllByDoctor(ctx context.Context, doctorID string) ([]models.DoctorSchedule, error) {
	var schedules []models.DoctorSchedule
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("weekday, start_time").
		Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules for doctor %s: %w", doctorID, err)
	}
	return schedules, nil
}

func (r *DoctorScheduleRepository) Update(ctx context.Context, schedule *models.DoctorSchedule) error {
	if err := utils.ValidateDoctorScheduleData(*schedule); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Save(schedule)
	if tx.Error != nil {
		return utils.TranslateDBError("doctor_schedule", fmt.Sprint(schedule.ID), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "doctor_schedule", ID: fmt.Sprint(schedule.ID)}
	}
	return r.invalidateDoctor(ctx, schedule.DoctorID)
}

func (r *DoctorScheduleRepository) Delete(ctx context.Context, doctorID string, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.DoctorSchedule{}, "id = ? AND doctor_id = ?", id, doctorID)
	if tx.Error != nil {
		return utils.TranslateDBError("doctor_schedule", fmt.Sprint(id), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "doctor_schedule", ID: fmt.Sprint(id)}
	}
	return r.invalidateDoctor(ctx, doctorID)
}

// invalidateDoctor drops the cached doctor detail, which embeds the
// doctor's schedules.
func (r *DoctorScheduleRepository) invalidateDoctor(ctx context.Context, doctorID string) error {
	if err := r.cache.Delete(ctx, fmt.Sprintf("doctor_cache:%s", doctorID)); err != nil {
		return fmt.Errorf("failed to delete doctor cache: %w", err)
	}
	return nil
}
