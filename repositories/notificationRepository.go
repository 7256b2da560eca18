package repositories

import (
	"context"
	"fmt"

	"MedClinic/cache"
	"MedClinic/models"
	"MedClinic/utils"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewNotificationRepository(db *gorm.DB, cache *cache.Cache) *NotificationRepository {
	return &NotificationRepository{db: db, cache: cache}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if notification.Status == "" {
		notification.Status = models.NotificationPending
	}
	if err := utils.ValidateNotificationData(*notification); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return utils.TranslateDBError("notification", fmt.Sprint(notification.ID), err)
	}
	return r.invalidateAppointment(ctx, notification.AppointmentID)
}

func (r *NotificationRepository) GetByID(ctx context.Context, appointmentID, id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.WithContext(ctx).
		First(&notification, "id = ? AND appointment_id = ?", id, appointmentID).Error
	if err != nil {
		return nil, utils.TranslateDBError("notification", fmt.Sprint(id), err)
	}
	return &notification, nil
}

func (r *NotificationRepository) GetAllByAppointment(ctx context.Context, appointmentID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("id").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications for appointment %d: %w", appointmentID, err)
	}
	return notifications, nil
}

// Update records a status change (pending, sent, failed). Delivery itself is
// someone else's job; this row is only the ledger of it.
func (r *NotificationRepository) Update(ctx context.Context, notification *models.Notification) error {
	if err := utils.ValidateNotificationData(*notification); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Save(notification)
	if tx.Error != nil {
		return utils.TranslateDBError("notification", fmt.Sprint(notification.ID), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "notification", ID: fmt.Sprint(notification.ID)}
	}
	return r.invalidateAppointment(ctx, notification.AppointmentID)
}

func (r *NotificationRepository) Delete(ctx context.Context, appointmentID, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.Notification{}, "id = ? AND appointment_id = ?", id, appointmentID)
	if tx.Error != nil {
		return utils.TranslateDBError("notification", fmt.Sprint(id), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "notification", ID: fmt.Sprint(id)}
	}
	return r.invalidateAppointment(ctx, appointmentID)
}

// invalidateAppointment drops the cached appointment detail, which embeds
// this appointment's notifications.
func (r *NotificationRepository) invalidateAppointment(ctx context.Context, appointmentID uint) error {
	if err := r.cache.Delete(ctx, fmt.Sprintf("appointment_cache:%d", appointmentID)); err != nil {
		return fmt.Errorf("failed to delete appointment cache: %w", err)
	}
	return nil
}
