package services

import (
	"context"

	"MedClinic/models"
	"MedClinic/repositories"
)

type NotificationService struct {
	repository *repositories.NotificationRepository
}

func NewNotificationService(repository *repositories.NotificationRepository) *NotificationService {
	return &NotificationService{repository: repository}
}

func (s *NotificationService) Create(ctx context.Context, notification *models.Notification) error {
	return s.repository.Create(ctx, notification)
}

func (s *NotificationService) GetByID(ctx context.Context, appointmentID, id uint) (*models.Notification, error) {
	return s.repository.GetByID(ctx, appointmentID, id)
}

func (s *NotificationService) GetAllByAppointment(ctx context.Context, appointmentID uint) ([]models.Notification, error) {
	return s.repository.GetAllByAppointment(ctx, appointmentID)
}

func (s *NotificationService) Update(ctx context.Context, notification *models.Notification) error {
	return s.repository.Update(ctx, notification)
}

func (s *NotificationService) Delete(ctx context.Context, appointmentID, id uint) error {
	return s.repository.Delete(ctx, appointmentID, id)
}
