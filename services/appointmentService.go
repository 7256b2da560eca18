package services

import (
	"context"

	"MedClinic/models"
	"MedClinic/repositories"
)

type AppointmentService struct {
	repository *repositories.AppointmentRepository
}

func NewAppointmentService(repository *repositories.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repository: repository}
}

func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment) error {
	return s.repository.Create(ctx, appointment)
}

func (s *AppointmentService) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *AppointmentService) GetAll(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return s.repository.GetAll(ctx, doctorID, date)
}

func (s *AppointmentService) Update(ctx context.Context, appointment *models.Appointment) error {
	return s.repository.Update(ctx, appointment)
}

func (s *AppointmentService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
