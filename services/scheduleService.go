package services

import (
	"context"

	"MedClinic/models"
	"MedClinic/repositories"
)

type DoctorScheduleService struct {
	repository *repositories.DoctorScheduleRepository
}

func NewDoctorScheduleService(repository *repositories.DoctorScheduleRepository) *DoctorScheduleService {
	return &DoctorScheduleService{repository: repository}
}

func (s *DoctorScheduleService) Create(ctx context.Context, schedule *models.DoctorSchedule) error {
	return s.repository.Create(ctx, schedule)
}

func (s *DoctorScheduleService) GetByID(ctx context.Context, doctorID string, id uint) (*models.DoctorSchedule, error) {
	return s.repository.GetByID(ctx, doctorID, id)
}

func (s *DoctorScheduleService) GetAllByDoctor(ctx context.Context, doctorID string) ([]models.DoctorSchedule, error) {
	return s.repository.GetAllByDoctor(ctx, doctorID)
}

func (s *DoctorScheduleService) Update(ctx context.Context, schedule *models.DoctorSchedule) error {
	return s.repository.Update(ctx, schedule)
}

func (s *DoctorScheduleService) Delete(ctx context.Context, doctorID string, id uint) error {
	return s.repository.Delete(ctx, doctorID, id)
}
