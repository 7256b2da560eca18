package services

import (
	"context"

	"MedClinic/models"
	"MedClinic/repositories"
)

type PrescriptionService struct {
	repository *repositories.PrescriptionRepository
}

func NewPrescriptionService(repository *repositories.PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{repository: repository}
}

func (s *PrescriptionService) Create(ctx context.Context, prescription *models.Prescription) error {
	return s.repository.Create(ctx, prescription)
}

func (s *PrescriptionService) GetByID(ctx context.Context, recordID, id uint) (*models.Prescription, error) {
	return s.repository.GetByID(ctx, recordID, id)
}

func (s *PrescriptionService) GetAllByRecord(ctx context.Context, recordID uint) ([]models.Prescription, error) {
	return s.repository.GetAllByRecord(ctx, recordID)
}

func (s *PrescriptionService) Update(ctx context.Context, prescription *models.Prescription) error {
	return s.repository.Update(ctx, prescription)
}

func (s *PrescriptionService) Delete(ctx context.Context, recordID, id uint) error {
	return s.repository.Delete(ctx, recordID, id)
}
