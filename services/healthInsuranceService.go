package services

import (
	"context"

	"MedClinic/models"
	"MedClinic/repositories"
)

type HealthInsuranceService struct {
	repository *repositories.HealthInsuranceRepository
}

func NewHealthInsuranceService(repository *repositories.HealthInsuranceRepository) *HealthInsuranceService {
	return &HealthInsuranceService{repository: repository}
}

func (s *HealthInsuranceService) Create(ctx context.Context, insurance *models.HealthInsurance) error {
	return s.repository.Create(ctx, insurance)
}

func (s *HealthInsuranceService) GetByID(ctx context.Context, id string) (*models.HealthInsurance, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *HealthInsuranceService) GetAll(ctx context.Context) ([]models.HealthInsurance, error) {
	return s.repository.GetAll(ctx)
}

func (s *HealthInsuranceService) Update(ctx context.Context, insurance *models.HealthInsurance) error {
	return s.repository.Update(ctx, insurance)
}

func (s *HealthInsuranceService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
