package services

import (
	"context"

	"MedClinic/models"
	"MedClinic/repositories"
)

type SpecialtyService struct {
	repository *repositories.SpecialtyRepository
}

func NewSpecialtyService(repository *repositories.SpecialtyRepository) *SpecialtyService {
	return &SpecialtyService{repository: repository}
}

func (s *SpecialtyService) Create(ctx context.Context, specialty *models.Specialty) error {
	return s.repository.Create(ctx, specialty)
}

func (s *SpecialtyService) GetByID(ctx context.Context, id string) (*models.Specialty, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *SpecialtyService) GetAll(ctx context.Context) ([]models.Specialty, error) {
	return s.repository.GetAll(ctx)
}

func (s *SpecialtyService) Update(ctx context.Context, specialty *models.Specialty) error {
	return s.repository.Update(ctx, specialty)
}

func (s *SpecialtyService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
