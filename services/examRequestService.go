package services

import (
	"context"

	"MedClinic/models"
	"MedClinic/repositories"
)

type ExamRequestService struct {
	repository *repositories.ExamRequestRepository
}

func NewExamRequestService(repository *repositories.ExamRequestRepository) *ExamRequestService {
	return &ExamRequestService{repository: repository}
}

func (s *ExamRequestService) Create(ctx context.Context, examRequest *models.ExamRequest) error {
	return s.repository.Create(ctx, examRequest)
}

func (s *ExamRequestService) GetByID(ctx context.Context, recordID, id uint) (*models.ExamRequest, error) {
	return s.repository.GetByID(ctx, recordID, id)
}

func (s *ExamRequestService) GetAllByRecord(ctx context.Context, recordID uint) ([]models.ExamRequest, error) {
	return s.repository.GetAllByRecord(ctx, recordID)
}

func (s *ExamRequestService) Update(ctx context.Context, examRequest *models.ExamRequest) error {
	return s.repository.Update(ctx, examRequest)
}

func (s *ExamRequestService) Delete(ctx context.Context, recordID, id uint) error {
	return s.repository.Delete(ctx, recordID, id)
}
