package services

import (
	"context"

	"MedClinic/models"
	"MedClinic/repositories"
)

type PaymentService struct {
	repository *repositories.PaymentRepository
}

func NewPaymentService(repository *repositories.PaymentRepository) *PaymentService {
	return &PaymentService{repository: repository}
}

func (s *PaymentService) Create(ctx context.Context, payment *models.Payment) error {
	return s.repository.Create(ctx, payment)
}

func (s *PaymentService) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *PaymentService) GetAll(ctx context.Context) ([]models.Payment, error) {
	return s.repository.GetAll(ctx)
}

func (s *PaymentService) Update(ctx context.Context, payment *models.Payment) error {
	return s.repository.Update(ctx, payment)
}

func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
