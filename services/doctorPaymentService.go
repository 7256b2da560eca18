package services

import (
	"context"

	"MedClinic/models"
	"MedClinic/repositories"
)

type DoctorPaymentService struct {
	repository *repositories.DoctorPaymentRepository
}

func NewDoctorPaymentService(repository *repositories.DoctorPaymentRepository) *DoctorPaymentService {
	return &DoctorPaymentService{repository: repository}
}

func (s *DoctorPaymentService) Create(ctx context.Context, payment *models.DoctorPayment) error {
	return s.repository.Create(ctx, payment)
}

func (s *DoctorPaymentService) GetByID(ctx context.Context, id uint) (*models.DoctorPayment, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *DoctorPaymentService) GetAll(ctx context.Context) ([]models.DoctorPayment, error) {
	return s.repository.GetAll(ctx)
}

func (s *DoctorPaymentService) Update(ctx context.Context, payment *models.DoctorPayment) error {
	return s.repository.Update(ctx, payment)
}

func (s *DoctorPaymentService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
