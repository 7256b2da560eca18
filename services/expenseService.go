package services

import (
	"context"

	"MedClinic/models"
	"MedClinic/repositories"
)

type ExpenseService struct {
	repository *repositories.ExpenseRepository
}

func NewExpenseService(repository *repositories.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repository: repository}
}

func (s *ExpenseService) Create(ctx context.Context, expense *models.Expense) error {
	return s.repository.Create(ctx, expense)
}

func (s *ExpenseService) GetByID(ctx context.Context, id uint) (*models.Expense, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ExpenseService) GetAll(ctx context.Context) ([]models.Expense, error) {
	return s.repository.GetAll(ctx)
}

func (s *ExpenseService) Update(ctx context.Context, expense *models.Expense) error {
	return s.repository.Update(ctx, expense)
}

func (s *ExpenseService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
