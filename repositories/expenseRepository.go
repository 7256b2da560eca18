package repositories

import (
	"context"
	"fmt"

	"MedClinic/models"
	"MedClinic/utils"

	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if err := utils.ValidateExpenseData(*expense); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return utils.TranslateDBError("expense", fmt.Sprint(expense.ID), err)
	}
	return nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		return nil, utils.TranslateDBError("expense", fmt.Sprint(id), err)
	}
	return &expense, nil
}

func (r *ExpenseRepository) GetAll(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.WithContext(ctx).Order("id").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get all expenses: %w", err)
	}
	return expenses, nil
}

// Update stores new field values, including the manual paid flag flip; there
// is no reconciliation beyond that.
func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	if err := utils.ValidateExpenseData(*expense); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Omit("created_at").Save(expense)
	if tx.Error != nil {
		return utils.TranslateDBError("expense", fmt.Sprint(expense.ID), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "expense", ID: fmt.Sprint(expense.ID)}
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.Expense{}, "id = ?", id)
	if tx.Error != nil {
		return utils.TranslateDBError("expense", fmt.Sprint(id), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "expense", ID: fmt.Sprint(id)}
	}
	return nil
}
