package repositories

import (
	"context"
	"fmt"

	"MedClinic/models"
	"MedClinic/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthInsuranceRepository struct {
	db *gorm.DB
}

func NewHealthInsuranceRepository(db *gorm.DB) *HealthInsuranceRepository {
	return &HealthInsuranceRepository{db: db}
}

func (r *HealthInsuranceRepository) Create(ctx context.Context, insurance *models.HealthInsurance) error {
	if err := utils.ValidateHealthInsuranceData(*insurance); err != nil {
		return err
	}
	if insurance.ID == "" {
		insurance.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(insurance).Error; err != nil {
		return utils.TranslateDBError("health_insurance", insurance.ID, err)
	}
	return nil
}

func (r *HealthInsuranceRepository) GetByID(ctx context.Context, id string) (*models.HealthInsurance, error) {
	var insurance models.HealthInsurance
	if err := r.db.WithContext(ctx).First(&insurance, "id = ?", id).Error; err != nil {
		return nil, utils.TranslateDBError("health_insurance", id, err)
	}
	return &insurance, nil
}

func (r *HealthInsuranceRepository) GetAll(ctx context.Context) ([]models.HealthInsurance, error) {
	var insurances []models.HealthInsurance
	if err := r.db.WithContext(ctx).Order("name").Find(&insurances).Error; err != nil {
		return nil, fmt.Errorf("failed to get all health insurances: %w", err)
	}
	return insurances, nil
}

func (r *HealthInsuranceRepository) Update(ctx context.Context, insurance *models.HealthInsurance) error {
	if err := utils.ValidateHealthInsuranceData(*insurance); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Save(insurance)
	if tx.Error != nil {
		return utils.TranslateDBError("health_insurance", insurance.ID, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "health_insurance", ID: insurance.ID}
	}
	return nil
}

// Delete removes the plan. Patients and payments referencing it keep their
// rows; the database nulls the reference instead of blocking the delete.
func (r *HealthInsuranceRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&models.HealthInsurance{}, "id = ?", id)
	if tx.Error != nil {
		return utils.TranslateDBError("health_insurance", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "health_insurance", ID: id}
	}
	return nil
}
