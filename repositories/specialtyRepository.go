package repositories

import (
	"context"
	"fmt"

	"MedClinic/models"
	"MedClinic/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpecialtyRepository struct {
	db *gorm.DB
}

func NewSpecialtyRepository(db *gorm.DB) *SpecialtyRepository {
	return &SpecialtyRepository{db: db}
}

func (r *SpecialtyRepository) Create(ctx context.Context, specialty *models.Specialty) error {
	if err := utils.ValidateSpecialtyData(*specialty); err != nil {
		return err
	}
	if specialty.ID == "" {
		specialty.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(specialty).Error; err != nil {
		return utils.TranslateDBError("specialty", specialty.ID, err)
	}
	return nil
}

func (r *SpecialtyRepository) GetByID(ctx context.Context, id string) (*models.Specialty, error) {
	var specialty models.Specialty
	if err := r.db.WithContext(ctx).First(&specialty, "id = ?", id).Error; err != nil {
		return nil, utils.TranslateDBError("specialty", id, err)
	}
	return &specialty, nil
}

func (r *SpecialtyRepository) GetAll(ctx context.Context) ([]models.Specialty, error) {
	var specialties []models.Specialty
	if err := r.db.WithContext(ctx).Order("name").Find(&specialties).Error; err != nil {
		return nil, fmt.Errorf("failed to get all specialties: %w", err)
	}
	return specialties, nil
}

func (r *SpecialtyRepository) Update(ctx context.Context, specialty *models.Specialty) error {
	if err := utils.ValidateSpecialtyData(*specialty); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Save(specialty)
	if tx.Error != nil {
		return utils.TranslateDBError("specialty", specialty.ID, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "specialty", ID: specialty.ID}
	}
	return nil
}

func (r *SpecialtyRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&models.Specialty{}, "id = ?", id)
	if tx.Error != nil {
		return utils.TranslateDBError("specialty", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "specialty", ID: id}
	}
	return nil
}
