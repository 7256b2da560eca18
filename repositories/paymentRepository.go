package repositories

import (
	"context"
	"errors"
	"fmt"

	"MedClinic/models"
	"MedClinic/utils"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create persists a payment. The unique index on appointment_id enforces one
// payment per appointment.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.Status == "" {
		payment.Status = models.PaymentPending
	}
	if err := utils.ValidatePaymentData(*payment); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &utils.ConstraintViolation{Entity: "payment", Field: "appointment_id"}
		}
		return utils.TranslateDBError("payment", fmt.Sprint(payment.ID), err)
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Preload("Patient.HealthInsurance").
		Preload("HealthInsurance").
		First(&payment, "id = ?", id).Error
	if err != nil {
		return nil, utils.TranslateDBError("payment", fmt.Sprint(id), err)
	}
	return &payment, nil
}

func (r *PaymentRepository) GetAll(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.WithContext(ctx).Order("id").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all payments: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	if err := utils.ValidatePaymentData(*payment); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Omit("created_at").Save(payment)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return &utils.ConstraintViolation{Entity: "payment", Field: "appointment_id"}
		}
		return utils.TranslateDBError("payment", fmt.Sprint(payment.ID), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "payment", ID: fmt.Sprint(payment.ID)}
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.Payment{}, "id = ?", id)
	if tx.Error != nil {
		return utils.TranslateDBError("payment", fmt.Sprint(id), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "payment", ID: fmt.Sprint(id)}
	}
	return nil
}
