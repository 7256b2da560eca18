package repositories

import (
	"context"
	"fmt"

	"MedClinic/models"
	"MedClinic/utils"

	"gorm.io/gorm"
)

type DoctorPaymentRepository struct {
	db *gorm.DB
}

func NewDoctorPaymentRepository(db *gorm.DB) *DoctorPaymentRepository {
	return &DoctorPaymentRepository{db: db}
}

func (r *DoctorPaymentRepository) Create(ctx context.Context, payment *models.DoctorPayment) error {
	if err := utils.ValidateDoctorPaymentData(*payment); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return utils.TranslateDBError("doctor_payment", fmt.Sprint(payment.ID), err)
	}
	return nil
}

func (r *DoctorPaymentRepository) GetByID(ctx context.Context, id uint) (*models.DoctorPayment, error) {
	var payment models.DoctorPayment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		return nil, utils.TranslateDBError("doctor_payment", fmt.Sprint(id), err)
	}
	return &payment, nil
}

func (r *DoctorPaymentRepository) GetAll(ctx context.Context) ([]models.DoctorPayment, error) {
	var payments []models.DoctorPayment
	if err := r.db.WithContext(ctx).Order("id").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all doctor payments: %w", err)
	}
	return payments, nil
}

func (r *DoctorPaymentRepository) Update(ctx context.Context, payment *models.DoctorPayment) error {
	if err := utils.ValidateDoctorPaymentData(*payment); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Omit("created_at").Save(payment)
	if tx.Error != nil {
		return utils.TranslateDBError("doctor_payment", fmt.Sprint(payment.ID), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "doctor_payment", ID: fmt.Sprint(payment.ID)}
	}
	return nil
}

func (r *DoctorPaymentRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.DoctorPayment{}, "id = ?", id)
	if tx.Error != nil {
		return utils.TranslateDBError("doctor_payment", fmt.Sprint(id), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "doctor_payment", ID: fmt.Sprint(id)}
	}
	return nil
}
