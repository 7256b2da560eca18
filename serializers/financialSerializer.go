package serializers

import (
	"time"

	"MedClinic/models"

	"github.com/shopspring/decimal"
)

// PaymentDetail nests the paying patient and the insurance plan, if any.
type PaymentDetail struct {
	ID            uint   `json:"id"`
	AppointmentID uint   `json:"appointment_id"`
	PatientID     string `json:"patient_id"`

	PaymentMethod        string          `json:"payment_method"`
	PaymentMethodDisplay string          `json:"payment_method_display"`
	Amount               decimal.Decimal `json:"amount"`
	Discount             decimal.Decimal `json:"discount"`
	Status               string          `json:"status"`
	StatusDisplay        string          `json:"status_display"`
	PaymentDate          string          `json:"payment_date"`
	TransactionID        string          `json:"transaction_id"`
	Notes                string          `json:"notes"`

	HealthInsuranceID     *string              `json:"health_insurance_id"`
	HealthInsuranceDetail *HealthInsuranceView `json:"health_insurance_detail"`
	PatientDetail         PatientView          `json:"patient_detail"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPaymentDetail(payment models.Payment) PaymentDetail {
	detail := PaymentDetail{
		ID:                   payment.ID,
		AppointmentID:        payment.AppointmentID,
		PatientID:            payment.PatientID,
		PaymentMethod:        payment.PaymentMethod,
		PaymentMethodDisplay: models.PaymentMethods.Label(payment.PaymentMethod),
		Amount:               payment.Amount,
		Discount:             payment.Discount,
		Status:               payment.Status,
		StatusDisplay:        models.PaymentStatuses.Label(payment.Status),
		PaymentDate:          payment.PaymentDate,
		TransactionID:        payment.TransactionID,
		Notes:                payment.Notes,
		HealthInsuranceID:    payment.HealthInsuranceID,
		PatientDetail:        NewPatientView(payment.Patient),
		CreatedAt:            payment.CreatedAt,
		UpdatedAt:            payment.UpdatedAt,
	}
	if payment.HealthInsurance != nil {
		insurance := NewHealthInsuranceView(*payment.HealthInsurance)
		detail.HealthInsuranceDetail = &insurance
	}
	return detail
}

// ExpenseView labels the category code on an expense entry.
type ExpenseView struct {
	ID              uint            `json:"id"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	CategoryDisplay string          `json:"category_display"`
	Amount          decimal.Decimal `json:"amount"`
	DueDate         string          `json:"due_date"`
	PaymentDate     string          `json:"payment_date"`
	Paid            bool            `json:"paid"`
	Recurring       bool            `json:"recurring"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func NewExpenseView(expense models.Expense) ExpenseView {
	return ExpenseView{
		ID:              expense.ID,
		Description:     expense.Description,
		Category:        expense.Category,
		CategoryDisplay: models.ExpenseCategories.Label(expense.Category),
		Amount:          expense.Amount,
		DueDate:         expense.DueDate,
		PaymentDate:     expense.PaymentDate,
		Paid:            expense.Paid,
		Recurring:       expense.Recurring,
		Notes:           expense.Notes,
		CreatedAt:       expense.CreatedAt,
		UpdatedAt:       expense.UpdatedAt,
	}
}
