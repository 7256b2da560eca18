package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment model. One payment per appointment (unique appointment_id).
// Amounts are numeric(10,2) so money round-trips without float drift.
type Payment struct {
	ID            uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	AppointmentID uint   `gorm:"column:appointment_id;not null;uniqueIndex" json:"appointment_id"`
	PatientID     string `gorm:"column:patient_id;not null;index" json:"patient_id"`

	PaymentMethod     string              `gorm:"column:payment_method;not null" json:"payment_method"`
	Amount            decimal.Decimal     `gorm:"column:amount;type:numeric(10,2);not null" json:"amount"`
	Discount          decimal.Decimal     `gorm:"column:discount;type:numeric(10,2);default:0" json:"discount"`
	HealthInsuranceID *string             `gorm:"column:health_insurance_id;index" json:"health_insurance_id"`
	Status            string              `gorm:"column:status;not null;default:pending" json:"status"`
	PaymentDate       string              `gorm:"column:payment_date" json:"payment_date"`
	TransactionID     string              `gorm:"column:transaction_id" json:"transaction_id"`
	Notes             string              `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Appointment     Appointment      `gorm:"foreignKey:AppointmentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Patient         Patient          `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	HealthInsurance *HealthInsurance `gorm:"foreignKey:HealthInsuranceID;references:ID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Payment) TableName() string {
	return "payment"
}

// Expense model for clinic overhead entries.
type Expense struct {
	ID          uint            `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Description string          `gorm:"column:description;not null" json:"description"`
	Category    string          `gorm:"column:category;not null" json:"category"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric(10,2);not null" json:"amount"`
	DueDate     string          `gorm:"column:due_date;not null" json:"due_date"`
	PaymentDate string          `gorm:"column:payment_date" json:"payment_date"`
	Paid        bool            `gorm:"column:paid;default:false" json:"paid"`
	Recurring   bool            `gorm:"column:recurring;default:false" json:"recurring"`
	Notes       string          `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Expense) TableName() string {
	return "expense"
}

// DoctorPayment model for per-period doctor payouts. Paid is flipped by a
// manual update; there is no reconciliation workflow.
type DoctorPayment struct {
	ID                 uint            `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DoctorID           string          `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	PeriodStart        string          `gorm:"column:period_start;not null" json:"period_start"`
	PeriodEnd          string          `gorm:"column:period_end;not null" json:"period_end"`
	ConsultationsCount int             `gorm:"column:consultations_count;not null" json:"consultations_count"`
	Amount             decimal.Decimal `gorm:"column:amount;type:numeric(10,2);not null" json:"amount"`
	PaymentDate        string          `gorm:"column:payment_date" json:"payment_date"`
	Paid               bool            `gorm:"column:paid;default:false" json:"paid"`
	Notes              string          `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Doctor Doctor `gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (DoctorPayment) TableName() string {
	return "doctor_payment"
}
