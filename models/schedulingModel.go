package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Appointment model. The composite unique index on (doctor_id, date,
// start_time) is what prevents double booking; concurrent inserts for the
// same slot race on the index, not on application code.
type Appointment struct {
	ID        uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DoctorID  string `gorm:"column:doctor_id;not null;index;uniqueIndex:idx_doctor_slot" json:"doctor_id"`
	PatientID string `gorm:"column:patient_id;not null;index" json:"patient_id"`
	Date      string `gorm:"column:date;not null;index;uniqueIndex:idx_doctor_slot" json:"date"`
	StartTime string `gorm:"column:start_time;not null;uniqueIndex:idx_doctor_slot" json:"start_time"`
	EndTime   string `gorm:"column:end_time;not null" json:"end_time"`
	Status    string `gorm:"column:status;not null;default:scheduled" json:"status"`
	Notes     string `gorm:"column:notes" json:"notes"`

	PaymentCompleted bool                `gorm:"column:payment_completed;default:false" json:"payment_completed"`
	PaymentAmount    decimal.NullDecimal `gorm:"column:payment_amount;type:numeric(10,2)" json:"payment_amount"`
	PaymentMethod    string              `gorm:"column:payment_method" json:"payment_method"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Doctor        Doctor         `gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Patient       Patient        `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Notifications []Notification `gorm:"foreignKey:AppointmentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// Notification model. Records an intent to notify; delivery happens outside
// this system, only the status field changes here.
type Notification struct {
	ID            uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	AppointmentID uint       `gorm:"column:appointment_id;not null;index" json:"appointment_id"`
	Type          string     `gorm:"column:type;not null" json:"type"`
	Message       string     `gorm:"column:message;not null" json:"message"`
	Status        string     `gorm:"column:status;not null;default:pending" json:"status"`
	SentAt        *time.Time `gorm:"column:sent_at" json:"sent_at"`
}

func (Notification) TableName() string {
	return "notification"
}
