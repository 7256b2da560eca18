package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Specialty model
type Specialty struct {
	ID          string `gorm:"primaryKey;column:id" json:"id"`
	Name        string `gorm:"column:name;not null" json:"name"`
	Description string `gorm:"column:description" json:"description"`
}

func (Specialty) TableName() string {
	return "specialty"
}

// Doctor model
type Doctor struct {
	ID        string `gorm:"primaryKey;column:id" json:"id"`
	FirstName string `gorm:"column:first_name;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;not null;index" json:"last_name"`
	CPF       string `gorm:"column:cpf;uniqueIndex;not null" json:"cpf"`
	CRM       string `gorm:"column:crm;uniqueIndex;not null" json:"crm"`
	Email     string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Phone     string `gorm:"column:phone;not null" json:"phone"`

	Address       string `gorm:"column:address" json:"address"`
	AddressNumber string `gorm:"column:address_number" json:"address_number"`
	Complement    string `gorm:"column:complement" json:"complement"`
	Neighborhood  string `gorm:"column:neighborhood" json:"neighborhood"`
	City          string `gorm:"column:city" json:"city"`
	State         string `gorm:"column:state" json:"state"`
	ZipCode       string `gorm:"column:zip_code" json:"zip_code"`

	Biography       string          `gorm:"column:biography" json:"biography"`
	ConsultationFee decimal.Decimal `gorm:"column:consultation_fee;type:numeric(10,2)" json:"consultation_fee"`
	Active          bool            `gorm:"column:active;default:true" json:"active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Specialties []Specialty      `gorm:"many2many:doctor_specialties;constraint:OnDelete:CASCADE" json:"specialties"`
	Schedules   []DoctorSchedule `gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:CASCADE" json:"schedules"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// DoctorSchedule model for a doctor's weekly availability windows.
// Weekday runs 0 (Monday) through 6 (Sunday); times are "HH:MM" strings.
type DoctorSchedule struct {
	ID        uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DoctorID  string `gorm:"column:doctor_id;not null;index;uniqueIndex:idx_doctor_window" json:"doctor_id"`
	Weekday   int    `gorm:"column:weekday;not null;uniqueIndex:idx_doctor_window" json:"weekday"`
	StartTime string `gorm:"column:start_time;not null;uniqueIndex:idx_doctor_window" json:"start_time"`
	EndTime   string `gorm:"column:end_time;not null;uniqueIndex:idx_doctor_window" json:"end_time"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedule"
}

// HealthInsurance model
type HealthInsurance struct {
	ID                 string `gorm:"primaryKey;column:id" json:"id"`
	Name               string `gorm:"column:name;not null" json:"name"`
	PlanType           string `gorm:"column:plan_type" json:"plan_type"`
	RegistrationNumber string `gorm:"column:registration_number" json:"registration_number"`
	Active             bool   `gorm:"column:active;default:true" json:"active"`
}

func (HealthInsurance) TableName() string {
	return "health_insurance"
}

// Patient model
type Patient struct {
	ID        string `gorm:"primaryKey;column:id" json:"id"`
	FirstName string `gorm:"column:first_name;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;not null;index" json:"last_name"`
	CPF       string `gorm:"column:cpf;uniqueIndex;not null" json:"cpf"`
	BirthDate string `gorm:"column:birth_date;not null" json:"birth_date"`
	Gender    string `gorm:"column:gender;not null" json:"gender"`
	BloodType string `gorm:"column:blood_type" json:"blood_type"`

	Email            string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Phone            string `gorm:"column:phone;not null" json:"phone"`
	EmergencyContact string `gorm:"column:emergency_contact" json:"emergency_contact"`

	Address       string `gorm:"column:address" json:"address"`
	AddressNumber string `gorm:"column:address_number" json:"address_number"`
	Complement    string `gorm:"column:complement" json:"complement"`
	Neighborhood  string `gorm:"column:neighborhood" json:"neighborhood"`
	City          string `gorm:"column:city" json:"city"`
	State         string `gorm:"column:state" json:"state"`
	ZipCode       string `gorm:"column:zip_code" json:"zip_code"`

	HealthInsuranceID *string          `gorm:"column:health_insurance_id;index" json:"health_insurance_id"`
	HealthInsurance   *HealthInsurance `gorm:"foreignKey:HealthInsuranceID;references:ID;constraint:OnDelete:SET NULL" json:"health_insurance,omitempty"`
	InsuranceNumber   string           `gorm:"column:insurance_number" json:"insurance_number"`
	Allergies         string           `gorm:"column:allergies" json:"allergies"`
	ChronicDiseases   string           `gorm:"column:chronic_diseases" json:"chronic_diseases"`

	Active    bool      `gorm:"column:active;default:true" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patient"
}
