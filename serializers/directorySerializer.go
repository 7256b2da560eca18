package serializers

import (
	"time"

	"MedClinic/models"

	"github.com/shopspring/decimal"
)

// Read views are projections only: they assemble related entities for client
// consumption and are never a write path. Enumerated fields carry both the
// stored code and a Display label.

type SpecialtyView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewSpecialtyView(specialty models.Specialty) SpecialtyView {
	return SpecialtyView{
		ID:          specialty.ID,
		Name:        specialty.Name,
		Description: specialty.Description,
	}
}

type DoctorScheduleView struct {
	ID             uint   `json:"id"`
	DoctorID       string `json:"doctor_id"`
	Weekday        int    `json:"weekday"`
	WeekdayDisplay string `json:"weekday_display"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
}

func NewDoctorScheduleView(schedule models.DoctorSchedule) DoctorScheduleView {
	return DoctorScheduleView{
		ID:             schedule.ID,
		DoctorID:       schedule.DoctorID,
		Weekday:        schedule.Weekday,
		WeekdayDisplay: models.WeekdayLabel(schedule.Weekday),
		StartTime:      schedule.StartTime,
		EndTime:        schedule.EndTime,
	}
}

type HealthInsuranceView struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	PlanType           string `json:"plan_type"`
	RegistrationNumber string `json:"registration_number"`
	Active             bool   `json:"active"`
}

func NewHealthInsuranceView(insurance models.HealthInsurance) HealthInsuranceView {
	return HealthInsuranceView{
		ID:                 insurance.ID,
		Name:               insurance.Name,
		PlanType:           insurance.PlanType,
		RegistrationNumber: insurance.RegistrationNumber,
		Active:             insurance.Active,
	}
}

type PatientView struct {
	ID               string `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	CPF              string `json:"cpf"`
	BirthDate        string `json:"birth_date"`
	Gender           string `json:"gender"`
	GenderDisplay    string `json:"gender_display"`
	BloodType        string `json:"blood_type"`
	BloodTypeDisplay string `json:"blood_type_display"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergency_contact"`

	Address       string `json:"address"`
	AddressNumber string `json:"address_number"`
	Complement    string `json:"complement"`
	Neighborhood  string `json:"neighborhood"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`

	HealthInsuranceID     *string              `json:"health_insurance_id"`
	HealthInsuranceDetail *HealthInsuranceView `json:"health_insurance_detail"`
	InsuranceNumber       string               `json:"insurance_number"`
	Allergies             string               `json:"allergies"`
	ChronicDiseases       string               `json:"chronic_diseases"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPatientView(patient models.Patient) PatientView {
	view := PatientView{
		ID:                patient.ID,
		FirstName:         patient.FirstName,
		LastName:          patient.LastName,
		CPF:               patient.CPF,
		BirthDate:         patient.BirthDate,
		Gender:            patient.Gender,
		GenderDisplay:     models.Genders.Label(patient.Gender),
		BloodType:         patient.BloodType,
		BloodTypeDisplay:  models.BloodTypes.Label(patient.BloodType),
		Email:             patient.Email,
		Phone:             patient.Phone,
		EmergencyContact:  patient.EmergencyContact,
		Address:           patient.Address,
		AddressNumber:     patient.AddressNumber,
		Complement:        patient.Complement,
		Neighborhood:      patient.Neighborhood,
		City:              patient.City,
		State:             patient.State,
		ZipCode:           patient.ZipCode,
		HealthInsuranceID: patient.HealthInsuranceID,
		InsuranceNumber:   patient.InsuranceNumber,
		Allergies:         patient.Allergies,
		ChronicDiseases:   patient.ChronicDiseases,
		Active:            patient.Active,
		CreatedAt:         patient.CreatedAt,
		UpdatedAt:         patient.UpdatedAt,
	}
	if patient.HealthInsurance != nil {
		insurance := NewHealthInsuranceView(*patient.HealthInsurance)
		view.HealthInsuranceDetail = &insurance
	}
	return view
}

type DoctorView struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CPF       string `json:"cpf"`
	CRM       string `json:"crm"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Address       string `json:"address"`
	AddressNumber string `json:"address_number"`
	Complement    string `json:"complement"`
	Neighborhood  string `json:"neighborhood"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`

	Biography       string          `json:"biography"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	Active          bool            `json:"active"`

	SpecialtiesDetail []SpecialtyView      `json:"specialties_detail"`
	Schedules         []DoctorScheduleView `json:"schedules"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewDoctorView(doctor models.Doctor) DoctorView {
	view := DoctorView{
		ID:                doctor.ID,
		FirstName:         doctor.FirstName,
		LastName:          doctor.LastName,
		CPF:               doctor.CPF,
		CRM:               doctor.CRM,
		Email:             doctor.Email,
		Phone:             doctor.Phone,
		Address:           doctor.Address,
		AddressNumber:     doctor.AddressNumber,
		Complement:        doctor.Complement,
		Neighborhood:      doctor.Neighborhood,
		City:              doctor.City,
		State:             doctor.State,
		ZipCode:           doctor.ZipCode,
		Biography:         doctor.Biography,
		ConsultationFee:   doctor.ConsultationFee,
		Active:            doctor.Active,
		SpecialtiesDetail: make([]SpecialtyView, 0, len(doctor.Specialties)),
		Schedules:         make([]DoctorScheduleView, 0, len(doctor.Schedules)),
		CreatedAt:         doctor.CreatedAt,
		UpdatedAt:         doctor.UpdatedAt,
	}
	for _, specialty := range doctor.Specialties {
		view.SpecialtiesDetail = append(view.SpecialtiesDetail, NewSpecialtyView(specialty))
	}
	for _, schedule := range doctor.Schedules {
		view.Schedules = append(view.Schedules, NewDoctorScheduleView(schedule))
	}
	return view
}
