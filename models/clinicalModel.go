package models

import (
	"time"
)

// MedicalRecord model. One record per appointment (unique appointment_id);
// Date is fixed at creation and never refreshed.
type MedicalRecord struct {
	ID            uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID     string `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID      string `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	AppointmentID uint   `gorm:"column:appointment_id;not null;uniqueIndex" json:"appointment_id"`
	Date          string `gorm:"column:date;not null" json:"date"`

	MainComplaint string `gorm:"column:main_complaint;not null" json:"main_complaint"`
	History       string `gorm:"column:history;not null" json:"history"`
	PhysicalExam  string `gorm:"column:physical_exam" json:"physical_exam"`
	Diagnosis     string `gorm:"column:diagnosis;not null" json:"diagnosis"`
	Treatment     string `gorm:"column:treatment;not null" json:"treatment"`
	Observations  string `gorm:"column:observations" json:"observations"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Patient       Patient       `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Doctor        Doctor        `gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Appointment   Appointment   `gorm:"foreignKey:AppointmentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Prescriptions []Prescription `gorm:"foreignKey:MedicalRecordID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	ExamRequests  []ExamRequest  `gorm:"foreignKey:MedicalRecordID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MedicalRecord) TableName() string {
	return "medical_record"
}

// Prescription model
type Prescription struct {
	ID              uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	MedicalRecordID uint      `gorm:"column:medical_record_id;not null;index" json:"medical_record_id"`
	Medicines       string    `gorm:"column:medicines;not null" json:"medicines"`
	Dosage          string    `gorm:"column:dosage;not null" json:"dosage"`
	Duration        string    `gorm:"column:duration;not null" json:"duration"`
	Notes           string    `gorm:"column:notes" json:"notes"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Prescription) TableName() string {
	return "prescription"
}

// ExamRequest model. Carries created_at only; the original schema never
// tracked updates for exam requests.
type ExamRequest struct {
	ID              uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	MedicalRecordID uint   `gorm:"column:medical_record_id;not null;index" json:"medical_record_id"`
	ExamName        string `gorm:"column:exam_name;not null" json:"exam_name"`
	Instructions    string `gorm:"column:instructions" json:"instructions"`
	Status          string `gorm:"column:status;not null;default:requested" json:"status"`
	ExamDate        string `gorm:"column:exam_date" json:"exam_date"`
	Result          string `gorm:"column:result" json:"result"`
	ResultDate      string `gorm:"column:result_date" json:"result_date"`
	// Path reference only; the file itself lives in external storage.
	File      string    `gorm:"column:file" json:"file"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ExamRequest) TableName() string {
	return "exam_request"
}
