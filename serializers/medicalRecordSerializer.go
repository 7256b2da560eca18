package serializers

import (
	"time"

	"MedClinic/models"
)

type PrescriptionView struct {
	ID              uint      `json:"id"`
	MedicalRecordID uint      `json:"medical_record_id"`
	Medicines       string    `json:"medicines"`
	Dosage          string    `json:"dosage"`
	Duration        string    `json:"duration"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewPrescriptionView(prescription models.Prescription) PrescriptionView {
	return PrescriptionView{
		ID:              prescription.ID,
		MedicalRecordID: prescription.MedicalRecordID,
		Medicines:       prescription.Medicines,
		Dosage:          prescription.Dosage,
		Duration:        prescription.Duration,
		Notes:           prescription.Notes,
		CreatedAt:       prescription.CreatedAt,
	}
}

type ExamRequestView struct {
	ID              uint      `json:"id"`
	MedicalRecordID uint      `json:"medical_record_id"`
	ExamName        string    `json:"exam_name"`
	Instructions    string    `json:"instructions"`
	Status          string    `json:"status"`
	StatusDisplay   string    `json:"status_display"`
	ExamDate        string    `json:"exam_date"`
	Result          string    `json:"result"`
	ResultDate      string    `json:"result_date"`
	File            string    `json:"file"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewExamRequestView(examRequest models.ExamRequest) ExamRequestView {
	return ExamRequestView{
		ID:              examRequest.ID,
		MedicalRecordID: examRequest.MedicalRecordID,
		ExamName:        examRequest.ExamName,
		Instructions:    examRequest.Instructions,
		Status:          examRequest.Status,
		StatusDisplay:   models.ExamRequestStatuses.Label(examRequest.Status),
		ExamDate:        examRequest.ExamDate,
		Result:          examRequest.Result,
		ResultDate:      examRequest.ResultDate,
		File:            examRequest.File,
		CreatedAt:       examRequest.CreatedAt,
	}
}

// MedicalRecordDetail nests the patient, doctor and appointment views plus
// the record's prescriptions and exam requests.
type MedicalRecordDetail struct {
	ID            uint   `json:"id"`
	PatientID     string `json:"patient_id"`
	DoctorID      string `json:"doctor_id"`
	AppointmentID uint   `json:"appointment_id"`
	Date          string `json:"date"`

	MainComplaint string `json:"main_complaint"`
	History       string `json:"history"`
	PhysicalExam  string `json:"physical_exam"`
	Diagnosis     string `json:"diagnosis"`
	Treatment     string `json:"treatment"`
	Observations  string `json:"observations"`

	PatientDetail     PatientView        `json:"patient_detail"`
	DoctorDetail      DoctorView         `json:"doctor_detail"`
	AppointmentDetail AppointmentDetail  `json:"appointment_detail"`
	Prescriptions     []PrescriptionView `json:"prescriptions"`
	ExamRequests      []ExamRequestView  `json:"exam_requests"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewMedicalRecordDetail(record models.MedicalRecord) MedicalRecordDetail {
	detail := MedicalRecordDetail{
		ID:                record.ID,
		PatientID:         record.PatientID,
		DoctorID:          record.DoctorID,
		AppointmentID:     record.AppointmentID,
		Date:              record.Date,
		MainComplaint:     record.MainComplaint,
		History:           record.History,
		PhysicalExam:      record.PhysicalExam,
		Diagnosis:         record.Diagnosis,
		Treatment:         record.Treatment,
		Observations:      record.Observations,
		PatientDetail:     NewPatientView(record.Patient),
		DoctorDetail:      NewDoctorView(record.Doctor),
		AppointmentDetail: NewAppointmentDetail(record.Appointment),
		Prescriptions:     make([]PrescriptionView, 0, len(record.Prescriptions)),
		ExamRequests:      make([]ExamRequestView, 0, len(record.ExamRequests)),
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}
	for _, prescription := range record.Prescriptions {
		detail.Prescriptions = append(detail.Prescriptions, NewPrescriptionView(prescription))
	}
	for _, examRequest := range record.ExamRequests {
		detail.ExamRequests = append(detail.ExamRequests, NewExamRequestView(examRequest))
	}
	return detail
}
