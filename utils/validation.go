package utils

import (
	"regexp"

	"MedClinic/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Persisted field formats. These exact patterns come with the data and must
// not loosen: records already stored conform to them.
var (
	cpfRegex   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	crmRegex   = regexp.MustCompile(`^\d{4,6}/[A-Z]{2}$`)
	phoneRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ValidatePatientData validates a patient before persistence.
func ValidatePatientData(patient models.Patient) error {
	err := validation.ValidateStruct(&patient,
		validation.Field(&patient.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&patient.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&patient.CPF, validation.Required, validation.Match(cpfRegex).Error("must be in the format 000.000.000-00")),
		validation.Field(&patient.BirthDate, validation.Required, validation.Match(dateRegex).Error("must be in the format YYYY-MM-DD")),
		validation.Field(&patient.Gender, validation.Required, validation.In(models.Genders.Codes()...)),
		validation.Field(&patient.BloodType, validation.In(models.BloodTypes.Codes()...)),
		validation.Field(&patient.Email, validation.Required, is.Email),
		validation.Field(&patient.Phone, validation.Required, validation.Match(phoneRegex).Error("must be in the format +999999999")),
		validation.Field(&patient.EmergencyContact, validation.Match(phoneRegex).Error("must be in the format +999999999")),
	)
	if err != nil {
		return &ValidationError{Entity: "patient", Err: err}
	}
	return nil
}

// ValidateDoctorData validates a doctor before persistence.
func ValidateDoctorData(doctor models.Doctor) error {
	err := validation.ValidateStruct(&doctor,
		validation.Field(&doctor.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&doctor.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&doctor.CPF, validation.Required, validation.Match(cpfRegex).Error("must be in the format 000.000.000-00")),
		validation.Field(&doctor.CRM, validation.Required, validation.Match(crmRegex).Error("must be in the format 00000/UF")),
		validation.Field(&doctor.Email, validation.Required, is.Email),
		validation.Field(&doctor.Phone, validation.Required, validation.Match(phoneRegex).Error("must be in the format +999999999")),
	)
	if err != nil {
		return &ValidationError{Entity: "doctor", Err: err}
	}
	return nil
}

// ValidateDoctorScheduleData validates an availability window.
func ValidateDoctorScheduleData(schedule models.DoctorSchedule) error {
	err := validation.ValidateStruct(&schedule,
		validation.Field(&schedule.DoctorID, validation.Required),
		validation.Field(&schedule.Weekday, validation.Min(0), validation.Max(6)),
		validation.Field(&schedule.StartTime, validation.Required, validation.Match(clockRegex).Error("must be in the format HH:MM")),
		validation.Field(&schedule.EndTime, validation.Required, validation.Match(clockRegex).Error("must be in the format HH:MM")),
	)
	if err != nil {
		return &ValidationError{Entity: "doctor_schedule", Err: err}
	}
	return nil
}

// ValidateSpecialtyData validates a specialty before persistence.
func ValidateSpecialtyData(specialty models.Specialty) error {
	err := validation.ValidateStruct(&specialty,
		validation.Field(&specialty.Name, validation.Required, validation.Length(1, 100)),
	)
	if err != nil {
		return &ValidationError{Entity: "specialty", Err: err}
	}
	return nil
}

// ValidateHealthInsuranceData validates a health insurance plan.
func ValidateHealthInsuranceData(insurance models.HealthInsurance) error {
	err := validation.ValidateStruct(&insurance,
		validation.Field(&insurance.Name, validation.Required, validation.Length(1, 100)),
	)
	if err != nil {
		return &ValidationError{Entity: "health_insurance", Err: err}
	}
	return nil
}

// ValidateAppointmentData validates an appointment before persistence.
// Deliberately absent: start_time < end_time and schedule-window checks.
func ValidateAppointmentData(appointment models.Appointment) error {
	err := validation.ValidateStruct(&appointment,
		validation.Field(&appointment.DoctorID, validation.Required),
		validation.Field(&appointment.PatientID, validation.Required),
		validation.Field(&appointment.Date, validation.Required, validation.Match(dateRegex).Error("must be in the format YYYY-MM-DD")),
		validation.Field(&appointment.StartTime, validation.Required, validation.Match(clockRegex).Error("must be in the format HH:MM")),
		validation.Field(&appointment.EndTime, validation.Required, validation.Match(clockRegex).Error("must be in the format HH:MM")),
		validation.Field(&appointment.Status, validation.Required, validation.In(models.AppointmentStatuses.Codes()...)),
	)
	if err != nil {
		return &ValidationError{Entity: "appointment", Err: err}
	}
	return nil
}

// ValidateNotificationData validates a notification record.
func ValidateNotificationData(notification models.Notification) error {
	err := validation.ValidateStruct(&notification,
		validation.Field(&notification.AppointmentID, validation.Required),
		validation.Field(&notification.Type, validation.Required, validation.In(models.NotificationTypes.Codes()...)),
		validation.Field(&notification.Message, validation.Required),
		validation.Field(&notification.Status, validation.Required, validation.In(models.NotificationStatuses.Codes()...)),
	)
	if err != nil {
		return &ValidationError{Entity: "notification", Err: err}
	}
	return nil
}

// ValidateMedicalRecordData validates a medical record before persistence.
func ValidateMedicalRecordData(record models.MedicalRecord) error {
	err := validation.ValidateStruct(&record,
		validation.Field(&record.PatientID, validation.Required),
		validation.Field(&record.DoctorID, validation.Required),
		validation.Field(&record.AppointmentID, validation.Required),
		validation.Field(&record.MainComplaint, validation.Required),
		validation.Field(&record.History, validation.Required),
		validation.Field(&record.Diagnosis, validation.Required),
		validation.Field(&record.Treatment, validation.Required),
	)
	if err != nil {
		return &ValidationError{Entity: "medical_record", Err: err}
	}
	return nil
}

// ValidatePrescriptionData validates a prescription.
func ValidatePrescriptionData(prescription models.Prescription) error {
	err := validation.ValidateStruct(&prescription,
		validation.Field(&prescription.MedicalRecordID, validation.Required),
		validation.Field(&prescription.Medicines, validation.Required),
		validation.Field(&prescription.Dosage, validation.Required),
		validation.Field(&prescription.Duration, validation.Required),
	)
	if err != nil {
		return &ValidationError{Entity: "prescription", Err: err}
	}
	return nil
}

// ValidateExamRequestData validates an exam request. Status may move between
// any two values; there is no transition table.
func ValidateExamRequestData(examRequest models.ExamRequest) error {
	err := validation.ValidateStruct(&examRequest,
		validation.Field(&examRequest.MedicalRecordID, validation.Required),
		validation.Field(&examRequest.ExamName, validation.Required, validation.Length(1, 100)),
		validation.Field(&examRequest.Status, validation.Required, validation.In(models.ExamRequestStatuses.Codes()...)),
		validation.Field(&examRequest.ExamDate, validation.Match(dateRegex).Error("must be in the format YYYY-MM-DD")),
		validation.Field(&examRequest.ResultDate, validation.Match(dateRegex).Error("must be in the format YYYY-MM-DD")),
	)
	if err != nil {
		return &ValidationError{Entity: "exam_request", Err: err}
	}
	return nil
}

// ValidatePaymentData validates a payment before persistence.
func ValidatePaymentData(payment models.Payment) error {
	err := validation.ValidateStruct(&payment,
		validation.Field(&payment.AppointmentID, validation.Required),
		validation.Field(&payment.PatientID, validation.Required),
		validation.Field(&payment.PaymentMethod, validation.Required, validation.In(models.PaymentMethods.Codes()...)),
		validation.Field(&payment.Status, validation.Required, validation.In(models.PaymentStatuses.Codes()...)),
		validation.Field(&payment.PaymentDate, validation.Match(dateRegex).Error("must be in the format YYYY-MM-DD")),
	)
	if err != nil {
		return &ValidationError{Entity: "payment", Err: err}
	}
	return nil
}

// ValidateExpenseData validates an expense entry.
func ValidateExpenseData(expense models.Expense) error {
	err := validation.ValidateStruct(&expense,
		validation.Field(&expense.Description, validation.Required, validation.Length(1, 200)),
		validation.Field(&expense.Category, validation.Required, validation.In(models.ExpenseCategories.Codes()...)),
		validation.Field(&expense.DueDate, validation.Required, validation.Match(dateRegex).Error("must be in the format YYYY-MM-DD")),
		validation.Field(&expense.PaymentDate, validation.Match(dateRegex).Error("must be in the format YYYY-MM-DD")),
	)
	if err != nil {
		return &ValidationError{Entity: "expense", Err: err}
	}
	return nil
}

// ValidateDoctorPaymentData validates a doctor payout entry.
func ValidateDoctorPaymentData(payment models.DoctorPayment) error {
	err := validation.ValidateStruct(&payment,
		validation.Field(&payment.DoctorID, validation.Required),
		validation.Field(&payment.PeriodStart, validation.Required, validation.Match(dateRegex).Error("must be in the format YYYY-MM-DD")),
		validation.Field(&payment.PeriodEnd, validation.Required, validation.Match(dateRegex).Error("must be in the format YYYY-MM-DD")),
		validation.Field(&payment.ConsultationsCount, validation.Min(0)),
		validation.Field(&payment.PaymentDate, validation.Match(dateRegex).Error("must be in the format YYYY-MM-DD")),
	)
	if err != nil {
		return &ValidationError{Entity: "doctor_payment", Err: err}
	}
	return nil
}
