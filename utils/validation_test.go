package utils

import (
	"errors"
	"testing"

	"MedClinic/models"
)

func validPatient() models.Patient {
	return models.Patient{
		FirstName: "Maria",
		LastName:  "Silva",
		CPF:       "390.533.447-05",
		BirthDate: "1985-07-20",
		Gender:    "F",
		BloodType: "A+",
		Email:     "maria.silva@example.com",
		Phone:     "+5511988887777",
	}
}

func TestValidatePatientData(t *testing.T) {
	if err := ValidatePatientData(validPatient()); err != nil {
		t.Fatalf("expected valid patient, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*models.Patient)
	}{
		{"missing first name", func(p *models.Patient) { p.FirstName = "" }},
		{"malformed cpf", func(p *models.Patient) { p.CPF = "39053344705" }},
		{"malformed birth date", func(p *models.Patient) { p.BirthDate = "20/07/1985" }},
		{"unknown gender", func(p *models.Patient) { p.Gender = "X" }},
		{"unknown blood type", func(p *models.Patient) { p.BloodType = "C+" }},
		{"malformed email", func(p *models.Patient) { p.Email = "not-an-email" }},
		{"malformed phone", func(p *models.Patient) { p.Phone = "phone" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			patient := validPatient()
			tc.mutate(&patient)
			err := ValidatePatientData(patient)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Entity != "patient" {
				t.Errorf("expected patient entity, got %q", validationErr.Entity)
			}
		})
	}
}

func TestValidatePatientDataOptionalFields(t *testing.T) {
	patient := validPatient()
	patient.BloodType = ""
	patient.EmergencyContact = ""
	if err := ValidatePatientData(patient); err != nil {
		t.Fatalf("expected optional fields to be skippable, got %v", err)
	}
}

func TestValidateDoctorData(t *testing.T) {
	doctor := models.Doctor{
		FirstName: "Ana",
		LastName:  "Souza",
		CPF:       "111.444.777-35",
		CRM:       "12345/SP",
		Email:     "ana.souza@example.com",
		Phone:     "+5511999990001",
	}
	if err := ValidateDoctorData(doctor); err != nil {
		t.Fatalf("expected valid doctor, got %v", err)
	}

	doctor.CRM = "12345-SP"
	if err := ValidateDoctorData(doctor); err == nil {
		t.Error("expected malformed CRM to be rejected")
	}
}

func TestValidateAppointmentData(t *testing.T) {
	appointment := models.Appointment{
		DoctorID:  "d1",
		PatientID: "p1",
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "09:30",
		Status:    models.AppointmentScheduled,
	}
	if err := ValidateAppointmentData(appointment); err != nil {
		t.Fatalf("expected valid appointment, got %v", err)
	}

	appointment.Status = "rescheduled"
	if err := ValidateAppointmentData(appointment); err == nil {
		t.Error("expected unknown status to be rejected")
	}

	// A window that ends before it starts is accepted; only slot identity
	// is enforced.
	inverted := models.Appointment{
		DoctorID:  "d1",
		PatientID: "p1",
		Date:      "2024-06-01",
		StartTime: "10:00",
		EndTime:   "09:00",
		Status:    models.AppointmentScheduled,
	}
	if err := ValidateAppointmentData(inverted); err != nil {
		t.Errorf("expected inverted window to pass, got %v", err)
	}
}

func TestValidateDoctorScheduleData(t *testing.T) {
	schedule := models.DoctorSchedule{
		DoctorID:  "d1",
		Weekday:   6,
		StartTime: "08:00",
		EndTime:   "12:00",
	}
	if err := ValidateDoctorScheduleData(schedule); err != nil {
		t.Fatalf("expected valid schedule, got %v", err)
	}

	schedule.Weekday = 7
	if err := ValidateDoctorScheduleData(schedule); err == nil {
		t.Error("expected weekday above 6 to be rejected")
	}
}

func TestValidateExpenseData(t *testing.T) {
	expense := models.Expense{
		Description: "Office rent",
		Category:    "rent",
		DueDate:     "2024-06-10",
	}
	if err := ValidateExpenseData(expense); err != nil {
		t.Fatalf("expected valid expense, got %v", err)
	}

	expense.Category = "groceries"
	if err := ValidateExpenseData(expense); err == nil {
		t.Error("expected unknown category to be rejected")
	}
}

func TestValidatePaymentData(t *testing.T) {
	payment := models.Payment{
		AppointmentID: 1,
		PatientID:     "p1",
		PaymentMethod: "pix",
		Status:        "pending",
	}
	if err := ValidatePaymentData(payment); err != nil {
		t.Fatalf("expected valid payment, got %v", err)
	}

	payment.PaymentMethod = "barter"
	if err := ValidatePaymentData(payment); err == nil {
		t.Error("expected unknown method to be rejected")
	}
}
