package repositories

import (
	"context"
	"errors"
	"testing"

	"MedClinic/database"
	"MedClinic/models"
	"MedClinic/utils"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with foreign key
// enforcement on, so unique indexes, cascades and restricts behave like
// the real store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// A single connection keeps every statement on the same in-memory store.
	sqlDB.SetMaxOpenConns(1)
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func seedDoctor(t *testing.T, db *gorm.DB) *models.Doctor {
	t.Helper()
	doctor := &models.Doctor{
		FirstName:       "Ana",
		LastName:        "Souza",
		CPF:             "111.444.777-35",
		CRM:             "12345/SP",
		Email:           "ana.souza@example.com",
		Phone:           "+5511999990001",
		ConsultationFee: decimal.RequireFromString("200.00"),
		Active:          true,
	}
	if err := NewDoctorRepository(db, nil).Create(context.Background(), doctor); err != nil {
		t.Fatalf("failed to seed doctor: %v", err)
	}
	return doctor
}

func seedPatient(t *testing.T, db *gorm.DB, insuranceID *string) *models.Patient {
	t.Helper()
	patient := &models.Patient{
		FirstName:         "Carlos",
		LastName:          "Lima",
		CPF:               "390.533.447-05",
		BirthDate:         "1990-03-15",
		Gender:            "M",
		BloodType:         "O+",
		Email:             "carlos.lima@example.com",
		Phone:             "+5511999990002",
		HealthInsuranceID: insuranceID,
		Active:            true,
	}
	if err := NewPatientRepository(db, nil).Create(context.Background(), patient); err != nil {
		t.Fatalf("failed to seed patient: %v", err)
	}
	return patient
}

func seedAppointment(t *testing.T, db *gorm.DB, doctorID, patientID, date, start, end string) *models.Appointment {
	t.Helper()
	appointment := &models.Appointment{
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
	if err := NewAppointmentRepository(db, nil).Create(context.Background(), appointment); err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
	return appointment
}

func TestAppointmentDoubleBooking(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAppointmentRepository(db, nil)

	doctor := seedDoctor(t, db)
	patient := seedPatient(t, db, nil)

	first := seedAppointment(t, db, doctor.ID, patient.ID, "2024-06-01", "09:00", "09:30")
	if first.Status != models.AppointmentScheduled {
		t.Errorf("expected default status %q, got %q", models.AppointmentScheduled, first.Status)
	}

	conflict := &models.Appointment{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "10:00",
	}
	err := repo.Create(ctx, conflict)
	var doubleBooking *utils.DoubleBookingError
	if !errors.As(err, &doubleBooking) {
		t.Fatalf("expected DoubleBookingError, got %v", err)
	}
	if doubleBooking.DoctorID != doctor.ID || doubleBooking.Date != "2024-06-01" || doubleBooking.StartTime != "09:00" {
		t.Errorf("unexpected slot in error: %+v", doubleBooking)
	}

	// A different start time on the same day is a different slot.
	seedAppointment(t, db, doctor.ID, patient.ID, "2024-06-01", "09:30", "10:00")
}

func TestAppointmentListFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAppointmentRepository(db, nil)

	doctor := seedDoctor(t, db)
	patient := seedPatient(t, db, nil)

	a1 := seedAppointment(t, db, doctor.ID, patient.ID, "2024-06-01", "09:00", "09:30")
	a2 := seedAppointment(t, db, doctor.ID, patient.ID, "2024-06-01", "09:30", "10:00")
	seedAppointment(t, db, doctor.ID, patient.ID, "2024-06-02", "09:00", "09:30")

	filtered, err := repo.GetAll(ctx, doctor.ID, "2024-06-01")
	if err != nil {
		t.Fatalf("failed to list appointments: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(filtered))
	}
	// Insertion order.
	if filtered[0].ID != a1.ID || filtered[1].ID != a2.ID {
		t.Errorf("expected ids [%d %d], got [%d %d]", a1.ID, a2.ID, filtered[0].ID, filtered[1].ID)
	}

	all, err := repo.GetAll(ctx, "", "")
	if err != nil {
		t.Fatalf("failed to list all appointments: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 appointments, got %d", len(all))
	}

	none, err := repo.GetAll(ctx, doctor.ID, "2024-06-03")
	if err != nil {
		t.Fatalf("failed to list appointments: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no appointments, got %d", len(none))
	}
}

func TestDoctorDeleteProtectedByAppointments(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	doctorRepo := NewDoctorRepository(db, nil)
	appointmentRepo := NewAppointmentRepository(db, nil)

	doctor := seedDoctor(t, db)
	patient := seedPatient(t, db, nil)
	appointment := seedAppointment(t, db, doctor.ID, patient.ID, "2024-06-01", "09:00", "09:30")

	err := doctorRepo.Delete(ctx, doctor.ID)
	var referential *utils.ReferentialIntegrityError
	if !errors.As(err, &referential) {
		t.Fatalf("expected ReferentialIntegrityError, got %v", err)
	}

	if err := appointmentRepo.Delete(ctx, appointment.ID); err != nil {
		t.Fatalf("failed to delete appointment: %v", err)
	}
	if err := doctorRepo.Delete(ctx, doctor.ID); err != nil {
		t.Fatalf("expected doctor delete to succeed, got %v", err)
	}
}

func TestPatientDeleteProtectedByRecords(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	patientRepo := NewPatientRepository(db, nil)

	doctor := seedDoctor(t, db)
	patient := seedPatient(t, db, nil)
	seedAppointment(t, db, doctor.ID, patient.ID, "2024-06-01", "09:00", "09:30")

	err := patientRepo.Delete(ctx, patient.ID)
	var referential *utils.ReferentialIntegrityError
	if !errors.As(err, &referential) {
		t.Fatalf("expected ReferentialIntegrityError, got %v", err)
	}
}

func TestAppointmentDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	doctor := seedDoctor(t, db)
	patient := seedPatient(t, db, nil)
	appointment := seedAppointment(t, db, doctor.ID, patient.ID, "2024-06-01", "09:00", "09:30")

	notification := &models.Notification{
		AppointmentID: appointment.ID,
		Type:          models.NotificationEmail,
		Message:       "Your appointment is confirmed",
	}
	if err := NewNotificationRepository(db, nil).Create(ctx, notification); err != nil {
		t.Fatalf("failed to create notification: %v", err)
	}

	payment := &models.Payment{
		AppointmentID: appointment.ID,
		PatientID:     patient.ID,
		PaymentMethod: models.PaymentCash,
		Amount:        decimal.RequireFromString("150.50"),
	}
	if err := NewPaymentRepository(db).Create(ctx, payment); err != nil {
		t.Fatalf("failed to create payment: %v", err)
	}

	record := &models.MedicalRecord{
		PatientID:     patient.ID,
		DoctorID:      doctor.ID,
		AppointmentID: appointment.ID,
		MainComplaint: "Persistent headache",
		History:       "Symptoms for two weeks",
		Diagnosis:     "Tension headache",
		Treatment:     "Analgesics and rest",
	}
	if err := NewMedicalRecordRepository(db, nil).Create(ctx, record); err != nil {
		t.Fatalf("failed to create medical record: %v", err)
	}

	prescription := &models.Prescription{
		MedicalRecordID: record.ID,
		Medicines:       "Paracetamol",
		Dosage:          "500mg",
		Duration:        "5 days",
	}
	if err := NewPrescriptionRepository(db, nil).Create(ctx, prescription); err != nil {
		t.Fatalf("failed to create prescription: %v", err)
	}

	examRequest := &models.ExamRequest{
		MedicalRecordID: record.ID,
		ExamName:        "Complete blood count",
	}
	if err := NewExamRequestRepository(db, nil).Create(ctx, examRequest); err != nil {
		t.Fatalf("failed to create exam request: %v", err)
	}

	if err := NewAppointmentRepository(db, nil).Delete(ctx, appointment.ID); err != nil {
		t.Fatalf("failed to delete appointment: %v", err)
	}

	for table, model := range map[string]interface{}{
		"notification":   &models.Notification{},
		"payment":        &models.Payment{},
		"medical_record": &models.MedicalRecord{},
		"prescription":   &models.Prescription{},
		"exam_request":   &models.ExamRequest{},
	} {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			t.Fatalf("failed to count %s rows: %v", table, err)
		}
		if count != 0 {
			t.Errorf("expected %s rows to cascade away, found %d", table, count)
		}
	}
}

func TestMedicalRecordOnePerAppointment(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewMedicalRecordRepository(db, nil)

	doctor := seedDoctor(t, db)
	patient := seedPatient(t, db, nil)
	appointment := seedAppointment(t, db, doctor.ID, patient.ID, "2024-06-01", "09:00", "09:30")

	record := &models.MedicalRecord{
		PatientID:     patient.ID,
		DoctorID:      doctor.ID,
		AppointmentID: appointment.ID,
		MainComplaint: "Chest pain",
		History:       "Started yesterday",
		Diagnosis:     "Muscle strain",
		Treatment:     "Anti-inflammatories",
	}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("failed to create medical record: %v", err)
	}
	if record.Date == "" {
		t.Error("expected record date to be stamped at creation")
	}

	duplicate := &models.MedicalRecord{
		PatientID:     patient.ID,
		DoctorID:      doctor.ID,
		AppointmentID: appointment.ID,
		MainComplaint: "Chest pain",
		History:       "Started yesterday",
		Diagnosis:     "Muscle strain",
		Treatment:     "Anti-inflammatories",
	}
	err := repo.Create(ctx, duplicate)
	var constraint *utils.ConstraintViolation
	if !errors.As(err, &constraint) {
		t.Fatalf("expected ConstraintViolation, got %v", err)
	}
	if constraint.Field != "appointment_id" {
		t.Errorf("expected appointment_id violation, got %q", constraint.Field)
	}
}

func TestPaymentOnePerAppointmentAndRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPaymentRepository(db)

	doctor := seedDoctor(t, db)
	patient := seedPatient(t, db, nil)
	appointment := seedAppointment(t, db, doctor.ID, patient.ID, "2024-06-01", "09:00", "09:30")

	payment := &models.Payment{
		AppointmentID: appointment.ID,
		PatientID:     patient.ID,
		PaymentMethod: models.PaymentCredit,
		Amount:        decimal.RequireFromString("150.50"),
		Discount:      decimal.RequireFromString("10.00"),
	}
	if err := repo.Create(ctx, payment); err != nil {
		t.Fatalf("failed to create payment: %v", err)
	}
	if payment.Status != models.PaymentPending {
		t.Errorf("expected default status %q, got %q", models.PaymentPending, payment.Status)
	}

	stored, err := repo.GetByID(ctx, payment.ID)
	if err != nil {
		t.Fatalf("failed to get payment: %v", err)
	}
	if !stored.Amount.Equal(decimal.RequireFromString("150.50")) {
		t.Errorf("amount changed on round trip: %s", stored.Amount)
	}
	if !stored.Discount.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("discount changed on round trip: %s", stored.Discount)
	}

	duplicate := &models.Payment{
		AppointmentID: appointment.ID,
		PatientID:     patient.ID,
		PaymentMethod: models.PaymentCash,
		Amount:        decimal.RequireFromString("150.50"),
	}
	err = repo.Create(ctx, duplicate)
	var constraint *utils.ConstraintViolation
	if !errors.As(err, &constraint) {
		t.Fatalf("expected ConstraintViolation, got %v", err)
	}
}

func TestHealthInsuranceDeleteNullifiesReferences(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	insuranceRepo := NewHealthInsuranceRepository(db)
	patientRepo := NewPatientRepository(db, nil)

	insurance := &models.HealthInsurance{Name: "Vida Plena", PlanType: "Premium", Active: true}
	if err := insuranceRepo.Create(ctx, insurance); err != nil {
		t.Fatalf("failed to create insurance: %v", err)
	}

	patient := seedPatient(t, db, &insurance.ID)

	if err := insuranceRepo.Delete(ctx, insurance.ID); err != nil {
		t.Fatalf("failed to delete insurance: %v", err)
	}

	stored, err := patientRepo.GetByID(ctx, patient.ID)
	if err != nil {
		t.Fatalf("failed to get patient: %v", err)
	}
	if stored.HealthInsuranceID != nil {
		t.Errorf("expected insurance reference to be nullified, got %v", *stored.HealthInsuranceID)
	}
}

func TestPatientSoftDeactivate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPatientRepository(db, nil)

	patient := seedPatient(t, db, nil)

	patient.Active = false
	if err := repo.Update(ctx, patient); err != nil {
		t.Fatalf("failed to deactivate patient: %v", err)
	}

	stored, err := repo.GetByID(ctx, patient.ID)
	if err != nil {
		t.Fatalf("failed to get patient: %v", err)
	}
	if stored.Active {
		t.Error("expected patient to be inactive")
	}

	// Deactivated rows still show up in listings.
	patients, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("failed to list patients: %v", err)
	}
	if len(patients) != 1 {
		t.Errorf("expected 1 patient, got %d", len(patients))
	}
}

func TestDoctorScheduleScoping(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDoctorScheduleRepository(db, nil)

	doctor := seedDoctor(t, db)

	schedule := &models.DoctorSchedule{
		DoctorID:  doctor.ID,
		Weekday:   0,
		StartTime: "08:00",
		EndTime:   "12:00",
	}
	if err := repo.Create(ctx, schedule); err != nil {
		t.Fatalf("failed to create schedule: %v", err)
	}

	// Lookups are scoped to the owning doctor.
	if _, err := repo.GetByID(ctx, "other-doctor", schedule.ID); err == nil {
		t.Error("expected lookup under another doctor to fail")
	}

	schedules, err := repo.GetAllByDoctor(ctx, doctor.ID)
	if err != nil {
		t.Fatalf("failed to list schedules: %v", err)
	}
	if len(schedules) != 1 {
		t.Errorf("expected 1 schedule, got %d", len(schedules))
	}
}

func TestValidationRejectedBeforePersistence(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := NewAppointmentRepository(db, nil).Create(ctx, &models.Appointment{
		DoctorID:  "d1",
		PatientID: "p1",
		Date:      "06/01/2024",
		StartTime: "09:00",
		EndTime:   "09:30",
	})
	var validationErr *utils.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Appointment{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count appointments: %v", err)
	}
	if count != 0 {
		t.Errorf("expected nothing persisted, found %d rows", count)
	}
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAppointmentRepository(db, nil)

	doctor := seedDoctor(t, db)
	patient := seedPatient(t, db, nil)
	appointment := seedAppointment(t, db, doctor.ID, patient.ID, "2024-06-01", "09:00", "09:30")

	stored, err := repo.GetByID(ctx, appointment.ID)
	if err != nil {
		t.Fatalf("failed to get appointment: %v", err)
	}
	if stored.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be stamped at creation")
	}
	created := stored.CreatedAt

	// PUT handlers bind into a fresh struct, so the update arrives with a
	// zero CreatedAt.
	updated := &models.Appointment{
		ID:        appointment.ID,
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "09:30",
		Status:    models.AppointmentConfirmed,
	}
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("failed to update appointment: %v", err)
	}

	after, err := repo.GetByID(ctx, appointment.ID)
	if err != nil {
		t.Fatalf("failed to get appointment: %v", err)
	}
	if after.Status != models.AppointmentConfirmed {
		t.Errorf("expected status %q, got %q", models.AppointmentConfirmed, after.Status)
	}
	if !after.CreatedAt.Equal(created) {
		t.Errorf("created_at changed on update: was %v, now %v", created, after.CreatedAt)
	}
	if after.UpdatedAt.IsZero() || after.UpdatedAt.Before(after.CreatedAt) {
		t.Errorf("expected updated_at to be refreshed, got %v", after.UpdatedAt)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := NewAppointmentRepository(db, nil).GetByID(ctx, 999)
	var notFound *utils.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	_, err = NewDoctorRepository(db, nil).GetByID(ctx, "missing")
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
