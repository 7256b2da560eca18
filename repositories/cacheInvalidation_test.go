package repositories

import (
	"context"
	"testing"

	"MedClinic/cache"
	"MedClinic/database"
	"MedClinic/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

// newTestCache points the package-level Redis client at an in-process
// server so cached reads and invalidations can be observed.
func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := database.RedisClient
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		database.RedisClient = prev
	})
	c, err := cache.NewCache()
	if err != nil {
		t.Fatalf("failed to build cache: %v", err)
	}
	return c
}

func TestNotificationWriteInvalidatesAppointmentCache(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := newTestCache(t)

	doctor := seedDoctor(t, db)
	patient := seedPatient(t, db, nil)
	appointment := seedAppointment(t, db, doctor.ID, patient.ID, "2024-06-01", "09:00", "09:30")

	appointmentRepo := NewAppointmentRepository(db, c)

	// Warm the detail cache before any notification exists.
	before, err := appointmentRepo.GetByID(ctx, appointment.ID)
	if err != nil {
		t.Fatalf("failed to get appointment: %v", err)
	}
	if len(before.Notifications) != 0 {
		t.Fatalf("expected no notifications yet, got %d", len(before.Notifications))
	}

	notification := &models.Notification{
		AppointmentID: appointment.ID,
		Type:          models.NotificationEmail,
		Message:       "Your appointment is confirmed",
	}
	if err := NewNotificationRepository(db, c).Create(ctx, notification); err != nil {
		t.Fatalf("failed to create notification: %v", err)
	}

	after, err := appointmentRepo.GetByID(ctx, appointment.ID)
	if err != nil {
		t.Fatalf("failed to get appointment: %v", err)
	}
	if len(after.Notifications) != 1 {
		t.Fatalf("expected cached detail to be refreshed with 1 notification, got %d", len(after.Notifications))
	}
}

func TestScheduleWriteInvalidatesDoctorCache(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := newTestCache(t)

	doctor := seedDoctor(t, db)
	doctorRepo := NewDoctorRepository(db, c)

	before, err := doctorRepo.GetByID(ctx, doctor.ID)
	if err != nil {
		t.Fatalf("failed to get doctor: %v", err)
	}
	if len(before.Schedules) != 0 {
		t.Fatalf("expected no schedules yet, got %d", len(before.Schedules))
	}

	schedule := &models.DoctorSchedule{
		DoctorID:  doctor.ID,
		Weekday:   1,
		StartTime: "08:00",
		EndTime:   "12:00",
	}
	if err := NewDoctorScheduleRepository(db, c).Create(ctx, schedule); err != nil {
		t.Fatalf("failed to create schedule: %v", err)
	}

	after, err := doctorRepo.GetByID(ctx, doctor.ID)
	if err != nil {
		t.Fatalf("failed to get doctor: %v", err)
	}
	if len(after.Schedules) != 1 {
		t.Fatalf("expected cached detail to be refreshed with 1 schedule, got %d", len(after.Schedules))
	}
}

func TestClinicalChildWritesInvalidateRecordCache(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := newTestCache(t)

	doctor := seedDoctor(t, db)
	patient := seedPatient(t, db, nil)
	appointment := seedAppointment(t, db, doctor.ID, patient.ID, "2024-06-01", "09:00", "09:30")

	recordRepo := NewMedicalRecordRepository(db, c)
	record := &models.MedicalRecord{
		PatientID:     patient.ID,
		DoctorID:      doctor.ID,
		AppointmentID: appointment.ID,
		MainComplaint: "Persistent headache",
		History:       "Symptoms for two weeks",
		Diagnosis:     "Tension headache",
		Treatment:     "Analgesics and rest",
	}
	if err := recordRepo.Create(ctx, record); err != nil {
		t.Fatalf("failed to create medical record: %v", err)
	}

	before, err := recordRepo.GetByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("failed to get medical record: %v", err)
	}
	if len(before.Prescriptions) != 0 || len(before.ExamRequests) != 0 {
		t.Fatalf("expected empty record detail, got %d prescriptions and %d exam requests",
			len(before.Prescriptions), len(before.ExamRequests))
	}

	prescription := &models.Prescription{
		MedicalRecordID: record.ID,
		Medicines:       "Paracetamol",
		Dosage:          "500mg",
		Duration:        "5 days",
	}
	if err := NewPrescriptionRepository(db, c).Create(ctx, prescription); err != nil {
		t.Fatalf("failed to create prescription: %v", err)
	}

	examRequest := &models.ExamRequest{
		MedicalRecordID: record.ID,
		ExamName:        "Complete blood count",
	}
	if err := NewExamRequestRepository(db, c).Create(ctx, examRequest); err != nil {
		t.Fatalf("failed to create exam request: %v", err)
	}

	after, err := recordRepo.GetByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("failed to get medical record: %v", err)
	}
	if len(after.Prescriptions) != 1 || len(after.ExamRequests) != 1 {
		t.Fatalf("expected refreshed record detail with 1 prescription and 1 exam request, got %d and %d",
			len(after.Prescriptions), len(after.ExamRequests))
	}
}
