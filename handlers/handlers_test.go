package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"MedClinic/database"
	"MedClinic/models"
	"MedClinic/repositories"
	"MedClinic/services"
	"MedClinic/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
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
	sqlDB.SetMaxOpenConns(1)
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	handler := NewAppointmentHandler(services.NewAppointmentService(repositories.NewAppointmentRepository(db, nil)))
	router := gin.New()
	router.POST("/appointments", handler.CreateAppointment)
	router.GET("/appointments/:id", handler.GetAppointmentByID)
	router.GET("/appointments", handler.GetAllAppointments)
	return router, db
}

func seedPeople(t *testing.T, db *gorm.DB) (doctorID, patientID string) {
	t.Helper()
	doctor := &models.Doctor{
		ID:        "d-1",
		FirstName: "Ana",
		LastName:  "Souza",
		CPF:       "111.444.777-35",
		CRM:       "12345/SP",
		Email:     "ana.souza@example.com",
		Phone:     "+5511999990001",
	}
	patient := &models.Patient{
		ID:        "p-1",
		FirstName: "Carlos",
		LastName:  "Lima",
		CPF:       "390.533.447-05",
		BirthDate: "1990-03-15",
		Gender:    "M",
		Email:     "carlos.lima@example.com",
		Phone:     "+5511999990002",
	}
	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("failed to seed doctor: %v", err)
	}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("failed to seed patient: %v", err)
	}
	return doctor.ID, patient.ID
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateAppointmentStatuses(t *testing.T) {
	router, db := newTestRouter(t)
	doctorID, patientID := seedPeople(t, db)

	slot := map[string]interface{}{
		"doctor_id":  doctorID,
		"patient_id": patientID,
		"date":       "2024-06-01",
		"start_time": "09:00",
		"end_time":   "09:30",
	}

	if recorder := postJSON(t, router, "/appointments", slot); recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	// The same slot again conflicts.
	recorder := postJSON(t, router, "/appointments", slot)
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var conflict map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &conflict); err != nil {
		t.Fatalf("failed to decode conflict body: %v", err)
	}
	if conflict["code"] != "double_booking" {
		t.Errorf("expected double_booking code, got %v", conflict["code"])
	}

	// Malformed date fails validation.
	bad := map[string]interface{}{
		"doctor_id":  doctorID,
		"patient_id": patientID,
		"date":       "01/06/2024",
		"start_time": "10:00",
		"end_time":   "10:30",
	}
	if recorder := postJSON(t, router, "/appointments", bad); recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestGetAppointmentNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/appointments/999", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", recorder.Code)
	}

	// Non-numeric ids are rejected before touching the store.
	req = httptest.NewRequest(http.MethodGet, "/appointments/abc", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", recorder.Code)
	}
}

func TestGetAllAppointmentsFiltered(t *testing.T) {
	router, db := newTestRouter(t)
	doctorID, patientID := seedPeople(t, db)

	for _, start := range []string{"09:00", "09:30"} {
		slot := map[string]interface{}{
			"doctor_id":  doctorID,
			"patient_id": patientID,
			"date":       "2024-06-01",
			"start_time": start,
			"end_time":   "10:00",
		}
		if recorder := postJSON(t, router, "/appointments", slot); recorder.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
		}
	}

	path := fmt.Sprintf("/appointments?doctor_id=%s&date=2024-06-01", doctorID)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var appointments []models.Appointment
	if err := json.Unmarshal(recorder.Body.Bytes(), &appointments); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(appointments) != 2 {
		t.Errorf("expected 2 appointments, got %d", len(appointments))
	}
}

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &utils.ValidationError{Entity: "patient"}, http.StatusBadRequest},
		{"not found", &utils.NotFoundError{Entity: "patient", ID: "p-1"}, http.StatusNotFound},
		{"double booking", &utils.DoubleBookingError{DoctorID: "d-1", Date: "2024-06-01", StartTime: "09:00"}, http.StatusConflict},
		{"constraint", &utils.ConstraintViolation{Entity: "payment", Field: "appointment_id"}, http.StatusConflict},
		{"referential", &utils.ReferentialIntegrityError{Entity: "doctor", ID: "d-1"}, http.StatusConflict},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			respondError(c, tc.err)
			if recorder.Code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, recorder.Code)
			}
		})
	}
}
