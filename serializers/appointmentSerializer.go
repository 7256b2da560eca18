package serializers

import (
	"time"

	"MedClinic/models"

	"github.com/shopspring/decimal"
)

type NotificationView struct {
	ID            uint       `json:"id"`
	AppointmentID uint       `json:"appointment_id"`
	Type          string     `json:"type"`
	TypeDisplay   string     `json:"type_display"`
	Message       string     `json:"message"`
	Status        string     `json:"status"`
	StatusDisplay string     `json:"status_display"`
	SentAt        *time.Time `json:"sent_at"`
}

func NewNotificationView(notification models.Notification) NotificationView {
	return NotificationView{
		ID:            notification.ID,
		AppointmentID: notification.AppointmentID,
		Type:          notification.Type,
		TypeDisplay:   models.NotificationTypes.Label(notification.Type),
		Message:       notification.Message,
		Status:        notification.Status,
		StatusDisplay: models.NotificationStatuses.Label(notification.Status),
		SentAt:        notification.SentAt,
	}
}

// AppointmentDetail nests the full patient and doctor views plus the
// appointment's notification records.
type AppointmentDetail struct {
	ID            uint   `json:"id"`
	DoctorID      string `json:"doctor_id"`
	PatientID     string `json:"patient_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	StatusDisplay string `json:"status_display"`
	Notes         string `json:"notes"`

	PaymentCompleted bool                `json:"payment_completed"`
	PaymentAmount    decimal.NullDecimal `json:"payment_amount"`
	PaymentMethod    string              `json:"payment_method"`

	PatientDetail PatientView        `json:"patient_detail"`
	DoctorDetail  DoctorView         `json:"doctor_detail"`
	Notifications []NotificationView `json:"notifications"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAppointmentDetail(appointment models.Appointment) AppointmentDetail {
	detail := AppointmentDetail{
		ID:               appointment.ID,
		DoctorID:         appointment.DoctorID,
		PatientID:        appointment.PatientID,
		Date:             appointment.Date,
		StartTime:        appointment.StartTime,
		EndTime:          appointment.EndTime,
		Status:           appointment.Status,
		StatusDisplay:    models.AppointmentStatuses.Label(appointment.Status),
		Notes:            appointment.Notes,
		PaymentCompleted: appointment.PaymentCompleted,
		PaymentAmount:    appointment.PaymentAmount,
		PaymentMethod:    appointment.PaymentMethod,
		PatientDetail:    NewPatientView(appointment.Patient),
		DoctorDetail:     NewDoctorView(appointment.Doctor),
		Notifications:    make([]NotificationView, 0, len(appointment.Notifications)),
		CreatedAt:        appointment.CreatedAt,
		UpdatedAt:        appointment.UpdatedAt,
	}
	for _, notification := range appointment.Notifications {
		detail.Notifications = append(detail.Notifications, NewNotificationView(notification))
	}
	return detail
}
