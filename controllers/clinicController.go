package controllers

import (
	"MedClinic/handlers"

	"github.com/gin-gonic/gin"
)

// SetupDirectoryRoutes registers the routes for specialties, doctors,
// doctor schedules, health insurances and patients.
func SetupDirectoryRoutes(router *gin.Engine, specialtyHandler *handlers.SpecialtyHandler, doctorHandler *handlers.DoctorHandler, scheduleHandler *handlers.DoctorScheduleHandler, insuranceHandler *handlers.HealthInsuranceHandler, patientHandler *handlers.PatientHandler) {
	router.POST("/specialties", specialtyHandler.CreateSpecialty)
	router.GET("/specialties/:id", specialtyHandler.GetSpecialtyByID)
	router.PUT("/specialties/:id", specialtyHandler.UpdateSpecialty)
	router.DELETE("/specialties/:id", specialtyHandler.DeleteSpecialty)
	router.GET("/specialties", specialtyHandler.GetAllSpecialties)

	router.POST("/doctors", doctorHandler.CreateDoctor)
	router.GET("/doctors/:id", doctorHandler.GetDoctorByID)
	router.GET("/doctors/:id/detail", doctorHandler.GetDoctorDetail)
	router.PUT("/doctors/:id", doctorHandler.UpdateDoctor)
	router.DELETE("/doctors/:id", doctorHandler.DeleteDoctor)
	router.GET("/doctors", doctorHandler.GetAllDoctors)

	router.POST("/doctors/:id/schedules", scheduleHandler.CreateSchedule)
	router.GET("/doctors/:id/schedules", scheduleHandler.GetSchedulesByDoctor)
	router.GET("/doctors/:id/schedules/:schedule_id", scheduleHandler.GetScheduleByID)
	router.PUT("/doctors/:id/schedules/:schedule_id", scheduleHandler.UpdateSchedule)
	router.DELETE("/doctors/:id/schedules/:schedule_id", scheduleHandler.DeleteSchedule)

	router.POST("/health_insurances", insuranceHandler.CreateHealthInsurance)
	router.GET("/health_insurances/:id", insuranceHandler.GetHealthInsuranceByID)
	router.PUT("/health_insurances/:id", insuranceHandler.UpdateHealthInsurance)
	router.DELETE("/health_insurances/:id", insuranceHandler.DeleteHealthInsurance)
	router.GET("/health_insurances", insuranceHandler.GetAllHealthInsurances)

	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients/:id", patientHandler.GetPatientByID)
	router.GET("/patients/:id/detail", patientHandler.GetPatientDetail)
	router.PUT("/patients/:id", patientHandler.UpdatePatient)
	router.DELETE("/patients/:id", patientHandler.DeletePatient)
	router.GET("/patients", patientHandler.GetAllPatients)
}

// SetupSchedulingRoutes registers the routes for appointments and their
// nested notifications.
func SetupSchedulingRoutes(router *gin.Engine, appointmentHandler *handlers.AppointmentHandler, notificationHandler *handlers.NotificationHandler) {
	router.POST("/appointments", appointmentHandler.CreateAppointment)
	router.GET("/appointments/:id", appointmentHandler.GetAppointmentByID)
	router.GET("/appointments/:id/detail", appointmentHandler.GetAppointmentDetail)
	router.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)
	router.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)
	router.GET("/appointments", appointmentHandler.GetAllAppointments)

	router.POST("/appointments/:id/notifications", notificationHandler.CreateNotification)
	router.GET("/appointments/:id/notifications", notificationHandler.GetNotificationsByAppointment)
	router.GET("/appointments/:id/notifications/:notification_id", notificationHandler.GetNotificationByID)
	router.PUT("/appointments/:id/notifications/:notification_id", notificationHandler.UpdateNotification)
	router.DELETE("/appointments/:id/notifications/:notification_id", notificationHandler.DeleteNotification)
}

// SetupClinicalRoutes registers the routes for medical records and their
// nested prescriptions and exam requests.
func SetupClinicalRoutes(router *gin.Engine, recordHandler *handlers.MedicalRecordHandler, prescriptionHandler *handlers.PrescriptionHandler, examRequestHandler *handlers.ExamRequestHandler) {
	router.POST("/medical_records", recordHandler.CreateMedicalRecord)
	router.GET("/medical_records/:id", recordHandler.GetMedicalRecordByID)
	router.GET("/medical_records/:id/detail", recordHandler.GetMedicalRecordDetail)
	router.PUT("/medical_records/:id", recordHandler.UpdateMedicalRecord)
	router.DELETE("/medical_records/:id", recordHandler.DeleteMedicalRecord)
	router.GET("/medical_records", recordHandler.GetAllMedicalRecords)

	router.POST("/medical_records/:id/prescriptions", prescriptionHandler.CreatePrescription)
	router.GET("/medical_records/:id/prescriptions", prescriptionHandler.GetPrescriptionsByRecord)
	router.GET("/medical_records/:id/prescriptions/:prescription_id", prescriptionHandler.GetPrescriptionByID)
	router.PUT("/medical_records/:id/prescriptions/:prescription_id", prescriptionHandler.UpdatePrescription)
	router.DELETE("/medical_records/:id/prescriptions/:prescription_id", prescriptionHandler.DeletePrescription)

	router.POST("/medical_records/:id/exam_requests", examRequestHandler.CreateExamRequest)
	router.GET("/medical_records/:id/exam_requests", examRequestHandler.GetExamRequestsByRecord)
	router.GET("/medical_records/:id/exam_requests/:exam_request_id", examRequestHandler.GetExamRequestByID)
	router.PUT("/medical_records/:id/exam_requests/:exam_request_id", examRequestHandler.UpdateExamRequest)
	router.DELETE("/medical_records/:id/exam_requests/:exam_request_id", examRequestHandler.DeleteExamRequest)
}

// SetupFinancialRoutes registers the routes for payments, expenses and
// doctor payouts.
func SetupFinancialRoutes(router *gin.Engine, paymentHandler *handlers.PaymentHandler, expenseHandler *handlers.ExpenseHandler, doctorPaymentHandler *handlers.DoctorPaymentHandler) {
	router.POST("/payments", paymentHandler.CreatePayment)
	router.GET("/payments/:id", paymentHandler.GetPaymentByID)
	router.GET("/payments/:id/detail", paymentHandler.GetPaymentDetail)
	router.PUT("/payments/:id", paymentHandler.UpdatePayment)
	router.DELETE("/payments/:id", paymentHandler.DeletePayment)
	router.GET("/payments", paymentHandler.GetAllPayments)

	router.POST("/expenses", expenseHandler.CreateExpense)
	router.GET("/expenses/:id", expenseHandler.GetExpenseByID)
	router.GET("/expenses/:id/detail", expenseHandler.GetExpenseDetail)
	router.PUT("/expenses/:id", expenseHandler.UpdateExpense)
	router.DELETE("/expenses/:id", expenseHandler.DeleteExpense)
	router.GET("/expenses", expenseHandler.GetAllExpenses)

	router.POST("/doctor_payments", doctorPaymentHandler.CreateDoctorPayment)
	router.GET("/doctor_payments/:id", doctorPaymentHandler.GetDoctorPaymentByID)
	router.PUT("/doctor_payments/:id", doctorPaymentHandler.UpdateDoctorPayment)
	router.DELETE("/doctor_payments/:id", doctorPaymentHandler.DeleteDoctorPayment)
	router.GET("/doctor_payments", doctorPaymentHandler.GetAllDoctorPayments)
}
