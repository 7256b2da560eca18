package routes

import (
	"MedClinic/cache"
	"MedClinic/config"
	"MedClinic/controllers"
	"MedClinic/handlers"
	"MedClinic/middlewares"
	"MedClinic/repositories"
	"MedClinic/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	specialtyHandler := handlers.NewSpecialtyHandler(services.NewSpecialtyService(repositories.NewSpecialtyRepository(db)))
	doctorHandler := handlers.NewDoctorHandler(services.NewDoctorService(repositories.NewDoctorRepository(db, cache)))
	scheduleHandler := handlers.NewDoctorScheduleHandler(services.NewDoctorScheduleService(repositories.NewDoctorScheduleRepository(db, cache)))
	insuranceHandler := handlers.NewHealthInsuranceHandler(services.NewHealthInsuranceService(repositories.NewHealthInsuranceRepository(db)))
	patientHandler := handlers.NewPatientHandler(services.NewPatientService(repositories.NewPatientRepository(db, cache)))

	appointmentHandler := handlers.NewAppointmentHandler(services.NewAppointmentService(repositories.NewAppointmentRepository(db, cache)))
	notificationHandler := handlers.NewNotificationHandler(services.NewNotificationService(repositories.NewNotificationRepository(db, cache)))

	recordHandler := handlers.NewMedicalRecordHandler(services.NewMedicalRecordService(repositories.NewMedicalRecordRepository(db, cache)))
	prescriptionHandler := handlers.NewPrescriptionHandler(services.NewPrescriptionService(repositories.NewPrescriptionRepository(db, cache)))
	examRequestHandler := handlers.NewExamRequestHandler(services.NewExamRequestService(repositories.NewExamRequestRepository(db, cache)))

	paymentHandler := handlers.NewPaymentHandler(services.NewPaymentService(repositories.NewPaymentRepository(db)))
	expenseHandler := handlers.NewExpenseHandler(services.NewExpenseService(repositories.NewExpenseRepository(db)))
	doctorPaymentHandler := handlers.NewDoctorPaymentHandler(services.NewDoctorPaymentService(repositories.NewDoctorPaymentRepository(db)))

	// Register routes
	controllers.SetupDirectoryRoutes(router, specialtyHandler, doctorHandler, scheduleHandler, insuranceHandler, patientHandler)
	controllers.SetupSchedulingRoutes(router, appointmentHandler, notificationHandler)
	controllers.SetupClinicalRoutes(router, recordHandler, prescriptionHandler, examRequestHandler)
	controllers.SetupFinancialRoutes(router, paymentHandler, expenseHandler, doctorPaymentHandler)

	controllers.SetupChoicesRoute(router)
	controllers.SetupRootRoute(router)

	return router
}
