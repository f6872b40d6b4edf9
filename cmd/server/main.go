package main

import (
	"log"

	"clinic-appointment-backend/internal/config"
	"clinic-appointment-backend/internal/database"
	"clinic-appointment-backend/internal/handler"
	"clinic-appointment-backend/internal/middleware"
	"clinic-appointment-backend/internal/repository"
	"clinic-appointment-backend/internal/service"
	"clinic-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize database connection and schema
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("Schema migrated successfully")

	// 3. Initialize repositories
	patientRepo := repository.NewPatientRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	medicalServiceRepo := repository.NewMedicalServiceRepo(db)
	linkRepo := repository.NewAppointmentServiceRepo(db)

	// 4. Initialize services
	patientService := service.NewPatientService(patientRepo)
	doctorService := service.NewDoctorService(doctorRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo, linkRepo, medicalServiceRepo)
	catalogService := service.NewCatalogService(medicalServiceRepo)

	// 5. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 6. Setup Gin router
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg))

	// 7. Register handlers
	patientHandler := handler.NewPatientHandler(patientService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// 8. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "clinic-appointment-backend",
		})
	})

	patients := r.Group("/patients")
	{
		patients.POST("", patientHandler.RegisterPatient)
		patients.GET("", patientHandler.ListPatients)
		patients.GET("/:id", patientHandler.GetPatient)
		patients.PUT("/:id", patientHandler.UpdatePatient)
		patients.DELETE("/:id", patientHandler.DeletePatient)
	}

	doctors := r.Group("/doctors")
	{
		doctors.POST("", doctorHandler.HireDoctor)
		doctors.GET("", doctorHandler.ListDoctors)
		doctors.GET("/:id", doctorHandler.GetDoctor)
		doctors.GET("/:id/supervisees", doctorHandler.ListSupervisees)
		doctors.PUT("/:id", doctorHandler.UpdateDoctor)
		doctors.DELETE("/:id", doctorHandler.DeleteDoctor)
	}

	appointments := r.Group("/appointments")
	{
		appointments.POST("", appointmentHandler.BookAppointment)
		appointments.GET("", appointmentHandler.ListAppointments)
		appointments.GET("/:id", appointmentHandler.GetAppointment)
		appointments.PUT("/:id", appointmentHandler.UpdateAppointment)
		appointments.POST("/:id/cancel", appointmentHandler.CancelAppointment)
		appointments.DELETE("/:id", appointmentHandler.DeleteAppointment)

		appointments.POST("/:id/services", appointmentHandler.AddService)
		appointments.GET("/:id/services", appointmentHandler.ListServices)
		appointments.PATCH("/:id/services/:serviceId", appointmentHandler.UpdateServiceQuantity)
		appointments.DELETE("/:id/services/:serviceId", appointmentHandler.RemoveService)
	}

	services := r.Group("/services")
	{
		services.POST("", catalogHandler.AddService)
		services.GET("", catalogHandler.ListServices)
		services.GET("/:id", catalogHandler.GetService)
		services.PUT("/:id", catalogHandler.UpdateService)
		services.DELETE("/:id", catalogHandler.DeleteService)
	}

	// 9. Start server
	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
