package routes

import (
	"practmd-server/internal/handlers"
	"practmd-server/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, schedules *store.ScheduleStore, patients *store.PatientStore) {
	// Initialize handlers
	scheduleHandler := handlers.NewScheduleHandler(schedules)
	appointmentHandler := handlers.NewAppointmentHandler(schedules)
	availabilityHandler := handlers.NewAvailabilityHandler(schedules)
	patientHandler := handlers.NewPatientHandler(patients)

	api := router.Group("/api/v1")
	{
		scheduleRoutes := api.Group("/schedule")
		{
			scheduleRoutes.GET("/view", scheduleHandler.GetView)
			scheduleRoutes.GET("/export", scheduleHandler.ExportICS)
		}

		appointmentRoutes := api.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.ListAppointments)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
			appointmentRoutes.PATCH("/:id/reschedule", appointmentHandler.RescheduleAppointment)
		}

		availabilityRoutes := api.Group("/availability")
		{
			availabilityRoutes.GET("", availabilityHandler.ListAvailability)
			availabilityRoutes.POST("", availabilityHandler.CreateAvailability)
			availabilityRoutes.DELETE("/:id", availabilityHandler.DeleteAvailability)
		}

		patientRoutes := api.Group("/patients")
		{
			patientRoutes.GET("", patientHandler.ListPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
