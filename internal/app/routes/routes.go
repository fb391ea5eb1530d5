package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/deepak/eventsphere/internal/app/controllers"
	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	teamController *controllers.TeamController,
	summaryController *controllers.SummaryController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)

	events := authenticated.Group("/events")
	{
		events.POST("", eventController.CreateEvent)
		events.GET("/approved", eventController.GetApprovedEvents)
		events.GET("/:id", eventController.GetEvent)

		eventsAdmin := events.Group("")
		eventsAdmin.Use(adminOnly)
		{
			eventsAdmin.GET("/pending", eventController.GetPendingEvents)
			eventsAdmin.PUT("/:id/status", eventController.UpdateEventStatus)
			eventsAdmin.DELETE("/:id", eventController.DeleteEvent)
		}
	}

	registrations := authenticated.Group("/registrations")
	{
		registrations.POST("", registrationController.Register)
		registrations.GET("/mine", registrationController.ListMyRegistrations)
		registrations.GET("/block-status/:regNo", registrationController.GetBlockStatus)
		registrations.POST("/team", teamController.RegisterTeam)

		registrationsAdmin := registrations.Group("")
		registrationsAdmin.Use(adminOnly)
		{
			registrationsAdmin.GET("", registrationController.ListRegistrations)
			registrationsAdmin.GET("/teams", teamController.ListTeams)
			registrationsAdmin.PUT("/:id/approve", registrationController.ApproveRegistration)
			registrationsAdmin.PUT("/:id/reject", registrationController.RejectRegistration)
			registrationsAdmin.PUT("/:id/reset", registrationController.ResetRegistration)
			registrationsAdmin.DELETE("", registrationController.DeleteRegistration)
		}
	}

	summaries := authenticated.Group("/summaries")
	{
		summaries.POST("", summaryController.SubmitSummary)
		summaries.GET("/approved", summaryController.GetApprovedSummaries)
		summaries.GET("/:id", summaryController.GetSummary)

		summariesAdmin := summaries.Group("")
		summariesAdmin.Use(adminOnly)
		{
			summariesAdmin.GET("", summaryController.GetSummaries)
			summariesAdmin.GET("/pending", summaryController.GetPendingSummaries)
			summariesAdmin.PUT("/:id/approve", summaryController.ApproveSummary)
			summariesAdmin.PUT("/:id/reject", summaryController.RejectSummary)
		}
	}

	students := authenticated.Group("/students")
	{
		students.GET("/profile/:email", studentController.GetProfile)
		students.GET("/:regNo/summaries", summaryController.GetStudentSummaries)
		students.GET("/:regNo/notifications", registrationController.GetNotifications)
	}

	analytics := authenticated.Group("/analytics")
	analytics.Use(adminOnly)
	{
		analytics.GET("/events", eventController.GetEventParticipation)
	}
}
