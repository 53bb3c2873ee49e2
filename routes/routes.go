package routes

import (
	"glowdesk-backend/config"
	"glowdesk-backend/controllers"
	"glowdesk-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://admin.glowdesk.app",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Service catalog routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Therapist routes
		therapists := api.Group("/therapists")
		{
			therapists.POST("", controllers.CreateTherapist)
			therapists.GET("", controllers.GetTherapists)
			therapists.PUT("/:id", controllers.UpdateTherapist)
			therapists.DELETE("/:id", controllers.DeleteTherapist)
			therapists.GET("/:id/earnings", controllers.GetTherapistEarnings)
		}

		// Treatment routes (append-only: no update or delete)
		treatments := api.Group("/treatments")
		{
			treatments.POST("", controllers.RecordTreatment)
			treatments.GET("", controllers.GetTreatments)
			treatments.GET("/:id", controllers.GetTreatment)
		}

		// Bookkeeping routes
		bookkeeping := api.Group("/bookkeeping")
		{
			bookkeeping.POST("", controllers.UpsertDailyEntry)
			bookkeeping.POST("/auto", controllers.AutoCalculateDailyEntry)
			bookkeeping.GET("", controllers.GetEntries)
			bookkeeping.GET("/export", controllers.ExportMonthlyLedger)
			bookkeeping.GET("/:date", controllers.GetEntryByDate)
		}

		// Report routes
		reports := api.Group("/reports")
		{
			reports.GET("", controllers.GetReport)
			reports.GET("/monthly", controllers.GetMonthlySummary)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("/update-salon", controllers.UpdateProfile)
			profile.PUT("/update-hours", controllers.UpdateWorkingHours)
			profile.PUT("/update-notifications", controllers.UpdateNotificationSettings)
		}

		// Reminder template routes
		reminders := api.Group("/reminders")
		{
			reminders.POST("/templates", controllers.CreateReminderTemplate)
			reminders.GET("/templates", controllers.GetReminderTemplates)
			reminders.PUT("/templates/:id", controllers.UpdateReminderTemplate)
			reminders.GET("/logs", controllers.GetReminderLogs)
		}
	}

	return r
}
