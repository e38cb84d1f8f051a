package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"sahaaya.backend/internal/interfaces/http/handlers"
	"sahaaya.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	campaignHandler     *handlers.CampaignHandler
	donationHandler     *handlers.DonationHandler
	subscriptionHandler *handlers.SubscriptionHandler
	eventHandler        *handlers.EventHandler
	volunteerHandler    *handlers.VolunteerHandler
	contactHandler      *handlers.ContactHandler
	blogHandler         *handlers.BlogHandler
	notificationHandler *handlers.NotificationHandler
	fileHandler         *handlers.FileHandler
	settingsHandler     *handlers.SettingsHandler
	adminHandler        *handlers.AdminHandler
	authMiddleware      gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "sahaaya-backend", "version": "0.1.0"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": "ERR_NOT_FOUND", "message": "Route not found"})
	})
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Campaign routes (public read, protected write)
		campaigns := v1.Group("/campaigns")
		{
			campaigns.GET("", d.campaignHandler.List)
			campaigns.GET("/:id", d.campaignHandler.Get)
			campaigns.GET("/:id/updates", d.campaignHandler.GetUpdates)
			campaigns.GET("/:id/donations", d.donationHandler.ListByCampaign)
		}
		campaignsAuth := v1.Group("/campaigns")
		campaignsAuth.Use(d.authMiddleware)
		{
			campaignsAuth.POST("", d.campaignHandler.Create)
			campaignsAuth.PATCH("/:id", d.campaignHandler.Update)
			campaignsAuth.POST("/:id/updates", d.campaignHandler.AddUpdate)
		}

		// Donation routes (protected)
		donations := v1.Group("/donations")
		donations.Use(d.authMiddleware)
		{
			donations.POST("/create-order", middleware.IdempotencyMiddleware(), d.donationHandler.CreateOrder)
			donations.POST("/verify", d.donationHandler.VerifyPayment)
			donations.POST("/create-subscription", middleware.IdempotencyMiddleware(), d.subscriptionHandler.Create)
			donations.GET("", d.donationHandler.ListMine)
			donations.GET("/:id", d.donationHandler.GetDonation)
		}

		// Recurring donation routes (protected)
		subscriptions := v1.Group("/subscriptions")
		subscriptions.Use(d.authMiddleware)
		{
			subscriptions.GET("", d.subscriptionHandler.ListMine)
			subscriptions.POST("/:id/cancel", d.subscriptionHandler.Cancel)
		}

		// Event routes (public read, registration protected)
		events := v1.Group("/events")
		{
			events.GET("", d.eventHandler.List)
			events.GET("/:id", d.eventHandler.Get)
		}
		eventsAuth := v1.Group("/events")
		eventsAuth.Use(d.authMiddleware)
		{
			eventsAuth.POST("/:id/register", d.eventHandler.Register)
		}

		// Volunteer routes (protected)
		volunteers := v1.Group("/volunteers")
		volunteers.Use(d.authMiddleware)
		{
			volunteers.POST("/apply", d.volunteerHandler.Apply)
			volunteers.GET("/me", d.volunteerHandler.Me)
			volunteers.POST("/hours", d.volunteerHandler.LogHours)
		}

		// Blog routes (public read)
		blog := v1.Group("/blog")
		{
			blog.GET("", d.blogHandler.List)
			blog.GET("/:slug", d.blogHandler.GetBySlug)
		}

		// Contact route (public)
		v1.POST("/contact", d.contactHandler.Submit)

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/stats", d.adminHandler.GetStats)
			admin.GET("/users", d.adminHandler.ListUsers)

			admin.GET("/donations", d.donationHandler.ListAll)
			admin.POST("/donations/:id/refund", d.donationHandler.Refund)

			admin.POST("/events", d.eventHandler.Create)
			admin.PATCH("/events/:id", d.eventHandler.Update)
			admin.GET("/events/:id/attendees", d.eventHandler.GetAttendees)

			admin.GET("/volunteers", d.volunteerHandler.List)
			admin.GET("/volunteers/:id", d.volunteerHandler.Get)
			admin.POST("/volunteers/:id/review", d.volunteerHandler.Review)
			admin.POST("/volunteers/:id/assignments", d.volunteerHandler.AddAssignment)
			admin.POST("/volunteers/:id/reviews", d.volunteerHandler.AddReview)

			admin.GET("/contacts", d.contactHandler.List)
			admin.GET("/contacts/:id", d.contactHandler.Get)
			admin.POST("/contacts/:id/respond", d.contactHandler.Respond)
			admin.PATCH("/contacts/:id/status", d.contactHandler.UpdateStatus)

			admin.POST("/blog", d.blogHandler.Create)
			admin.PUT("/blog/:id", d.blogHandler.Update)
			admin.DELETE("/blog/:id", d.blogHandler.Delete)

			admin.GET("/notifications", d.notificationHandler.List)
			admin.POST("/notifications", d.notificationHandler.Create)
			admin.GET("/notifications/:id", d.notificationHandler.Get)
			admin.POST("/notifications/:id/send", d.notificationHandler.Send)

			admin.POST("/files", d.fileHandler.Upload)
			admin.GET("/files", d.fileHandler.List)
			admin.DELETE("/files/:id", d.fileHandler.Delete)

			admin.GET("/settings", d.settingsHandler.Get)
			admin.PUT("/settings", d.settingsHandler.Update)
		}
	}
}
