package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/anirudhs017/event-management-backend/config"
	"github.com/anirudhs017/event-management-backend/database"
	"github.com/anirudhs017/event-management-backend/internal/attendee"
	"github.com/anirudhs017/event-management-backend/internal/auditlog"
	"github.com/anirudhs017/event-management-backend/internal/auth"
	"github.com/anirudhs017/event-management-backend/internal/event"
	"github.com/anirudhs017/event-management-backend/internal/notification"
	"github.com/anirudhs017/event-management-backend/middleware"
)

func Setup(r *gin.Engine, cfg *config.Config) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())
	api.Use(middleware.AuditMiddleware())

	// ========== Audit Log ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", middleware.AuthMiddleware(cfg, authSvc), authHandler.Logout)
	}

	// ========== Events ==========
	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo, auditSvc)
	eventHandler := event.NewHandler(eventSvc)

	// ========== Attendees ==========
	attendeeRepo := attendee.NewRepository(database.DB)
	attendeeSvc := attendee.NewService(attendeeRepo, auditSvc)
	attendeeHandler := attendee.NewHandler(attendeeSvc, attendee.NewRosterExporter(), cfg.UploadDir)

	// ========== Notifications ==========
	notifRepo := notification.NewRepository(database.DB)
	notifSvc := notification.NewService(notifRepo)
	notifHandler := notification.NewHandler(notifSvc)

	// Public event reads and attendee flows. Registration, check-in and the
	// bulk roster upload are used at the door, so they carry no auth.
	eventRoutes := api.Group("/events")
	{
		eventRoutes.GET("", eventHandler.ListEvents)
		eventRoutes.GET("/:id", eventHandler.GetEventByID)

		eventRoutes.POST("/:id/attendees", attendeeHandler.Register)
		eventRoutes.GET("/:id/attendees", attendeeHandler.List)
		eventRoutes.PATCH("/:id/attendees/:attendee_id/checkin", attendeeHandler.CheckIn)
		eventRoutes.POST("/:id/attendees/bulk_checkin", attendeeHandler.BulkCheckIn)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg, authSvc))
	{
		protected.POST("/events", eventHandler.CreateEvent)
		protected.PUT("/events/:id", eventHandler.UpdateEvent)
		protected.GET("/events/:id/attendees/export", attendeeHandler.Export)

		protected.GET("/auditlogs", auditHandler.GetAuditLogs)

		protected.GET("/notifications", notifHandler.List)
		protected.PATCH("/notifications/:id/read", notifHandler.MarkAsRead)
	}
}
