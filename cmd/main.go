package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/anirudhs017/event-management-backend/config"
	"github.com/anirudhs017/event-management-backend/database"
	"github.com/anirudhs017/event-management-backend/internal/attendee"
	"github.com/anirudhs017/event-management-backend/internal/auditlog"
	"github.com/anirudhs017/event-management-backend/internal/auth"
	"github.com/anirudhs017/event-management-backend/internal/event"
	"github.com/anirudhs017/event-management-backend/internal/notification"
	"github.com/anirudhs017/event-management-backend/routes"
	"github.com/anirudhs017/event-management-backend/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis
	if err := utils.InitRedis(cfg); err != nil {
		log.Printf("⚠️ Redis init failed, rate limiting falls back to memory: %v", err)
	}

	// Init Kafka
	utils.InitializeKafka(cfg)
	defer utils.CloseKafka()

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.User{},
		&auditlog.AuditLog{},
		&event.Event{},
		&attendee.Attendee{},
		&notification.InAppNotification{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Upload archive directory for bulk check-in rosters
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Printf("⚠️ Could not create upload directory %s: %v", cfg.UploadDir, err)
	}

	// Notification consumer
	notifRepo := notification.NewRepository(db)
	notifSvc := notification.NewService(notifRepo)
	notification.StartKafkaConsumer(context.Background(), notifSvc, cfg)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	routes.Setup(router, cfg)

	log.Printf("🚀 Server listening on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
