package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/anirudhs017/event-management-backend/config"
)

// StartKafkaConsumer runs a background loop that turns attendee activity
// events into in-app notifications. It is a no-op when no brokers are
// configured.
func StartKafkaConsumer(ctx context.Context, svc Service, cfg *config.Config) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("⚠️ Kafka brokers not configured, notification consumer disabled")
		return
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
		GroupID: "notification-consumer",
	})

	go func() {
		defer reader.Close()
		log.Printf("✅ Notification consumer started on topic %s", cfg.KafkaTopic)

		for {
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("notification consumer: read failed: %v", err)
				continue
			}

			var activity map[string]interface{}
			if err := json.Unmarshal(msg.Value, &activity); err != nil {
				log.Printf("notification consumer: bad payload: %v", err)
				continue
			}

			if err := svc.CreateFromActivity(ctx, activity); err != nil {
				log.Printf("notification consumer: failed to store notification: %v", err)
			}
		}
	}()
}
