package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/anirudhs017/event-management-backend/config"
)

// kafkaWriter is the shared producer, set by InitializeKafka at startup.
// It stays nil when no brokers are configured; publishing then becomes a
// no-op so the API keeps working without Kafka.
var kafkaWriter *kafka.Writer

// InitializeKafka sets up the shared producer for activity events.
func InitializeKafka(cfg *config.Config) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("Kafka brokers not configured, activity events disabled")
		return
	}

	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	log.Printf("Kafka producer initialized for topic %q", cfg.KafkaTopic)
}

// PublishActivity sends one JSON activity event. Delivery failures are
// logged, not returned; activity events are best-effort and must never fail
// the request that produced them.
func PublishActivity(activityType string, payload map[string]interface{}) {
	if kafkaWriter == nil {
		return
	}

	if payload == nil {
		payload = map[string]interface{}{}
	}
	payload["type"] = activityType
	payload["occurred_at"] = time.Now().UTC().Format(time.RFC3339)

	value, err := json.Marshal(payload)
	if err != nil {
		log.Printf("kafka activity marshal failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(activityType),
		Value: value,
	}
	if err := kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Printf("kafka activity publish failed: %v", err)
	}
}

// CloseKafka flushes and closes the shared producer.
func CloseKafka() {
	if kafkaWriter == nil {
		return
	}
	if err := kafkaWriter.Close(); err != nil {
		log.Printf("kafka writer close failed: %v", err)
	}
}
