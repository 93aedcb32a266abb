package events

import (
	"log/slog"

	"academic-service/internal/config"
)

// NewPublisher builds the publisher selected by cfg.Driver. When the driver is
// empty or the broker cannot be reached, events are dropped and the service
// keeps running.
func NewPublisher(cfg config.EventsConfig, logger *slog.Logger) Publisher {
	switch cfg.Driver {
	case "nats":
		producer, err := NewNATSProducer(cfg.NATS.URL, cfg.NATS.Subject, logger)
		if err != nil {
			logger.Warn("failed to initialize NATS producer, events disabled", "error", err)
			return Nop{}
		}
		return producer
	case "kafka":
		producer, err := NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		if err != nil {
			logger.Warn("failed to initialize kafka producer, events disabled", "error", err)
			return Nop{}
		}
		return producer
	default:
		logger.Info("event publishing disabled")
		return Nop{}
	}
}
