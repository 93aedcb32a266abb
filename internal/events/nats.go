package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"
)

type NATSProducer struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

func NewNATSProducer(url string, subject string, logger *slog.Logger) (*NATSProducer, error) {
	nc, err := nats.Connect(url, nats.Name("academic-service"))
	if err != nil {
		return nil, err
	}

	logger.Info("NATS producer initialized", "url", url, "subject", subject)

	return &NATSProducer{
		conn:    nc,
		subject: subject,
		logger:  logger,
	}, nil
}

func (p *NATSProducer) Publish(ctx context.Context, event Event) error {
	valueBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to marshal event", "error", err)
		return err
	}

	msg := nats.NewMsg(p.subject)
	msg.Data = valueBytes
	msg.Header.Set("Event-Type", string(event.Type))
	msg.Header.Set(nats.MsgIdHdr, event.ID)

	if err := p.conn.PublishMsg(msg); err != nil {
		p.logger.ErrorContext(ctx, "failed to send event to NATS", "error", err)
		return err
	}

	p.logger.DebugContext(ctx, "event sent to NATS", "subject", p.subject, "type", event.Type)
	return nil
}

func (p *NATSProducer) Close() error {
	return p.conn.Drain()
}
