package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portssvc "github.com/SscSPs/investment_admin_core/internal/core/ports/services"
	"github.com/SscSPs/investment_admin_core/internal/middleware"
)

// Publisher publishes investment events as persistent JSON messages to a durable
// queue through the default exchange.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mu      sync.Mutex
}

var _ portssvc.EventPublisher = (*Publisher)(nil)

// NewPublisher dials url and declares queue.
func NewPublisher(url, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	return &Publisher{conn: conn, channel: ch, queue: queue}, nil
}

// Publish sends event to the configured queue.
func (p *Publisher) Publish(ctx context.Context, event domain.InvestmentEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s for investment %s: %w", event.Type, event.InvestmentID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Debug("Investment event published",
		slog.String("type", string(event.Type)),
		slog.String("investment_id", event.InvestmentID),
		slog.String("queue", p.queue),
	)
	return nil
}

// Close releases the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return fmt.Errorf("failed to close RabbitMQ channel: %w", err)
	}
	return p.conn.Close()
}

func newMessage(event domain.InvestmentEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(event.Type),
		MessageId:    event.TransactionID,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}, nil
}

// LogPublisher writes events to the request logger. It is used when no broker is
// configured.
type LogPublisher struct{}

var _ portssvc.EventPublisher = LogPublisher{}

func (LogPublisher) Publish(ctx context.Context, event domain.InvestmentEvent) error {
	middleware.GetLoggerFromCtx(ctx).Info("Investment event",
		slog.String("type", string(event.Type)),
		slog.String("investment_id", event.InvestmentID),
		slog.String("transaction_id", event.TransactionID),
		slog.String("amount", event.Amount.String()),
		slog.String("currency", event.CurrencyCode),
	)
	return nil
}
