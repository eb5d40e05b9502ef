package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"lounge-scheduler/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ExchangeKind = "topic"

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	exchange string
	logger   *slog.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel channel
}

func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq dial")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq channel")
	}

	if err := ch.ExchangeDeclare(exchange, ExchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq exchange declare")
	}

	p := newPublisher(ch, exchange, logger)
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{exchange: exchange, channel: ch, logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "marshal payload")
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}); err != nil {
		return errs.Wrapf(err, "publish to %s/%s", p.exchange, routingKey)
	}

	p.logger.Debug("message published", "exchange", p.exchange, "routing_key", routingKey)
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var first error
	if p.channel != nil {
		first = p.channel.Close()
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
