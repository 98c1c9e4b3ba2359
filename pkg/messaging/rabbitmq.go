// Package messaging provides the AMQP plumbing used to talk to the checks
// and operations engines and to receive agent telemetry.
package messaging

import (
	"context"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hana-sre/cluster-manager/internal/middleware"
)

const contentTypeJSON = "application/json"

type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher connects to RabbitMQ and declares the given topic exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %v", err)
	}

	err = channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange %q: %v", exchange, err)
	}

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish sends body to the publisher's exchange under routingKey. The
// correlation ID is taken from ctx when present so engine side logs can be
// matched with ours.
func (p *Publisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	correlationID, _ := middleware.GetCorrelationID(ctx)

	return p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:   contentTypeJSON,
		CorrelationId: correlationID,
		Body:          body,
	})
}

func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}

type Consumer struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	exchange    string
	queuePrefix string
	logger      *slog.Logger
}

// NewConsumer connects to RabbitMQ for consuming from the given topic
// exchange. Queue names are prefixed so multiple services can bind to the
// same exchange without stealing each other's messages.
func NewConsumer(logger *slog.Logger, url, exchange, queuePrefix string) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %v", err)
	}

	err = channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange %q: %v", exchange, err)
	}

	return &Consumer{
		conn:        conn,
		channel:     channel,
		exchange:    exchange,
		queuePrefix: queuePrefix,
		logger:      logger,
	}, nil
}

// Consume binds a queue to routingKey and invokes handler for every
// delivery. The handler owns acknowledgement. The context passed to the
// handler carries the delivery's correlation ID.
func (c *Consumer) Consume(routingKey string, handler func(ctx context.Context, d amqp.Delivery)) error {
	queueName := c.queuePrefix + "." + routingKey

	queue, err := c.channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue %q: %v", queueName, err)
	}

	err = c.channel.QueueBind(queue.Name, routingKey, c.exchange, false, nil)
	if err != nil {
		return fmt.Errorf("failed to bind queue %q: %v", queueName, err)
	}

	deliveries, err := c.channel.Consume(queue.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume from queue %q: %v", queueName, err)
	}

	go func() {
		for d := range deliveries {
			ctx := context.Background()
			if d.CorrelationId != "" {
				ctx = middleware.NewContextWithCorrelationID(ctx, d.CorrelationId)
			}
			handler(ctx, d)
		}
		c.logger.Info("Delivery channel closed", "queue", queueName)
	}()

	return nil
}

func (c *Consumer) Close() error {
	if err := c.channel.Close(); err != nil {
		return err
	}
	return c.conn.Close()
}
