package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotelbook/config"
	"hotelbook/shared/constant"
	"hotelbook/shared/timezone"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const consumerPrefetch = 50

var ErrNotConfigured = errors.New("rabbitmq url is not configured")

// Handler processes one delivery. A nil return acks it, an error rejects it without requeue.
type Handler func(ctx context.Context, delivery amqp.Delivery) error

type Client interface {
	Publish(ctx context.Context, queue, key string, body []byte) error
	Consume(ctx context.Context, queue string, handler Handler) error
	Close() error
}

type clientImpl struct {
	config *config.Config

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queues  map[string]struct{}
}

func New(config *config.Config) Client {
	return &clientImpl{
		config: config,
		queues: map[string]struct{}{},
	}
}

// ensureChannel dials lazily and redials when the broker dropped the previous connection.
func (c *clientImpl) ensureChannel() (*amqp.Channel, error) {
	if c.channel != nil && !c.channel.IsClosed() {
		return c.channel, nil
	}

	if c.config.RabbitMQ.URL == "" {
		return nil, ErrNotConfigured
	}

	if c.conn == nil || c.conn.IsClosed() {
		conn, err := amqp.Dial(c.config.RabbitMQ.URL)
		if err != nil {
			log.Error().Err(err).Msg("Failed to dial RabbitMQ")

			return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
		}

		c.conn = conn
	}

	channel, err := c.conn.Channel()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open RabbitMQ channel")

		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	c.channel = channel
	c.queues = map[string]struct{}{}

	return channel, nil
}

func (c *clientImpl) declare(channel *amqp.Channel, queue string) error {
	if _, ok := c.queues[queue]; ok {
		return nil
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	if exchange := c.config.RabbitMQ.Exchange; exchange != "" {
		if err := channel.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
		}

		if err := channel.QueueBind(queue, queue, exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s: %w", queue, err)
		}
	}

	c.queues[queue] = struct{}{}

	return nil
}

func (c *clientImpl) Publish(ctx context.Context, queue, key string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	channel, err := c.ensureChannel()
	if err != nil {
		return err
	}

	if err = c.declare(channel, queue); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to declare RabbitMQ queue")

		return err
	}

	err = channel.PublishWithContext(ctx, c.config.RabbitMQ.Exchange, queue, false, false, amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    key,
		Timestamp:    timezone.Now(),
		Body:         body,
	})
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to publish to RabbitMQ")

		return fmt.Errorf("failed to publish to rabbitmq: %w", err)
	}

	return nil
}

// Consume blocks until ctx is done or the delivery channel closes.
func (c *clientImpl) Consume(ctx context.Context, queue string, handler Handler) error {
	c.mu.Lock()

	channel, err := c.ensureChannel()
	if err == nil {
		err = c.declare(channel, queue)
	}

	c.mu.Unlock()

	if err != nil {
		return err
	}

	if err = channel.Qos(consumerPrefetch, 0, false); err != nil {
		log.Warn().Err(err).Msg("Failed to set RabbitMQ QoS")
	}

	deliveries, err := channel.ConsumeWithContext(ctx, queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume queue %s: %w", queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("queue", queue).Msg("Consumer context done.")

			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("deliveries channel closed for %s", queue)
			}

			if err := handler(ctx, delivery); err != nil {
				log.Error().Err(err).Str("queue", queue).Str("key", delivery.MessageId).Msg("Failed to handle RabbitMQ delivery")

				_ = delivery.Nack(false, false)

				continue
			}

			_ = delivery.Ack(false)
		}
	}
}

func (c *clientImpl) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.channel != nil && !c.channel.IsClosed() {
		errs = append(errs, c.channel.Close())
	}

	if c.conn != nil && !c.conn.IsClosed() {
		errs = append(errs, c.conn.Close())
	}

	return errors.Join(errs...)
}
