package publisher

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"hotelbook/config"
	"hotelbook/infras/kafka"
	"hotelbook/infras/otel"
	"hotelbook/infras/rabbitmq"
	"hotelbook/shared/constant"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

const (
	DriverKafka    = "kafka"
	DriverRabbitMQ = "rabbitmq"
	DriverNone     = "none"

	defaultMaxFailures    = 3
	defaultTimeoutSeconds = 10
)

// Publisher emits domain events after the state change they describe has been committed.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}

type sendFunc func(ctx context.Context, topic, key string, body []byte) error

type publisherImpl struct {
	driver  string
	send    sendFunc
	breaker *gobreaker.CircuitBreaker
	otel    otel.Otel
}

// New picks the transport named by EVENT_DRIVER. Unknown or empty drivers publish nothing.
func New(cfg *config.Config, kafkaClient kafka.Client, rabbitClient rabbitmq.Client, otl otel.Otel) Publisher {
	driver := strings.ToLower(cfg.Event.Driver)

	var send sendFunc

	switch driver {
	case DriverKafka:
		send = func(ctx context.Context, topic, key string, body []byte) error {
			return kafkaClient.SendMessages(ctx, topic, kafka.Message{Key: key, Value: json.RawMessage(body)}) //nolint:wrapcheck
		}
	case DriverRabbitMQ:
		send = rabbitClient.Publish
	default:
		driver = DriverNone
		send = func(context.Context, string, string, []byte) error { return nil }
	}

	log.Info().Str("driver", driver).Msg("Event publisher initialized")

	return &publisherImpl{
		driver:  driver,
		send:    send,
		breaker: NewCircuitBreaker("publisher."+driver, cfg.Event.MaxFailures, cfg.Event.TimeoutSeconds),
		otel:    otl,
	}
}

// NewCircuitBreaker trips after maxFailures consecutive errors and probes again after timeoutSeconds.
func NewCircuitBreaker(name string, maxFailures uint32, timeoutSeconds int) *gobreaker.CircuitBreaker {
	if maxFailures == 0 {
		maxFailures = defaultMaxFailures
	}

	if timeoutSeconds <= 0 {
		timeoutSeconds = defaultTimeoutSeconds
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     time.Duration(timeoutSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})
}

func (p *publisherImpl) Publish(ctx context.Context, topic, key string, payload any) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{"event.topic": topic, "event.key": key, "event.driver": p.driver})

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to marshal event")

		return fmt.Errorf("failed to marshal event: %w", err)
	}

	_, err = p.breaker.Execute(func() (any, error) {
		return nil, p.send(ctx, topic, key, body)
	})
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Str("key", key).Msg("failed to publish event")

		return fmt.Errorf("failed to publish event %s: %w", topic, err)
	}

	return nil
}
