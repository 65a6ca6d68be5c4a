// Package worker consumes the booking events the API publishes after each committed transition.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"hotelbook/config"
	"hotelbook/infras/kafka"
	"hotelbook/infras/otel"
	"hotelbook/infras/rabbitmq"
	bookingModel "hotelbook/internal/domains/booking/model"
	reportModel "hotelbook/internal/domains/report/model"
	"hotelbook/shared"
	"hotelbook/shared/cache"
	"hotelbook/shared/constant"
	"hotelbook/shared/publisher"
	"strings"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Worker struct {
	cfg    *config.Config
	kafka  kafka.Client
	rabbit rabbitmq.Client
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(cfg *config.Config, kafkaClient kafka.Client, rabbitClient rabbitmq.Client, cache cache.RedisCache, otel otel.Otel) *Worker {
	return &Worker{
		cfg:    cfg,
		kafka:  kafkaClient,
		rabbit: rabbitClient,
		cache:  cache,
		otel:   otel,
	}
}

// Run consumes every booking topic on the configured driver and blocks until ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	driver := strings.ToLower(w.cfg.Event.Driver)

	var consume func(ctx context.Context, topic string) error

	switch driver {
	case publisher.DriverKafka:
		consume = func(ctx context.Context, topic string) error {
			w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, topic, func(ctx context.Context, message kafkaGo.Message) error {
				return w.Handle(ctx, message.Topic, message.Value)
			})

			return nil
		}
	case publisher.DriverRabbitMQ:
		consume = func(ctx context.Context, topic string) error {
			return w.rabbit.Consume(ctx, topic, func(ctx context.Context, delivery amqp.Delivery) error { //nolint:wrapcheck
				return w.Handle(ctx, topic, delivery.Body)
			})
		}
	default:
		return fmt.Errorf("event driver %q has nothing to consume", w.cfg.Event.Driver)
	}

	log.Info().Str("driver", driver).Strs("topics", bookingModel.Topics).Msg("Worker started")

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, topic := range bookingModel.Topics {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if err := consume(ctx, topic); err != nil {
				log.Error().Err(err).Str("topic", topic).Msg("consumer stopped")

				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if len(errs) > 0 {
		return fmt.Errorf("%d consumers stopped with an error: %w", len(errs), errs[0])
	}

	return nil
}

// Handle logs one booking event and drops the caches it makes stale.
// A payload that cannot be decoded is returned as an error so the broker does not redeliver it as success.
func (w *Worker) Handle(ctx context.Context, topic string, body []byte) (err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Handle")
	defer scope.End()
	defer scope.TraceIfError(err)

	var event bookingModel.BookingEvent
	if err = json.Unmarshal(body, &event); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to decode booking event")

		return fmt.Errorf("failed to decode booking event: %w", err)
	}

	scope.SetAttributes(map[string]any{"event.topic": topic, "booking.id": event.BookingID})

	log.Info().
		Str("topic", topic).
		Str("booking_id", event.BookingID).
		Str("user_id", event.UserID).
		Str("room_id", event.RoomID).
		Str("status", event.Status).
		Float64("total_cost", event.TotalCost).
		Str("check_in", event.CheckIn).
		Str("check_out", event.CheckOut).
		Time("occurred_at", event.OccurredAt).
		Msg("booking event")

	shared.InvalidateCaches(ctx, w.cache, reportModel.CachePrefix)
	shared.InvalidateCaches(ctx, w.cache, bookingModel.CachePrefix)

	return nil
}
