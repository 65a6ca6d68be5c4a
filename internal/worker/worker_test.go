package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"hotelbook/config"
	"hotelbook/infras/kafka"
	kafkaMocks "hotelbook/infras/kafka/mocks"
	otelMocks "hotelbook/infras/otel/mocks"
	"hotelbook/infras/rabbitmq"
	rabbitMocks "hotelbook/infras/rabbitmq/mocks"
	bookingModel "hotelbook/internal/domains/booking/model"
	"hotelbook/internal/worker"
	cacheMocks "hotelbook/shared/cache/mocks"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	kafka  *kafkaMocks.MockClient
	rabbit *rabbitMocks.MockClient
	cache  *cacheMocks.MockRedisCache
}

func newWorker(t *testing.T, driver string) (*worker.Worker, fixture) {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		kafka:  kafkaMocks.NewMockClient(ctrl),
		rabbit: rabbitMocks.NewMockClient(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Event.Driver = driver
	cfg.Kafka.ConsumerGroup = "hotelbook-worker"

	return worker.New(cfg, f.kafka, f.rabbit, f.cache, otelMocks.NewOtel()), f
}

func eventBody(t *testing.T) []byte {
	t.Helper()

	body, err := json.Marshal(bookingModel.BookingEvent{
		BookingID:  "booking-1",
		UserID:     "user-1",
		RoomID:     "room-1",
		Status:     bookingModel.StatusConfirmed,
		TotalCost:  450,
		CheckIn:    "2025-03-01",
		CheckOut:   "2025-03-04",
		OccurredAt: time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return body
}

func TestWorker_Handle(t *testing.T) {
	tests := []struct {
		name        string
		body        []byte
		setupMocks  func(f fixture)
		expectError bool
	}{
		{
			name: "invalidates report and booking caches",
			body: eventBody(t),
			setupMocks: func(f fixture) {
				f.cache.EXPECT().Clear(gomock.Any(), "report:*").Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), "booking:*").Return(nil)
			},
		},
		{
			name: "cache failure is not fatal",
			body: eventBody(t),
			setupMocks: func(f fixture) {
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")).Times(2)
			},
		},
		{
			name:        "malformed payload",
			body:        []byte("{not json"),
			setupMocks:  func(fixture) {},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, f := newWorker(t, "kafka")
			tt.setupMocks(f)

			err := w.Handle(context.Background(), bookingModel.TopicConfirmed, tt.body)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWorker_RunKafka(t *testing.T) {
	w, f := newWorker(t, "Kafka")

	body := eventBody(t)

	for _, topic := range bookingModel.Topics {
		f.kafka.EXPECT().Consume(gomock.Any(), "hotelbook-worker", topic, gomock.Any()).
			Do(func(ctx context.Context, _, topic string, handler kafka.Handler) {
				assert.NoError(t, handler(ctx, kafkaGo.Message{Topic: topic, Value: body}))
			})
	}

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(2 * len(bookingModel.Topics))

	assert.NoError(t, w.Run(context.Background()))
}

func TestWorker_RunRabbitMQ(t *testing.T) {
	w, f := newWorker(t, "rabbitmq")

	f.rabbit.EXPECT().Consume(gomock.Any(), bookingModel.TopicCreated, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, handler rabbitmq.Handler) error {
			return handler(ctx, amqp.Delivery{Body: []byte("{")})
		})
	f.rabbit.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(len(bookingModel.Topics) - 1)

	assert.Error(t, w.Run(context.Background()))
}

func TestWorker_RunWithoutDriver(t *testing.T) {
	w, _ := newWorker(t, "none")

	assert.Error(t, w.Run(context.Background()))
}
