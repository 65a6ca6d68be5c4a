package rabbitmq_test

import (
	"context"
	"hotelbook/config"
	"hotelbook/infras/rabbitmq"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublish_NotConfigured(t *testing.T) {
	client := rabbitmq.New(&config.Config{})

	err := client.Publish(context.Background(), "booking.created", "booking-1", []byte(`{}`))

	assert.ErrorIs(t, err, rabbitmq.ErrNotConfigured)
	assert.NoError(t, client.Close())
}

func TestConsume_NotConfigured(t *testing.T) {
	client := rabbitmq.New(&config.Config{})

	err := client.Consume(context.Background(), "booking.created", nil)

	assert.ErrorIs(t, err, rabbitmq.ErrNotConfigured)
}
