package kafka_test

import (
	"hotelbook/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingPayload struct {
	BookingID string  `json:"booking_id"`
	TotalCost float64 `json:"total_cost"`
}

func TestMessageRoundTrip(t *testing.T) {
	message := kafka.Message{Key: "booking-1", Value: bookingPayload{BookingID: "booking-1", TotalCost: 300}}

	kafkaMessage, err := message.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("booking-1"), kafkaMessage.Key)
	assert.JSONEq(t, `{"booking_id":"booking-1","total_cost":300}`, string(kafkaMessage.Value))

	decoded, err := kafka.DecodeKafkaMessage[bookingPayload](kafkaMessage)
	require.NoError(t, err)
	assert.Equal(t, "booking-1", decoded.BookingID)
}

func TestDecodeKafkaMessage_Invalid(t *testing.T) {
	_, err := kafka.DecodeKafkaMessage[bookingPayload](kafkaGo.Message{Value: []byte("{")})

	assert.Error(t, err)
}

func TestToKafkaMessage_Unmarshalable(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage()
	assert.Error(t, err)
}
