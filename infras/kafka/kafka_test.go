package kafka_test

import (
	"context"
	"servicehub/config"
	"servicehub/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{
		Key:   "b-1",
		Value: map[string]string{"type": "booking.accepted", "booking_id": "b-1"},
	}

	msg, err := message.ToKafkaMessage("booking.events")
	require.NoError(t, err)

	assert.Equal(t, "booking.events", msg.Topic)
	assert.Equal(t, []byte("b-1"), msg.Key)
	assert.JSONEq(t, `{"type":"booking.accepted","booking_id":"b-1"}`, string(msg.Value))
}

func TestMessage_ToKafkaMessage_Unencodable(t *testing.T) {
	message := kafka.Message{Key: "b-1", Value: make(chan int)}

	_, err := message.ToKafkaMessage("booking.events")
	assert.Error(t, err)
}

func TestNew_DisabledDropsMessages(t *testing.T) {
	client := kafka.New(&config.Config{})

	err := client.SendMessages(context.Background(), "payment.events", kafka.Message{Key: "b-1", Value: "paid"})

	assert.NoError(t, err)
	assert.NoError(t, client.Close())
}
