package event_test

import (
	"context"
	"errors"
	"servicehub/infras/kafka"
	kafkaMocks "servicehub/infras/kafka/mocks"
	"servicehub/infras/otel/mocks"
	"servicehub/shared/event"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPublisher_Publish(t *testing.T) {
	tests := []struct {
		name       string
		sendErr    error
		wantTraced int
	}{
		{name: "message keyed by booking"},
		{name: "send failure is swallowed", sendErr: errors.New("broker unavailable"), wantTraced: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := kafkaMocks.NewMockClient(gomock.NewController(t))
			tracer := mocks.NewOtel()
			publisher := event.NewPublisher(client, tracer)

			evt := event.New(event.BookingAccepted, "booking-1", "provider-1").WithData(map[string]any{"final_amount": "1500"})

			client.EXPECT().
				SendMessages(gomock.Any(), "booking.events", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
					assert.Equal(t, "booking-1", messages[0].Key)
					assert.Equal(t, evt, messages[0].Value)

					return tt.sendErr
				})

			ctx, cancel := context.WithCancel(context.Background())
			publisher.Publish(ctx, "booking.events", evt)
			cancel()

			require.NoError(t, publisher.Close(context.Background()))
			require.Len(t, tracer.Scopes, 1)
			assert.True(t, tracer.Scopes[0].Ended)
			assert.Len(t, tracer.Scopes[0].Errors, tt.wantTraced)
		})
	}
}

func TestPublisher_KeepsPublishOrder(t *testing.T) {
	client := kafkaMocks.NewMockClient(gomock.NewController(t))
	publisher := event.NewPublisher(client, mocks.NewOtel())

	released := event.New(event.PaymentReleased, "booking-1", "provider-1")
	completed := event.New(event.BookingCompleted, "booking-1", "provider-1")

	gomock.InOrder(
		client.EXPECT().SendMessages(gomock.Any(), "payment.events", kafka.Message{Key: "booking-1", Value: released}).Return(nil),
		client.EXPECT().SendMessages(gomock.Any(), "booking.events", kafka.Message{Key: "booking-1", Value: completed}).Return(nil),
	)

	publisher.Publish(context.Background(), "payment.events", released)
	publisher.Publish(context.Background(), "booking.events", completed)

	require.NoError(t, publisher.Close(context.Background()))
}

func TestPublisher_Close(t *testing.T) {
	t.Run("events after close are dropped", func(t *testing.T) {
		client := kafkaMocks.NewMockClient(gomock.NewController(t))
		publisher := event.NewPublisher(client, mocks.NewOtel())

		require.NoError(t, publisher.Close(context.Background()))
		require.NoError(t, publisher.Close(context.Background()))

		publisher.Publish(context.Background(), "booking.events", event.New(event.BookingCreated, "booking-1", "customer-1"))
	})

	t.Run("gives up when the broker hangs", func(t *testing.T) {
		client := kafkaMocks.NewMockClient(gomock.NewController(t))
		publisher := event.NewPublisher(client, mocks.NewOtel())

		started := make(chan struct{})
		release := make(chan struct{})
		t.Cleanup(func() { close(release) })

		client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
				close(started)
				<-release

				return nil
			})

		publisher.Publish(context.Background(), "booking.events", event.New(event.BookingCreated, "booking-1", "customer-1"))
		<-started

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		require.ErrorIs(t, publisher.Close(ctx), context.DeadlineExceeded)
	})
}

func TestEvent_Builders(t *testing.T) {
	evt := event.New(event.PaymentReleased, "booking-1", "provider-1").WithPayment("payment-1")

	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, event.PaymentReleased, evt.Type)
	assert.Equal(t, "payment-1", evt.PaymentID)
	assert.False(t, evt.OccurredAt.IsZero())
}
