package http

import (
	"errors"
	"servicehub/config"
	kafkaMocks "servicehub/infras/kafka/mocks"
	eventMocks "servicehub/shared/event/mocks"
	"servicehub/transport/http/router"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestHTTP_CloseClientsFlushesEventsFirst(t *testing.T) {
	tests := []struct {
		name     string
		closeErr error
	}{
		{name: "drained"},
		{name: "drain timed out", closeErr: errors.New("event queue not drained: context deadline exceeded")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			publisher := eventMocks.NewMockPublisher(ctrl)
			kafkaClient := kafkaMocks.NewMockClient(ctrl)

			gomock.InOrder(
				publisher.EXPECT().Close(gomock.Any()).Return(tt.closeErr),
				kafkaClient.EXPECT().Close().Return(nil),
			)

			server := New(&config.Config{}, router.Router{}, nil, publisher, kafkaClient)
			server.closeClients()
		})
	}
}
