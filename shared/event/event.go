package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"servicehub/infras/kafka"
	"servicehub/infras/otel"
	"servicehub/shared/constant"
	"servicehub/shared/timezone"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Type string

const (
	BookingCreated   Type = "booking.created"
	BookingAccepted  Type = "booking.accepted"
	BookingRejected  Type = "booking.rejected"
	BookingStarted   Type = "booking.started"
	BookingCancelled Type = "booking.cancelled"
	BookingCompleted Type = "booking.completed"

	PaymentInitiated       Type = "payment.initiated"
	PaymentCompleted       Type = "payment.completed"
	PaymentRefundRequested Type = "payment.refund_requested"
	PaymentReleased        Type = "payment.released"
)

// Event is a lifecycle notification keyed by booking so consumers see one booking's events in order.
type Event struct {
	ID         string         `json:"id"`
	Type       Type           `json:"type"`
	BookingID  string         `json:"booking_id"`
	PaymentID  string         `json:"payment_id,omitempty"`
	Actor      string         `json:"actor"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

func New(eventType Type, bookingID, actor string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		BookingID:  bookingID,
		Actor:      actor,
		OccurredAt: timezone.Now(),
	}
}

func (e Event) WithPayment(paymentID string) Event {
	e.PaymentID = paymentID

	return e
}

func (e Event) WithData(data map[string]any) Event {
	e.Data = data

	return e
}

const queueSize = 256

type queued struct {
	ctx   context.Context
	topic string
	evt   Event
}

// Publisher sends events after the owning transaction has committed. Delivery is best effort.
// One worker drains the queue, so events leave in the order they were published.
type Publisher interface {
	Publish(ctx context.Context, topic string, evt Event)
	Close(ctx context.Context) error
}

type publisherImpl struct {
	client kafka.Client
	otel   otel.Otel

	mu      sync.RWMutex
	closed  bool
	queue   chan queued
	drained chan struct{}
}

func NewPublisher(client kafka.Client, otel otel.Otel) Publisher {
	p := &publisherImpl{
		client:  client,
		otel:    otel,
		queue:   make(chan queued, queueSize),
		drained: make(chan struct{}),
	}

	go p.run()

	return p
}

// Publish never blocks the caller. Events are dropped with an error log once the queue is full
// or the publisher is closed.
func (p *publisherImpl) Publish(ctx context.Context, topic string, evt Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	logger := log.With().Str("topic", topic).Str("type", string(evt.Type)).Str("booking_id", evt.BookingID).Logger()

	if p.closed {
		logger.Error().Msg("publisher closed, event dropped")

		return
	}

	select {
	case p.queue <- queued{ctx: context.WithoutCancel(ctx), topic: topic, evt: evt}:
	default:
		logger.Error().Msg("event queue full, event dropped")
	}
}

// Close stops accepting events and waits until the queued ones are sent or ctx is done.
func (p *publisherImpl) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	select {
	case <-p.drained:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("event queue not drained: %w", ctx.Err())
	}
}

func (p *publisherImpl) run() {
	defer close(p.drained)

	for item := range p.queue {
		p.send(item)
	}
}

func (p *publisherImpl) send(item queued) {
	ctx, scope := p.otel.NewScope(item.ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"event.type":       string(item.evt.Type),
		"event.booking_id": item.evt.BookingID,
	})

	err := p.client.SendMessages(ctx, item.topic, kafka.Message{Key: item.evt.BookingID, Value: item.evt})
	if err != nil {
		scope.TraceError(err)
		log.Error().
			Err(err).
			Str("topic", item.topic).
			Str("type", string(item.evt.Type)).
			Str("booking_id", item.evt.BookingID).
			Msg("failed to publish event")
	}
}
