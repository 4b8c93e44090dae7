package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KevinDaniel18/cowork-central/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel/trace"
)

type producer interface {
	Publish(topic string, key, value []byte, headers ...kafka.Header)
}

// Publisher turns booking lifecycle changes into envelopes on Kafka topics.
type Publisher struct {
	producer producer
	source   string
	logger   logger.Logger
}

func NewPublisher(p producer, source string, log logger.Logger) *Publisher {
	return &Publisher{producer: p, source: source, logger: log}
}

func (p *Publisher) PublishBookingCreated(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, TopicBookingCreated, EventBookingCreated, b)
}

func (p *Publisher) PublishBookingConfirmed(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, TopicBookingConfirmed, EventBookingConfirmed, b)
}

func (p *Publisher) PublishBookingCancelled(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, TopicBookingCancelled, EventBookingCancelled, b)
}

func (p *Publisher) PublishBookingCompleted(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, TopicBookingCompleted, EventBookingCompleted, b)
}

func (p *Publisher) publish(ctx context.Context, topic, eventType string, b *domain.Booking) {
	payload, err := json.Marshal(BookingPayload{
		BookingID:  b.ID,
		SpaceID:    b.SpaceID,
		UserID:     b.UserID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Status:     string(b.Status),
		TotalCents: b.TotalCents,
	})
	if err != nil {
		p.logger.Error("marshal booking payload", logger.String("error", err.Error()))
		return
	}

	env := Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      p.source,
		CorrelationID: b.ID,
		Payload:       payload,
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		env.TraceID = sc.TraceID().String()
	}

	value, err := json.Marshal(env)
	if err != nil {
		p.logger.Error("marshal envelope", logger.String("error", err.Error()))
		return
	}

	p.producer.Publish(topic, PartitionKey(b.SpaceID), value,
		kafka.Header{Key: "event_type", Value: []byte(eventType)},
	)

	p.logger.Debug("booking event queued",
		logger.String("topic", topic),
		logger.String("booking_id", b.ID),
	)
}
