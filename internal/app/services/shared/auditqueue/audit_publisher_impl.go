package auditqueue

import (
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channelPublisher is the part of *amqp091.Channel the publisher uses.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type auditPublisher struct {
	Channel channelPublisher
	Queue   string
	Log     *zap.Logger
}

var (
	auditPublisherInstance contracts.AuditPublisher
	onceAuditPublisher     sync.Once
	auditPublisherError    error
)

func NewAuditPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.AuditPublisher, error) {
	onceAuditPublisher.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			auditPublisherError = err
			return
		}
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			auditPublisherError = err
			return
		}
		auditPublisherInstance = newAuditPublisher(channel, logger, queue)
	})
	return auditPublisherInstance, auditPublisherError
}

func newAuditPublisher(channel channelPublisher, logger *zap.Logger, queue string) *auditPublisher {
	return &auditPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (s *auditPublisher) Publish(ctx context.Context, event models.AuditEvent) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if event.RequestID == "" {
		event.RequestID = requestID
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		s.Log.Error("auditPublisher.Publish error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(exceptions.ErrCannotMarshalJSON(err)),
		)
		return
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
		Headers: amqp091.Table{
			"message_type": "JSON",
			"event_type":   event.Type,
		},
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("auditPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(exceptions.ErrRabbitMQPublishMessage(err, s.Queue)),
		)
		return
	}

	s.Log.Info("auditPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
		zap.String("event_type", event.Type),
	)
}
