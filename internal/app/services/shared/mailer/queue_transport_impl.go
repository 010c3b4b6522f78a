package mailer

import (
	"context"
	"fmt"
	"passwordless-service/internal/app/contracts"
	"passwordless-service/internal/app/models"
	"passwordless-service/internal/pkg/constvars"
	"passwordless-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publisher is the part of *amqp091.Channel the queue transport needs.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type queueTransport struct {
	Channel publisher
	Queue   string
	Log     *zap.Logger
}

// NewQueueTransport publishes rendered emails as JSON to a RabbitMQ queue
// consumed by the mailer worker.
func NewQueueTransport(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EmailTransport, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	return newQueueTransport(channel, queue, logger), nil
}

func newQueueTransport(channel publisher, queue string, logger *zap.Logger) *queueTransport {
	return &queueTransport{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (t *queueTransport) SendEmail(ctx context.Context, message *models.EmailMessage) error {
	requestID := utils.GetRequestID(ctx)
	t.Log.Info("queueTransport.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, t.Queue),
	)

	body, err := json.Marshal(message)
	if err != nil {
		t.Log.Error("queueTransport.SendEmail error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	publishing := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers: amqp091.Table{
			constvars.RabbitMQHeaderMessageType:     constvars.RabbitMQMessageTypeJSON,
			constvars.RabbitMQHeaderRequeueStrategy: constvars.RabbitMQRequeueStrategyDrop,
		},
	}

	if err := t.Channel.PublishWithContext(ctx, "", t.Queue, false, false, publishing); err != nil {
		t.Log.Error("queueTransport.SendEmail error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, t.Queue),
			zap.Error(err),
		)
		return fmt.Errorf(constvars.ErrDevRabbitMQPublishMessage+": %w", t.Queue, err)
	}

	t.Log.Info("queueTransport.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, t.Queue),
	)
	return nil
}
