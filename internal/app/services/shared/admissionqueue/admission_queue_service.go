package admissionqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes admission requests to the bed management queue. The
// queue and its dead-letter companion are durable; publishes are persistent
// and wait for broker confirms so a handed-over case cannot silently vanish.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.AdmissionRequestQueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.AdmissionRequestDLQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

var _ contracts.AdmissionRequestQueue = (*Service)(nil)

func (s *Service) Enqueue(ctx context.Context, request *models.AdmissionRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("AdmissionQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCaseIDKey, request.CaseID),
		zap.String(constvars.LoggingQueueKey, constvars.AdmissionRequestQueueName),
	)

	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", constvars.AdmissionRequestQueueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.AdmissionRequestQueueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf(constvars.ErrDevRabbitMQMessageNotConfirmed), constvars.AdmissionRequestQueueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), constvars.AdmissionRequestQueueName)
	}
	return nil
}
