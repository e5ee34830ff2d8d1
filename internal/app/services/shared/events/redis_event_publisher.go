package events

import (
	"context"

	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisEventPublisher broadcasts case events over a Redis pub/sub channel.
// The websocket hub subscribes to the same channel, so every API instance
// sees every event regardless of which instance handled the request.
type redisEventPublisher struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisEventPublisher(client *redis.Client, log *zap.Logger) contracts.EventPublisher {
	return &redisEventPublisher{client: client, log: log}
}

func (p *redisEventPublisher) Publish(ctx context.Context, event contracts.CaseEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := p.client.Publish(ctx, constvars.EmergencyRoomChannel, payload).Err(); err != nil {
		return exceptions.ErrRedisPublishMessage(err, constvars.EmergencyRoomChannel)
	}

	p.log.Debug("event published",
		zap.String(constvars.LoggingChannelKey, constvars.EmergencyRoomChannel),
		zap.String(constvars.LoggingEventKey, event.Event),
	)
	return nil
}
