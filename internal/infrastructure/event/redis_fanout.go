package event

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/stockline/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RedisFanout mirrors domain events onto a Redis channel so other
// processes (exports, dashboards) can follow collection changes without
// polling. It is a wildcard subscriber; a publish failure is logged and
// never blocks the write that produced the event.
type RedisFanout struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

// NewRedisFanout creates a fanout publishing to the given channel.
func NewRedisFanout(client *redis.Client, channel string, logger *zap.Logger) *RedisFanout {
	return &RedisFanout{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

type fanoutMessage struct {
	EventID       string `json:"event_id"`
	EventType     string `json:"event_type"`
	AggregateID   string `json:"aggregate_id"`
	AggregateType string `json:"aggregate_type"`
	UserID        string `json:"user_id"`
	OccurredAt    int64  `json:"occurred_at"`
}

// Handle publishes the event onto the Redis channel.
func (f *RedisFanout) Handle(ctx context.Context, event shared.DomainEvent) error {
	payload, err := json.Marshal(fanoutMessage{
		EventID:       event.EventID().String(),
		EventType:     event.EventType(),
		AggregateID:   event.AggregateID().String(),
		AggregateType: event.AggregateType(),
		UserID:        event.UserID().String(),
		OccurredAt:    event.OccurredAt().Unix(),
	})
	if err != nil {
		return err
	}

	if err := f.client.Publish(ctx, f.channel, payload).Err(); err != nil {
		f.logger.Warn("redis fanout publish failed",
			zap.String("event_type", event.EventType()),
			zap.Error(err),
		)
	}
	return nil
}

// EventTypes returns nil: the fanout receives all events.
func (f *RedisFanout) EventTypes() []string {
	return nil
}

var _ shared.EventHandler = (*RedisFanout)(nil)
