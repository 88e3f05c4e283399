package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Skotchmaster/dummyjson/pkg/logging"
)

const (
	TopicProducts = "product_events"
	TopicCarts    = "cart_events"
	TopicUsers    = "user_events"
	TopicPosts    = "post_events"
	TopicTodos    = "todo_events"
)

// EventPublisher receives a notification for every simulated write.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

type NoopPublisher struct{}

func (NoopPublisher) PublishEvent(context.Context, string, string, any) error { return nil }

// publish never fails the request: the result of a simulated write does not
// depend on the event being delivered.
func publish(ctx context.Context, p EventPublisher, topic, typ string, id int) {
	if p == nil {
		return
	}
	event := map[string]any{
		"type": typ,
		"id":   id,
		"at":   time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := p.PublishEvent(ctx, topic, strconv.Itoa(id), event); err != nil {
		logging.FromContext(ctx).Warn("publish_event_failed", "topic", topic, "type", typ, "error", err)
	}
}
