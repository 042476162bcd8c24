package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	portssvc "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/services"
)

// NotificationStream is the Redis stream the mobile push gateway consumes.
const NotificationStream = "notifications"

// maxStreamLen bounds the stream so an offline consumer cannot grow it unboundedly.
const maxStreamLen = 10000

// RedisNotifier publishes notifications onto a Redis stream. Delivery to
// devices is the push gateway's concern; this side only appends and forgets.
type RedisNotifier struct {
	client *redis.Client
}

// NewRedisNotifier creates a notifier backed by the given Redis client.
func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

// Ensure RedisNotifier implements the portssvc.Notifier interface
var _ portssvc.Notifier = (*RedisNotifier)(nil)

// NewRedisClient creates a Redis client with the connection settings used
// across the service.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})
}

// Dispatch appends the notification to the stream.
func (n *RedisNotifier) Dispatch(ctx context.Context, notification domain.Notification) error {
	payload, err := json.Marshal(notification.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	err = n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: NotificationStream,
		MaxLen: maxStreamLen,
		Approx: true,
		Values: map[string]interface{}{
			"id":        notification.ID,
			"type":      string(notification.Type),
			"recipient": notification.RecipientID,
			"payload":   string(payload),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append notification to stream: %w", err)
	}
	return nil
}

// Ping tests the Redis connection.
func (n *RedisNotifier) Ping(ctx context.Context) error {
	if err := n.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the underlying Redis connection.
func (n *RedisNotifier) Close() error {
	return n.client.Close()
}
