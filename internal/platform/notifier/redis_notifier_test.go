package notifier_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	"github.com/SeedSwipe/seed_swipe_app/internal/platform/notifier"
)

func setupNotifier(t *testing.T) (*notifier.RedisNotifier, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return notifier.NewRedisNotifier(client), client
}

func TestDispatch_AppendsToStream(t *testing.T) {
	n, client := setupNotifier(t)
	ctx := context.Background()

	notification := domain.Notification{
		ID:          "n-1",
		Type:        domain.NotificationNewMatch,
		RecipientID: "user-42",
		Payload: map[string]string{
			"businessID":   "b-1",
			"businessName": "Lemonade Stand Franchise",
		},
	}

	require.NoError(t, n.Dispatch(ctx, notification))

	entries, err := client.XRange(ctx, notifier.NotificationStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	values := entries[0].Values
	assert.Equal(t, "n-1", values["id"])
	assert.Equal(t, string(domain.NotificationNewMatch), values["type"])
	assert.Equal(t, "user-42", values["recipient"])

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(values["payload"].(string)), &payload))
	assert.Equal(t, "b-1", payload["businessID"])
}

func TestDispatch_MultipleOrdered(t *testing.T) {
	n, client := setupNotifier(t)
	ctx := context.Background()

	for _, id := range []string{"n-1", "n-2", "n-3"} {
		require.NoError(t, n.Dispatch(ctx, domain.Notification{
			ID:          id,
			Type:        domain.NotificationNewInvestment,
			RecipientID: "user-1",
		}))
	}

	entries, err := client.XRange(ctx, notifier.NotificationStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "n-1", entries[0].Values["id"])
	assert.Equal(t, "n-3", entries[2].Values["id"])
}
