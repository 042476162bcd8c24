package notifier

import (
	"context"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
	portssvc "github.com/SeedSwipe/seed_swipe_app/internal/core/ports/services"
)

// NoopNotifier discards all notifications. Used when no Redis address is
// configured, typically in local development.
type NoopNotifier struct{}

var _ portssvc.Notifier = (*NoopNotifier)(nil)

func (NoopNotifier) Dispatch(ctx context.Context, notification domain.Notification) error {
	return nil
}
