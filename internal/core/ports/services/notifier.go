package services

import (
	"context"

	"github.com/SeedSwipe/seed_swipe_app/internal/core/domain"
)

// Notifier is the fire-and-forget push-notification collaborator. Dispatch
// failures are logged by callers and never surfaced to users; no delivery
// guarantee is required by this core.
type Notifier interface {
	Dispatch(ctx context.Context, notification domain.Notification) error
}
