package repositories

import (
	"context"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

// Notifier delivers user feedback for actions. Delivery is fire-and-forget:
// implementations log failures instead of returning them.
type Notifier interface {
	Notify(ctx context.Context, n entities.Notification)
}
