package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/project-hub/internal/domain/entities"
)

// RedisNotifier publishes notifications as JSON on a Redis channel so that
// connected clients can show them as toasts
type RedisNotifier struct {
	client  redis.Cmdable
	channel string
	logger  *zap.Logger
}

// NewRedisNotifier creates a new Redis notifier
func NewRedisNotifier(client redis.Cmdable, channel string, logger *zap.Logger) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel, logger: logger.Named("notify")}
}

// Notify implements repositories.Notifier. Publish failures are logged and
// never reach the caller.
func (n *RedisNotifier) Notify(ctx context.Context, note entities.Notification) {
	payload, err := json.Marshal(note)
	if err != nil {
		n.logger.Error("failed to encode notification", zap.Error(err))
		return
	}

	receivers, err := n.client.Publish(ctx, n.channel, payload).Result()
	if err != nil {
		n.logger.Error("failed to publish notification",
			zap.String("channel", n.channel),
			zap.String("action", note.Action),
			zap.Error(err),
		)
		return
	}

	n.logger.Debug("notification published",
		zap.String("channel", n.channel),
		zap.String("action", note.Action),
		zap.Int64("receivers", receivers),
	)
}
