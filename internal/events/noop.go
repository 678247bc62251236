package events

import (
	"context"
	"log/slog"
)

// NoopPublisher logs events at debug level instead of publishing. Used when
// no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, key string, event any) error {
	slog.Debug("Event publishing disabled, dropping event", slog.String("key", key))
	return nil
}

func (NoopPublisher) Close() error { return nil }
