package services

import "context"

// EventPublisher emits domain events to the message broker. Implementations
// must be safe for concurrent use; publish failures are logged, never
// propagated into the request path.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
	Close() error
}

// EmailSender delivers transactional mail. The no-op implementation logs the
// message instead of sending when no provider is configured.
type EmailSender interface {
	Send(ctx context.Context, toEmail, toName, subject, plainBody string) error
}
