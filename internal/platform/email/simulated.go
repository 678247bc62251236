package email

import (
	"context"
	"log/slog"
)

// SimulatedSender logs mail instead of delivering it. Used when no SendGrid
// key is configured, so recovery flows stay testable in development.
type SimulatedSender struct{}

func (SimulatedSender) Send(ctx context.Context, toEmail, toName, subject, plainBody string) error {
	slog.Info("Simulated mail delivery",
		slog.String("to", toEmail),
		slog.String("subject", subject),
	)
	return nil
}
