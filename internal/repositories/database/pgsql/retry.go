package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/share_registry_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	maxRetryAttempts  = 3
	initialRetryDelay = 50 * time.Millisecond
)

// isTransientPgError reports whether the error is worth retrying:
// serialization failures, deadlocks and connection-class errors.
func isTransientPgError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01": // serialization_failure, deadlock_detected
		return true
	}
	// Class 08 covers connection exceptions.
	return len(pgErr.Code) == 5 && pgErr.Code[:2] == "08"
}

// withRetry runs fn, retrying transient database failures with exponential
// backoff. Non-transient errors propagate immediately; exhausted retries
// surface as apperrors.ErrTransient.
func withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	delay := initialRetryDelay
	var lastErr error
	for attempt := 0; attempt < maxRetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !isTransientPgError(lastErr) {
			return lastErr
		}
	}
	return fmt.Errorf("%w: giving up after %d attempts: %v", apperrors.ErrTransient, maxRetryAttempts, lastErr)
}
