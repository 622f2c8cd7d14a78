package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// readRetries is the fixed retry budget for idempotent reads. Transition
// writes are never retried here; the caller decides, because a retry must
// carry the same expected from-status to stay safe.
const readRetries = 2

// readWithRetry runs an idempotent read, retrying transient failures a fixed
// number of times. Missing rows and cancelled contexts are returned as-is.
func readWithRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt <= readRetries; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if errors.Is(err, pgx.ErrNoRows) || ctx.Err() != nil {
			return err
		}
	}
	return err
}
