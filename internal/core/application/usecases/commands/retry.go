package commands

import (
	"context"
	"errors"

	"bizza/internal/pkg/errs"
)

// conflictRetryAttempts bounds how often a handler re-runs after losing an
// optimistic-lock race. Each attempt re-reads fresh aggregate state.
const conflictRetryAttempts = 3

// withConflictRetry runs fn until it succeeds, fails with a non-conflict
// error, or the attempt budget is spent. Only ConcurrencyConflict retries;
// every other outcome is returned to the caller as is.
func withConflictRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < conflictRetryAttempts; attempt++ {
		err = fn(ctx)
		if !errors.Is(err, errs.ErrConcurrencyConflict) {
			return err
		}
	}
	return err
}
