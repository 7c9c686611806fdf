package billing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// asyncTimeout bounds a background call to Temporal
const asyncTimeout = 5 * time.Second

// runAsync is swapped for a synchronous runner in tests
var runAsync = safeAsync

// safeAsync runs fn detached from the request with its own deadline. Failures
// are logged and never reach the caller, whose transaction already committed.
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
			return
		}
		rlog.Debug("async operation succeeded", "op", op)
	}()
}
