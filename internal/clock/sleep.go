// Package clock provides helpers for waiting under a context.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retry calls fn up to attempts times, doubling the wait between calls starting at
// delay. It returns the last error of fn, or the context error if waiting is cut short.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func(context.Context) error) error {
	var err error
	for attempt := range max(attempts, 1) {
		if attempt > 0 {
			if sleepErr := SleepWithContext(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			delay *= 2
		}
		if err = fn(ctx); err == nil {
			return nil
		}
	}
	return err
}
