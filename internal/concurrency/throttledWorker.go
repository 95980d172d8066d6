package concurrency

import (
	"context"
	"errors"
	"time"
)

// ThrottledWorker runs a job per argument, one at a time, at most one per interval.
type ThrottledWorker[T any] struct {
	interval    time.Duration
	jobCallback func(arg T) error
}

func NewThrottledWorker[T any](interval time.Duration, jobCallback func(arg T) error) ThrottledWorker[T] {
	return ThrottledWorker[T]{interval: interval, jobCallback: jobCallback}
}

// Run stops early when ctx is cancelled. Job errors do not stop the run and
// are returned joined.
func (w *ThrottledWorker[T]) Run(ctx context.Context, jobArgs []T) error {
	if len(jobArgs) == 0 {
		return nil
	}

	limiter := time.NewTicker(w.interval)
	defer limiter.Stop()

	var errs []error
	for i, arg := range jobArgs {
		if i > 0 {
			select {
			case <-ctx.Done():
				return errors.Join(append(errs, ctx.Err())...)
			case <-limiter.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if err := w.jobCallback(arg); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
