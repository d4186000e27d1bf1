package live

import (
	"context"
	"reflect"
	"time"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/logging"
	"golang.org/x/time/rate"
	"google.golang.org/protobuf/proto"
)

// Options tune a Watch loop.
type Options struct {
	// Limiter paces re-runs triggered by changes. Nil means no pacing.
	Limiter *rate.Limiter
	// Refresh re-runs the query on a timer even without changes, for
	// results that depend on the current time. Zero disables it.
	Refresh time.Duration
}

// NewLimiter allows perSecond re-runs with a burst of one. A non-positive
// rate yields nil (unlimited).
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

// Watch runs query, passes the result to emit, then re-runs it after every
// signal on sub (and every Refresh tick) until ctx is done. Results equal to
// the last emitted one are skipped.
//
// An error from the first query or from emit ends the watch. Later query
// errors are logged and retried on the next signal.
func Watch[T any](ctx context.Context, sub *Subscription, query func(context.Context) (T, error), emit func(T) error, opts Options) error {
	logger := logging.WithComponent("live")

	last, err := query(ctx)
	if err != nil {
		return err
	}
	if err := emit(last); err != nil {
		return err
	}

	var tick <-chan time.Time
	if opts.Refresh > 0 {
		t := time.NewTicker(opts.Refresh)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sub.C():
			if opts.Limiter != nil {
				if err := opts.Limiter.Wait(ctx); err != nil {
					return ctx.Err()
				}
			}
		case <-tick:
		}

		next, err := query(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn().Err(err).Msg("live query failed")
			continue
		}
		if same(next, last) {
			continue
		}
		if err := emit(next); err != nil {
			return err
		}
		last = next
	}
}

// same reports whether two results are equal. Protobuf messages are compared
// with proto.Equal, which ignores their internal state.
func same[T any](a, b T) bool {
	if ma, ok := any(a).(proto.Message); ok {
		if mb, ok := any(b).(proto.Message); ok {
			return proto.Equal(ma, mb)
		}
	}
	return reflect.DeepEqual(a, b)
}
