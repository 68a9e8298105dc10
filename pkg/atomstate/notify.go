package atomstate

import (
	"context"
	"fmt"

	"github.com/randalmurphal/atomstate/pkg/atomstate/observability"
)

// notify invokes every callback in the snapshot with value. The registry
// lock is not held here, so listeners are free to call Get, Set, Update,
// Subscribe, or Unsubscribe on the same atom; such calls only affect future
// notifications. Dispatch order across the snapshot is unspecified.
func (a *Atom[T]) notify(snapshot map[uint64]Listener[T], value T) {
	if len(snapshot) == 0 {
		return
	}

	ctx, span := a.spans.StartNotifySpan(context.Background(), a.name, len(snapshot))
	done := observability.TimedOperation()

	failures := 0
	for id, fn := range snapshot {
		if err := dispatch(fn, value); err != nil {
			failures++
			a.handleListenerFailure(ctx, id, err)
		}
	}

	a.metrics.RecordNotify(ctx, a.name, len(snapshot), done())

	var spanErr error
	if failures > 0 {
		spanErr = fmt.Errorf("%d of %d listeners failed", failures, len(snapshot))
	}
	a.spans.EndSpanWithError(span, spanErr)
}

// dispatch runs one listener, converting both returned errors and panics
// into a single failure result.
func dispatch[T any](fn Listener[T], value T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener panic: %v", r)
		}
	}()
	return fn(value)
}

// handleListenerFailure routes one failure to the configured handler, or to
// the atom's logger when no handler was supplied. It never propagates to the
// writer that triggered the notification.
func (a *Atom[T]) handleListenerFailure(ctx context.Context, id uint64, err error) {
	a.metrics.RecordListenerError(ctx, a.name)

	if a.onError != nil {
		a.onError(&ListenerError{Atom: a.name, ListenerID: id, Err: err})
		return
	}
	observability.LogListenerError(a.logger, a.name, id, err)
}
