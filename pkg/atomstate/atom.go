// Package atomstate provides a thread-safe observable value container.
//
// An Atom is a single mutable slot holding a value of any copyable type.
// Multiple goroutines read it with Get and replace it with Set or Update;
// interested parties register change listeners with Subscribe and receive
// every accepted write. Writes that leave the value unchanged are suppressed
// and never reach listeners.
//
// Common use cases:
//   - Shared counters and gauges
//   - Configuration snapshots with push-based reload
//   - Cache entries observed by several subsystems
//
// Design Influences:
//   - Clojure atoms (a single identity mutated with swap!/reset!)
//   - RxJS BehaviorSubject (current value plus change stream)
//
// Notification runs synchronously on the writing goroutine, outside the
// atom's lock, against a point-in-time snapshot of the listener registry.
// Listeners may therefore call back into the same atom freely; such calls
// only affect future notifications.
package atomstate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"weak"

	"github.com/google/uuid"

	"github.com/randalmurphal/atomstate/pkg/atomstate/observability"
)

// Listener receives the new value after every accepted (non-suppressed)
// write. A non-nil error or a panic counts as a listener failure; failures
// are isolated per listener and routed to the atom's error handler without
// interrupting the rest of the notification pass.
type Listener[T any] func(value T) error

// ErrorHandler receives listener failures as *ListenerError values.
type ErrorHandler func(err error)

// Atom is a shared mutable slot of type T with change notification.
//
// A single reader/writer lock guards the value and the listener registry as
// one unit: Get takes it shared, Set/Update/Subscribe take it exclusive for
// the minimal critical section and release it before any listener runs.
//
// The zero value is not usable; construct atoms with New.
type Atom[T any] struct {
	id   string
	name string

	equal   func(a, b T) bool
	onError ErrorHandler
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager

	mu        sync.RWMutex
	value     T
	listeners map[uint64]Listener[T]
	nextID    uint64
}

// New creates an atom holding initial.
//
// With no options the atom compares values for change suppression using the
// Equal method when T implements Equaler[T], or == when T is comparable;
// listener failures are logged through slog.Default().
func New[T any](initial T, opts ...Option[T]) *Atom[T] {
	cfg := defaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Atom[T]{
		id:        fmt.Sprintf("atom-%s", uuid.New().String()[:8]),
		name:      cfg.name,
		equal:     cfg.equal,
		onError:   cfg.onError,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
		spans:     cfg.spans,
		value:     initial,
		listeners: make(map[uint64]Listener[T]),
	}
	if !cfg.equalSet {
		a.equal = equalFunc[T]()
	}
	if a.name == "" {
		a.name = a.id
	}
	return a
}

// Get returns a copy of the current value. Concurrent readers proceed in
// parallel with each other; only writers block them.
func (a *Atom[T]) Get() T {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.value
}

// Set replaces the current value and notifies listeners with the new value.
// The write is suppressed entirely, with no mutation and no notification,
// when the new value compares equal to the current one.
func (a *Atom[T]) Set(value T) {
	a.commit(func(T) T { return value })
}

// Update computes the next value from the current one and applies it with
// the same suppression and notification behavior as Set.
//
// The updater runs while the write lock is held: it must not call back into
// the same atom (that would deadlock) and should do nothing beyond producing
// the next value. If the updater panics, the panic propagates to the caller
// and the stored value is unchanged.
func (a *Atom[T]) Update(updater func(current T) T) {
	a.commit(updater)
}

// Subscribe registers fn and returns the handle responsible for removing it.
// fn fires on every accepted change after registration completes; a listener
// added concurrently with an in-flight write may miss that one notification
// but sees all subsequent ones.
//
// Listener ids come from a strictly increasing counter and are never reused
// for the lifetime of the atom. fn must be non-nil.
func (a *Atom[T]) Subscribe(fn Listener[T]) *Subscription[T] {
	if fn == nil {
		panic("atomstate: nil listener")
	}

	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	count := len(a.listeners)
	a.mu.Unlock()

	a.metrics.RecordSubscription(context.Background(), a.name, 1)
	observability.LogSubscribe(a.logger, a.name, id, count)

	return &Subscription[T]{owner: weak.Make(a), id: id}
}

// Listeners returns the number of currently registered listeners.
func (a *Atom[T]) Listeners() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.listeners)
}

// Name returns the atom's display name: the WithName value, or the generated
// instance id.
func (a *Atom[T]) Name() string {
	return a.name
}

// commit runs the shared write path for Set and Update.
func (a *Atom[T]) commit(updater func(T) T) {
	snapshot, next, accepted := a.store(updater)
	a.metrics.RecordWrite(context.Background(), a.name, !accepted)
	if !accepted {
		observability.LogSuppressed(a.logger, a.name)
		return
	}
	observability.LogWrite(a.logger, a.name, len(snapshot))
	a.notify(snapshot, next)
}

// store computes and applies the next value under the write lock, returning
// the listener snapshot and new value when the write is accepted. The
// deferred unlock keeps the atom usable if the updater panics.
func (a *Atom[T]) store(updater func(T) T) (snapshot map[uint64]Listener[T], next T, accepted bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	next = updater(a.value)
	if a.equal != nil && a.equal(a.value, next) {
		return nil, next, false
	}

	a.value = next
	snapshot = make(map[uint64]Listener[T], len(a.listeners))
	for id, fn := range a.listeners {
		snapshot[id] = fn
	}
	return snapshot, next, true
}

// removeListener is called by Subscription handles. Removing an id that is
// already gone is a no-op.
func (a *Atom[T]) removeListener(id uint64) {
	a.mu.Lock()
	_, existed := a.listeners[id]
	delete(a.listeners, id)
	count := len(a.listeners)
	a.mu.Unlock()

	if existed {
		a.metrics.RecordSubscription(context.Background(), a.name, -1)
		observability.LogUnsubscribe(a.logger, a.name, id, count)
	}
}
