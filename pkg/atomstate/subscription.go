package atomstate

import (
	"sync/atomic"
	"weak"
)

// Subscription is the handle for one active listener registration. Exactly
// one authoritative handle exists per registration; handles are only
// produced by Atom.Subscribe.
//
// The handle holds a weak reference to its atom, so an otherwise-unreferenced
// atom can be collected while subscriptions to it still exist. Every
// operation on such an orphaned handle is a safe no-op.
type Subscription[T any] struct {
	owner weak.Pointer[Atom[T]]
	id    uint64
	done  atomic.Bool
}

// Unsubscribe removes the listener registration. It is idempotent: the first
// call wins and every later call does nothing. Callers typically defer it
// right after Subscribe:
//
//	sub := atom.Subscribe(onChange)
//	defer sub.Unsubscribe()
func (s *Subscription[T]) Unsubscribe() {
	if s == nil || !s.done.CompareAndSwap(false, true) {
		return
	}
	if a := s.owner.Value(); a != nil {
		a.removeListener(s.id)
	}
}

// Active reports whether this handle still holds a live registration: it has
// not been unsubscribed and the owning atom is still reachable.
func (s *Subscription[T]) Active() bool {
	if s == nil || s.done.Load() {
		return false
	}
	return s.owner.Value() != nil
}
