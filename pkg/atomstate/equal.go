package atomstate

import "reflect"

// Equaler is the optional equality capability a value type can provide for
// change suppression. When T implements Equaler[T], the atom prefers Equal
// over the built-in == comparison.
type Equaler[T any] interface {
	Equal(other T) bool
}

// equalFunc resolves the suppression comparison for T: the Equal method if
// implemented, == for comparable types, nil (no suppression) otherwise.
func equalFunc[T any]() func(a, b T) bool {
	var zero T
	if _, ok := any(zero).(Equaler[T]); ok {
		return func(a, b T) bool {
			return any(a).(Equaler[T]).Equal(b)
		}
	}

	// Comparable interface kinds can still hold incomparable dynamic values,
	// which would make == panic at runtime.
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface || !t.Comparable() {
		return nil
	}
	return func(a, b T) bool {
		return any(a) == any(b)
	}
}
