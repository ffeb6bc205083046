package introspect

import "fmt"

// Opinion is the outcome of a decision: either a definite value or no
// opinion. A definite zero value (false, "", nil slice) is still definite.
type Opinion[T any] struct {
	value    T
	definite bool
}

// Definite returns an Opinion holding v.
func Definite[T any](v T) Opinion[T] {
	return Opinion[T]{value: v, definite: true}
}

// NoOpinion returns the empty Opinion.
func NoOpinion[T any]() Opinion[T] {
	return Opinion[T]{}
}

// Get returns the value and whether it is definite.
func (o Opinion[T]) Get() (T, bool) { return o.value, o.definite }

// IsDefinite reports whether o holds a value.
func (o Opinion[T]) IsDefinite() bool { return o.definite }

// OrElse returns the value, or def when there is no opinion.
func (o Opinion[T]) OrElse(def T) T {
	if o.definite {
		return o.value
	}

	return def
}

func (o Opinion[T]) String() string {
	if !o.definite {
		return "<no opinion>"
	}

	return fmt.Sprintf("%v", o.value)
}
