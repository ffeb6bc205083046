package introspect

import (
	"errors"
	"fmt"
	"reflect"

	"legacy-bridge/legacy"
)

var (
	// ErrInstantiation is matched by every *InstantiationError.
	ErrInstantiation = errors.New("handler instantiation failed")

	errNotConstructible = errors.New("type has no zero-value constructor")
	errNotHandler       = errors.New("type does not implement the handler contract")
)

// InstantiationError reports that a handler type named by a tag could not be
// constructed. It is fatal to the resolution of the element.
type InstantiationError struct {
	Type  reflect.Type
	Role  string // serializer, key serializer, ...
	Cause error
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Role, TypeName(e.Type), ErrInstantiation, e.Cause)
}

func (e *InstantiationError) Unwrap() []error {
	return []error{ErrInstantiation, e.Cause}
}

// instantiate allocates a zero value of t, runs its Construct hook when it
// has one, and returns it as H. Pointer types are allocated through their
// element type. Panics raised by Construct are converted into errors.
func instantiate[H any](t reflect.Type) (h H, err error) {
	if t == nil {
		return h, errNotConstructible
	}

	var ptr reflect.Value

	switch t.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Invalid:
		return h, fmt.Errorf("%s kind %s: %w", t, t.Kind(), errNotConstructible)
	case reflect.Pointer:
		ptr = reflect.New(t.Elem())
	default:
		ptr = reflect.New(t)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("construct %s: panic: %v", t, r)
		}
	}()

	obj := ptr.Interface()
	if c, ok := obj.(legacy.Constructible); ok {
		if err := c.Construct(); err != nil {
			return h, fmt.Errorf("construct %s: %w", t, err)
		}
	}

	if v, ok := obj.(H); ok {
		return v, nil
	}

	if t.Kind() != reflect.Pointer {
		if v, ok := ptr.Elem().Interface().(H); ok {
			return v, nil
		}
	}

	return h, fmt.Errorf("%s: %w", t, errNotHandler)
}

// isNone reports whether t is absent or equal to the handler kind's sentinel.
func isNone(t, sentinel reflect.Type) bool {
	return t == nil || t == sentinel
}
