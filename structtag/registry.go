package structtag

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"legacy-bridge/internal/common"
	"legacy-bridge/legacy"
	"legacy-bridge/tag"
)

// Resolver resolves the type names used in tag text.
type Resolver interface {
	Lookup(name string) (reflect.Type, error)
}

// Registry maps the type names used in tag text to types. It is filled
// during setup and read concurrently afterwards.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

var _ Resolver = (*Registry)(nil)

// NewRegistry returns a Registry knowing the sentinel types NoClass,
// NoneSerializer, NoneDeserializer and NoneKeyDeserializer.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]reflect.Type)}

	for _, t := range []reflect.Type{
		tag.NoClassType,
		legacy.NoneSerializerType,
		legacy.NoneDeserializerType,
		legacy.NoneKeyDeserializerType,
	} {
		r.types[t.Name()] = t
	}

	return r
}

// Register binds name to t. Rebinding a name to a different type fails.
func (r *Registry) Register(name string, t reflect.Type) error {
	if name == "" || t == nil {
		return fmt.Errorf("register %q: %w", name, ErrInvalidValue)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.types[name]; ok && prev != t {
		return fmt.Errorf("register %q: already bound to %s: %w", name, prev, ErrInvalidValue)
	}

	r.types[name] = t

	return nil
}

// Add registers named types under their bare name ("Person") and their
// package-qualified name ("model.Person"). Pointer types register their
// element type.
func (r *Registry) Add(types ...reflect.Type) error {
	for _, t := range types {
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}

		if t == nil || t.Name() == "" {
			return fmt.Errorf("add %v: unnamed type: %w", t, ErrInvalidValue)
		}

		if err := r.Register(t.Name(), t); err != nil {
			return err
		}

		if alias := common.PkgAlias(t.PkgPath()); alias != "" {
			if err := r.Register(alias+"."+t.Name(), t); err != nil {
				return err
			}
		}
	}

	return nil
}

// RegisterType adds T to r.
func RegisterType[T any](r *Registry) error {
	return r.Add(reflect.TypeFor[T]())
}

// Lookup returns the type bound to name.
func (r *Registry) Lookup(name string) (reflect.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownType)
	}

	return t, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}

	slices.Sort(names)

	return names
}
