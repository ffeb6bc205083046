package tag

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrDuplicateTag = errors.New("duplicate tag kind")
	ErrInvalidKind  = errors.New("invalid tag kind")
)

// Holder is anything that exposes attached tags by kind.
type Holder interface {
	Tag(k Kind) (Tag, bool)
}

// Set holds the tags attached to one element, at most one per Kind.
// The zero value is an empty set. A Set is never mutated after construction.
type Set struct {
	tags map[Kind]Tag
}

// NewSet collects tags into a Set, rejecting nil tags, invalid kinds and
// duplicates.
func NewSet(tags ...Tag) (Set, error) {
	s := Set{tags: make(map[Kind]Tag, len(tags))}
	for _, t := range tags {
		if err := s.add(t); err != nil {
			return Set{}, err
		}
	}

	return s, nil
}

// MustSet is like NewSet but panics on error. Intended for literals.
func MustSet(tags ...Tag) Set {
	s, err := NewSet(tags...)
	if err != nil {
		panic(err)
	}

	return s
}

func (s *Set) add(t Tag) error {
	if t == nil {
		return fmt.Errorf("nil tag: %w", ErrInvalidKind)
	}

	k := t.Kind()
	if !k.IsValid() {
		return fmt.Errorf("%s: %w", k, ErrInvalidKind)
	}

	if _, ok := s.tags[k]; ok {
		return fmt.Errorf("%s: %w", k, ErrDuplicateTag)
	}

	s.tags[k] = t

	return nil
}

// With returns a copy of s with t added.
func (s Set) With(t Tag) (Set, error) {
	out := Set{tags: make(map[Kind]Tag, len(s.tags)+1)}
	for k, v := range s.tags {
		out.tags[k] = v
	}

	if err := out.add(t); err != nil {
		return Set{}, err
	}

	return out, nil
}

// Tag returns the tag of kind k, if present.
func (s Set) Tag(k Kind) (Tag, bool) {
	t, ok := s.tags[k]
	return t, ok
}

// HasTag reports whether a tag of kind k is present.
func (s Set) HasTag(k Kind) bool {
	_, ok := s.tags[k]
	return ok
}

// Len returns the number of tags in the set.
func (s Set) Len() int {
	return len(s.tags)
}

// Kinds returns the kinds present, in ascending order.
func (s Set) Kinds() []Kind {
	kinds := make([]Kind, 0, len(s.tags))
	for k := range s.tags {
		kinds = append(kinds, k)
	}

	slices.Sort(kinds)

	return kinds
}

// Find returns the tag of type T held by h.
func Find[T Tag](h Holder) (T, bool) {
	var zero T

	t, ok := h.Tag(zero.Kind())
	if !ok {
		return zero, false
	}

	v, ok := t.(T)

	return v, ok
}

// Has reports whether h holds a tag of type T.
func Has[T Tag](h Holder) bool {
	_, ok := Find[T](h)
	return ok
}
