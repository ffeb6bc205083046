package databind

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnknownConstant is returned when a constant name has no current equivalent.
var ErrUnknownConstant = errors.New("no equivalent constant")

// Include is the current property inclusion criteria.
type Include int

const (
	IncludeAlways Include = iota
	IncludeNonNull
	IncludeNonAbsent
	IncludeNonDefault
	IncludeNonEmpty
	IncludeUseDefaults
)

var includeNames = [...]string{"ALWAYS", "NON_NULL", "NON_ABSENT", "NON_DEFAULT", "NON_EMPTY", "USE_DEFAULTS"}

func (i Include) String() string {
	if i < 0 || int(i) >= len(includeNames) {
		return fmt.Sprintf("Include(%d)", int(i))
	}

	return includeNames[i]
}

// IncludeOf resolves an Include by its constant name.
func IncludeOf(name string) (Include, error) {
	for i, n := range includeNames {
		if n == name {
			return Include(i), nil
		}
	}

	return 0, fmt.Errorf("include %q: %w", name, ErrUnknownConstant)
}

// Typing is the current static/dynamic typing mode.
type Typing int

const (
	TypingDynamic Typing = iota
	TypingStatic
	TypingDefault
)

var typingNames = [...]string{"DYNAMIC", "STATIC", "DEFAULT_TYPING"}

func (t Typing) String() string {
	if t < 0 || int(t) >= len(typingNames) {
		return fmt.Sprintf("Typing(%d)", int(t))
	}

	return typingNames[t]
}

// TypingOf resolves a Typing by its constant name.
func TypingOf(name string) (Typing, error) {
	for i, n := range typingNames {
		if n == name {
			return Typing(i), nil
		}
	}

	return 0, fmt.Errorf("typing %q: %w", name, ErrUnknownConstant)
}

// ReferenceKind distinguishes the two sides of a managed reference.
type ReferenceKind int

const (
	ReferenceManaged ReferenceKind = iota
	ReferenceBack
)

func (k ReferenceKind) String() string {
	if k == ReferenceBack {
		return "BACK_REFERENCE"
	}

	return "MANAGED_REFERENCE"
}

// ReferenceProperty describes the reference role of a member.
type ReferenceProperty struct {
	Kind ReferenceKind
	Name string
}

// Managed returns the forward side of the named reference.
func Managed(name string) ReferenceProperty {
	return ReferenceProperty{Kind: ReferenceManaged, Name: name}
}

// Back returns the back side of the named reference.
func Back(name string) ReferenceProperty {
	return ReferenceProperty{Kind: ReferenceBack, Name: name}
}

// IsManagedReference reports whether r is the forward side.
func (r ReferenceProperty) IsManagedReference() bool { return r.Kind == ReferenceManaged }

// IsBackReference reports whether r is the back side.
func (r ReferenceProperty) IsBackReference() bool { return r.Kind == ReferenceBack }

// NamedType is a subtype registration: a type plus its discriminator name.
type NamedType struct {
	Type reflect.Type
	Name string
}

// HasName reports whether a discriminator name was declared.
func (n NamedType) HasName() bool { return n.Name != "" }

// Format is a formatting hint for a member or class.
type Format struct {
	Pattern  string
	Shape    string
	Locale   string
	TimeZone string
}

// ObjectIDInfo describes object identity handling of a class or property.
type ObjectIDInfo struct {
	PropertyName  PropertyName
	Generator     reflect.Type
	Scope         reflect.Type
	AlwaysAsID    bool
	FirstAsID     bool
	ResolverClass reflect.Type
}

// BuilderConfig configures builder-based deserialization.
type BuilderConfig struct {
	BuildMethodName string
	WithPrefix      string
}
