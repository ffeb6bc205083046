package tag

import (
	"errors"
	"fmt"
)

// ErrUnknownConstant is returned when an enum constant name is not recognized.
var ErrUnknownConstant = errors.New("unknown enum constant")

// Enum is implemented by the enum-valued attribute types of the legacy tags.
type Enum interface {
	Name() string
	enum()
}

var (
	_ Enum = Inclusion(0)
	_ Enum = Typing(0)
	_ Enum = Visibility(0)
	_ Enum = Method(0)
)

// Inclusion is the legacy property inclusion criteria of the Serialize tag.
type Inclusion int

const (
	InclusionAlways     Inclusion = iota // always include the property
	InclusionNonNull                     // skip nil values
	InclusionNonDefault                  // skip values equal to the default
	InclusionNonEmpty                    // skip nil or empty values
)

var inclusionNames = [...]string{"ALWAYS", "NON_NULL", "NON_DEFAULT", "NON_EMPTY"}

// Name returns the declared constant name.
func (i Inclusion) Name() string {
	if i < 0 || int(i) >= len(inclusionNames) {
		return fmt.Sprintf("Inclusion(%d)", int(i))
	}

	return inclusionNames[i]
}

func (i Inclusion) String() string { return i.Name() }

func (Inclusion) enum() {}

// ParseInclusion resolves a constant name such as "NON_NULL".
func ParseInclusion(name string) (Inclusion, error) {
	for i, n := range inclusionNames {
		if n == name {
			return Inclusion(i), nil
		}
	}

	return 0, fmt.Errorf("inclusion %q: %w", name, ErrUnknownConstant)
}

// Typing is the legacy static/dynamic typing mode of the Serialize tag.
type Typing int

const (
	TypingDynamic Typing = iota
	TypingStatic
)

var typingNames = [...]string{"DYNAMIC", "STATIC"}

// Name returns the declared constant name.
func (t Typing) Name() string {
	if t < 0 || int(t) >= len(typingNames) {
		return fmt.Sprintf("Typing(%d)", int(t))
	}

	return typingNames[t]
}

func (t Typing) String() string { return t.Name() }

func (Typing) enum() {}

// ParseTyping resolves a constant name such as "STATIC".
func ParseTyping(name string) (Typing, error) {
	for i, n := range typingNames {
		if n == name {
			return Typing(i), nil
		}
	}

	return 0, fmt.Errorf("typing %q: %w", name, ErrUnknownConstant)
}

// Visibility is the legacy minimum access level used by AutoDetect.
type Visibility int

const (
	VisibilityDefault Visibility = iota // defer to the engine's defaults
	VisibilityAny
	VisibilityNonPrivate
	VisibilityProtectedAndPublic
	VisibilityPublicOnly
	VisibilityNone
)

var visibilityNames = [...]string{"DEFAULT", "ANY", "NON_PRIVATE", "PROTECTED_AND_PUBLIC", "PUBLIC_ONLY", "NONE"}

// Name returns the declared constant name.
func (v Visibility) Name() string {
	if v < 0 || int(v) >= len(visibilityNames) {
		return fmt.Sprintf("Visibility(%d)", int(v))
	}

	return visibilityNames[v]
}

func (v Visibility) String() string { return v.Name() }

func (Visibility) enum() {}

// ParseVisibility resolves a constant name such as "PUBLIC_ONLY".
func ParseVisibility(name string) (Visibility, error) {
	for i, n := range visibilityNames {
		if n == name {
			return Visibility(i), nil
		}
	}

	return 0, fmt.Errorf("visibility %q: %w", name, ErrUnknownConstant)
}

// Method is a legacy accessor category listed by AutoDetect.
type Method int

const (
	MethodAll Method = iota
	MethodGetter
	MethodIsGetter
	MethodSetter
	MethodCreator
	MethodField
	MethodNone
)

var methodNames = [...]string{"ALL", "GETTER", "IS_GETTER", "SETTER", "CREATOR", "FIELD", "NONE"}

// Name returns the declared constant name.
func (m Method) Name() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

func (m Method) String() string { return m.Name() }

func (Method) enum() {}

// ParseMethod resolves a constant name such as "GETTER".
func ParseMethod(name string) (Method, error) {
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("method %q: %w", name, ErrUnknownConstant)
}
