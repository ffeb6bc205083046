package databind

// PropertyName is a resolved property name.
//
// UseDefault is a distinguished value meaning "use the engine's default
// name"; it is not the same as a name whose simple form is empty.
type PropertyName struct {
	simple     string
	namespace  string
	useDefault bool
}

// UseDefault tells the engine to fall back to its own default name.
var UseDefault = PropertyName{useDefault: true}

// NewPropertyName returns a PropertyName with the given simple name.
func NewPropertyName(simple string) PropertyName {
	return PropertyName{simple: simple}
}

// NewPropertyNameNS returns a namespaced PropertyName.
func NewPropertyNameNS(simple, namespace string) PropertyName {
	return PropertyName{simple: simple, namespace: namespace}
}

// SimpleName returns the local part of the name.
func (n PropertyName) SimpleName() string { return n.simple }

// Namespace returns the namespace, empty if none.
func (n PropertyName) Namespace() string { return n.namespace }

// IsUseDefault reports whether n is the UseDefault sentinel.
func (n PropertyName) IsUseDefault() bool { return n.useDefault }

// HasSimpleName reports whether a non-empty simple name is set.
func (n PropertyName) HasSimpleName() bool { return n.simple != "" }

func (n PropertyName) String() string {
	switch {
	case n.useDefault:
		return "<default>"
	case n.namespace != "":
		return "{" + n.namespace + "}" + n.simple
	default:
		return n.simple
	}
}
