package databind

// Visibility is the current minimum access level for auto-detection.
type Visibility int

const (
	VisibilityDefault Visibility = iota
	VisibilityAny
	VisibilityNonPrivate
	VisibilityProtectedAndPublic
	VisibilityPublicOnly
	VisibilityNone
)

var visibilityNames = [...]string{"DEFAULT", "ANY", "NON_PRIVATE", "PROTECTED_AND_PUBLIC", "PUBLIC_ONLY", "NONE"}

func (v Visibility) String() string {
	if v < 0 || int(v) >= len(visibilityNames) {
		return "DEFAULT"
	}

	return visibilityNames[v]
}

// VisibilityOf resolves a Visibility by its constant name.
func VisibilityOf(name string) (Visibility, bool) {
	for i, n := range visibilityNames {
		if n == name {
			return Visibility(i), true
		}
	}

	return VisibilityDefault, false
}

// AutoDetectAnnotation is the accessor shape of the current auto-detect
// annotation, as consumed by VisibilityChecker.With.
type AutoDetectAnnotation interface {
	GetterVisibility() Visibility
	IsGetterVisibility() Visibility
	SetterVisibility() Visibility
	CreatorVisibility() Visibility
	FieldVisibility() Visibility
}

// VisibilityChecker holds the effective minimum visibility per accessor kind.
type VisibilityChecker struct {
	Getter   Visibility
	IsGetter Visibility
	Setter   Visibility
	Creator  Visibility
	Field    Visibility
}

// DefaultVisibilityChecker returns the engine defaults: public getters and
// is-getters, setters and creators of any visibility, public fields.
func DefaultVisibilityChecker() VisibilityChecker {
	return VisibilityChecker{
		Getter:   VisibilityPublicOnly,
		IsGetter: VisibilityPublicOnly,
		Setter:   VisibilityAny,
		Creator:  VisibilityAny,
		Field:    VisibilityPublicOnly,
	}
}

// With merges ann over c. Values equal to VisibilityDefault keep c's setting.
func (c VisibilityChecker) With(ann AutoDetectAnnotation) VisibilityChecker {
	if ann == nil {
		return c
	}

	return VisibilityChecker{
		Getter:   pick(ann.GetterVisibility(), c.Getter),
		IsGetter: pick(ann.IsGetterVisibility(), c.IsGetter),
		Setter:   pick(ann.SetterVisibility(), c.Setter),
		Creator:  pick(ann.CreatorVisibility(), c.Creator),
		Field:    pick(ann.FieldVisibility(), c.Field),
	}
}

func pick(v, def Visibility) Visibility {
	if v == VisibilityDefault {
		return def
	}

	return v
}
