package wrapper

import (
	"reflect"
	"slices"
	"strings"

	"legacy-bridge/databind"
	"legacy-bridge/internal/common"
	"legacy-bridge/tag"
)

// Proxy reads the attributes of a legacy tag by name. Attribute names match
// the tag's field names, case-insensitively on the first letter, so both
// "GetterVisibility" and "getterVisibility" resolve.
type Proxy struct {
	tag tag.Tag
	v   reflect.Value
}

// Of returns a Proxy over t.
func Of(t tag.Tag) *Proxy {
	v := reflect.ValueOf(t)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}

	return &Proxy{tag: t, v: v}
}

// Kind returns the proxied tag's kind.
func (p *Proxy) Kind() tag.Kind { return p.tag.Kind() }

// Tag returns the proxied tag.
func (p *Proxy) Tag() tag.Tag { return p.tag }

// Names returns the attribute names, in declaration order.
func (p *Proxy) Names() []string {
	if p.v.Kind() != reflect.Struct {
		return nil
	}

	t := p.v.Type()
	names := make([]string, 0, t.NumField())

	for i := range t.NumField() {
		if t.Field(i).IsExported() {
			names = append(names, t.Field(i).Name)
		}
	}

	return names
}

// Attr returns the attribute value.
func (p *Proxy) Attr(name string) (any, bool) {
	if p.v.Kind() != reflect.Struct || name == "" {
		return nil, false
	}

	f := p.v.FieldByName(common.UpperFirst(name))
	if !f.IsValid() || !f.CanInterface() {
		return nil, false
	}

	return f.Interface(), true
}

// EnumName returns the declared constant name of an enum-valued attribute.
// Attributes of any other type, including type references, report false.
func (p *Proxy) EnumName(name string) (string, bool) {
	v, ok := p.Attr(name)
	if !ok {
		return "", false
	}

	e, ok := v.(tag.Enum)
	if !ok {
		return "", false
	}

	return e.Name(), true
}

// AutoDetect presents a legacy AutoDetect tag as a current
// databind.AutoDetectAnnotation. Visibilities translate by constant name.
// Accessor categories not enabled by the tag's Value list report
// VisibilityNone; an empty list enables every category.
func AutoDetect(ann tag.AutoDetect) databind.AutoDetectAnnotation {
	return &autoDetect{proxy: Of(ann), enabled: ann.Value}
}

type autoDetect struct {
	proxy   *Proxy
	enabled []tag.Method
}

func (a *autoDetect) GetterVisibility() databind.Visibility {
	return a.visibility("getterVisibility", tag.MethodGetter)
}

func (a *autoDetect) IsGetterVisibility() databind.Visibility {
	return a.visibility("isGetterVisibility", tag.MethodIsGetter)
}

func (a *autoDetect) SetterVisibility() databind.Visibility {
	return a.visibility("setterVisibility", tag.MethodSetter)
}

func (a *autoDetect) CreatorVisibility() databind.Visibility {
	return a.visibility("creatorVisibility", tag.MethodCreator)
}

func (a *autoDetect) FieldVisibility() databind.Visibility {
	return a.visibility("fieldVisibility", tag.MethodField)
}

func (a *autoDetect) visibility(attr string, m tag.Method) databind.Visibility {
	if !a.isEnabled(m) {
		return databind.VisibilityNone
	}

	name, ok := a.proxy.EnumName(attr)
	if !ok {
		return databind.VisibilityDefault
	}

	v, _ := databind.VisibilityOf(strings.ToUpper(name))

	return v
}

func (a *autoDetect) isEnabled(m tag.Method) bool {
	if len(a.enabled) == 0 || slices.Contains(a.enabled, tag.MethodAll) {
		return true
	}

	if slices.Contains(a.enabled, tag.MethodNone) {
		return false
	}

	return slices.Contains(a.enabled, m)
}
