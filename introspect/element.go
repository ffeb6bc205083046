package introspect

import (
	"reflect"

	"legacy-bridge/tag"
)

// Annotated is a structural element carrying legacy tags.
type Annotated interface {
	tag.Holder
	HasTag(k tag.Kind) bool
	// Name returns the element's declared name.
	Name() string
	// RawType returns the declared type: the class itself, the field type,
	// the method result type or the parameter type. It may be nil.
	RawType() reflect.Type
}

// Member is an Annotated element declared by a class.
type Member interface {
	Annotated
	DeclaringClass() *Class
}

// Class is a type under introspection.
type Class struct {
	typ  reflect.Type
	tags tag.Set
}

// NewClass returns a Class element for t.
func NewClass(t reflect.Type, tags tag.Set) *Class {
	return &Class{typ: t, tags: tags}
}

func (c *Class) Tag(k tag.Kind) (tag.Tag, bool) { return c.tags.Tag(k) }
func (c *Class) HasTag(k tag.Kind) bool         { return c.tags.HasTag(k) }
func (c *Class) RawType() reflect.Type          { return c.typ }
func (c *Class) Tags() tag.Set                  { return c.tags }

func (c *Class) Name() string {
	if c.typ == nil {
		return ""
	}

	return c.typ.Name()
}

// Field is a struct field.
type Field struct {
	class *Class
	name  string
	typ   reflect.Type
	tags  tag.Set
}

// NewField returns a Field element. class may be nil.
func NewField(class *Class, name string, t reflect.Type, tags tag.Set) *Field {
	return &Field{class: class, name: name, typ: t, tags: tags}
}

func (f *Field) Tag(k tag.Kind) (tag.Tag, bool) { return f.tags.Tag(k) }
func (f *Field) HasTag(k tag.Kind) bool         { return f.tags.HasTag(k) }
func (f *Field) Name() string                   { return f.name }
func (f *Field) RawType() reflect.Type          { return f.typ }
func (f *Field) DeclaringClass() *Class         { return f.class }
func (f *Field) Tags() tag.Set                  { return f.tags }

// Method is an accessor, mutator or factory method.
type Method struct {
	class  *Class
	name   string
	result reflect.Type
	params []*Parameter
	tags   tag.Set
}

// NewMethod returns a Method element. result is nil for methods without a
// result. class may be nil.
func NewMethod(class *Class, name string, result reflect.Type, params []*Parameter, tags tag.Set) *Method {
	m := &Method{class: class, name: name, result: result, tags: tags}
	for i, p := range params {
		p.owner = m
		p.index = i
		if p.class == nil {
			p.class = class
		}

		m.params = append(m.params, p)
	}

	return m
}

func (m *Method) Tag(k tag.Kind) (tag.Tag, bool) { return m.tags.Tag(k) }
func (m *Method) HasTag(k tag.Kind) bool         { return m.tags.HasTag(k) }
func (m *Method) Name() string                   { return m.name }
func (m *Method) RawType() reflect.Type          { return m.result }
func (m *Method) DeclaringClass() *Class         { return m.class }
func (m *Method) Tags() tag.Set                  { return m.tags }

// ParameterCount returns the number of declared parameters.
func (m *Method) ParameterCount() int { return len(m.params) }

// Parameter returns the i-th parameter.
func (m *Method) Parameter(i int) *Parameter { return m.params[i] }

// Parameter is a method, constructor or factory parameter. Its declared
// name may be empty when the source could not recover it.
type Parameter struct {
	class *Class
	owner *Method
	index int
	name  string
	typ   reflect.Type
	tags  tag.Set
}

// NewParameter returns a Parameter element; NewMethod fills in its owner
// and index.
func NewParameter(name string, t reflect.Type, tags tag.Set) *Parameter {
	return &Parameter{name: name, typ: t, tags: tags}
}

func (p *Parameter) Tag(k tag.Kind) (tag.Tag, bool) { return p.tags.Tag(k) }
func (p *Parameter) HasTag(k tag.Kind) bool         { return p.tags.HasTag(k) }
func (p *Parameter) Name() string                   { return p.name }
func (p *Parameter) RawType() reflect.Type          { return p.typ }
func (p *Parameter) DeclaringClass() *Class         { return p.class }
func (p *Parameter) Tags() tag.Set                  { return p.tags }

// Owner returns the method declaring the parameter, nil if detached.
func (p *Parameter) Owner() *Method { return p.owner }

// Index returns the parameter position within its owner.
func (p *Parameter) Index() int { return p.index }

// TypeName returns the fully-qualified name of t: import path plus type
// name for named types, the type literal otherwise.
func TypeName(t reflect.Type) string {
	switch {
	case t == nil:
		return ""
	case t.Name() != "" && t.PkgPath() != "":
		return t.PkgPath() + "." + t.Name()
	default:
		return t.String()
	}
}
