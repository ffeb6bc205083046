package structtag

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"go.uber.org/zap"

	"legacy-bridge/introspect"
	"legacy-bridge/tag"
)

// Type is the introspection view of one Go type.
type Type struct {
	Class   *introspect.Class
	Fields  []*introspect.Field
	Methods []*introspect.Method
}

// Field returns the field with the given Go name, nil if absent.
func (t *Type) Field(name string) *introspect.Field {
	i := slices.IndexFunc(t.Fields, func(f *introspect.Field) bool { return f.Name() == name })
	if i < 0 {
		return nil
	}

	return t.Fields[i]
}

// Method returns the method with the given Go name, nil if absent.
func (t *Type) Method(name string) *introspect.Method {
	i := slices.IndexFunc(t.Methods, func(m *introspect.Method) bool { return m.Name() == name })
	if i < 0 {
		return nil
	}

	return t.Methods[i]
}

// Source describes Go types as introspection elements. Mix-ins are applied
// during setup; Describe is safe for concurrent use afterwards.
type Source struct {
	config Config
	reg    *Registry
	logger *zap.Logger
	mixins map[reflect.Type]TypeMixin
}

// NewSource creates a new Source resolving type names through reg.
func NewSource(reg *Registry, config Config) *Source {
	if reg == nil {
		reg = NewRegistry()
	}

	if config.TagKey == "" {
		config.TagKey = DefaultTagKey
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Source{
		config: config,
		reg:    reg,
		logger: logger.Named("structtag"),
		mixins: make(map[reflect.Type]TypeMixin),
	}
}

// Registry returns the registry the source resolves names with.
func (s *Source) Registry() *Registry { return s.reg }

// ApplyMixins binds every type mix-in of m to its registered type.
func (s *Source) ApplyMixins(m *Mixins) error {
	for _, tm := range m.Types {
		t, err := s.reg.Lookup(tm.Type)
		if err != nil {
			return fmt.Errorf("mix-in: %w", err)
		}

		if _, dup := s.mixins[t]; dup {
			return fmt.Errorf("mix-in %s: duplicate type: %w", tm.Type, ErrInvalidValue)
		}

		s.mixins[t] = tm
	}

	s.logger.Debug("applied mix-ins", zap.Int("types", len(m.Types)))

	return nil
}

// Describe builds the class, field and method elements of t. Pointer types
// describe their element type; methods are those of the pointer method set.
func (s *Source) Describe(t reflect.Type) (*Type, error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil {
		return nil, fmt.Errorf("describe: nil type: %w", ErrInvalidValue)
	}

	mixin := s.mixins[t]

	classTags, err := s.classTags(t, mixin)
	if err != nil {
		return nil, err
	}

	class := introspect.NewClass(t, classTags)
	out := &Type{Class: class}

	if out.Fields, err = s.fields(class, mixin); err != nil {
		return nil, err
	}

	if out.Methods, err = s.methods(class, mixin); err != nil {
		return nil, err
	}

	s.logger.Debug("described type",
		zap.String("type", introspect.TypeName(t)),
		zap.Int("fields", len(out.Fields)),
		zap.Int("methods", len(out.Methods)),
	)

	return out, nil
}

// classTags collects the tags of blank "_" fields, overridden by the
// mix-in's class tags.
func (s *Source) classTags(t reflect.Type, mixin TypeMixin) (tag.Set, error) {
	var texts []string

	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			if f := t.Field(i); f.Name == "_" {
				texts = append(texts, f.Tag.Get(s.config.TagKey))
			}
		}
	}

	set, err := s.merge(strings.Join(texts, ";"), mixin.Tags)
	if err != nil {
		return tag.Set{}, fmt.Errorf("%s: %w", t.Name(), err)
	}

	return set, nil
}

func (s *Source) fields(class *introspect.Class, mixin TypeMixin) ([]*introspect.Field, error) {
	t := class.RawType()
	if t.Kind() != reflect.Struct {
		if len(mixin.Fields) > 0 {
			return nil, fmt.Errorf("%s: fields on non-struct type: %w", t.Name(), ErrUnknownMember)
		}

		return nil, nil
	}

	var fields []*introspect.Field

	for i := range t.NumField() {
		f := t.Field(i)
		if f.Name == "_" {
			continue
		}

		text, tagged := f.Tag.Lookup(s.config.TagKey)
		over, mixed := mixin.Fields[f.Name]

		if !f.IsExported() && !tagged && !mixed && !s.config.IncludeUnexported {
			continue
		}

		if text == "-" {
			text = "ignore"
		}

		set, err := s.merge(text, over)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), f.Name, err)
		}

		fields = append(fields, introspect.NewField(class, f.Name, f.Type, set))
	}

	for name := range mixin.Fields {
		if _, ok := t.FieldByName(name); !ok {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), name, ErrUnknownMember)
		}
	}

	return fields, nil
}

func (s *Source) methods(class *introspect.Class, mixin TypeMixin) ([]*introspect.Method, error) {
	t := class.RawType()

	set := t
	if t.Kind() != reflect.Interface {
		set = reflect.PointerTo(t)
	}

	// Interface method types carry no receiver.
	first := 1
	if t.Kind() == reflect.Interface {
		first = 0
	}

	var methods []*introspect.Method

	for i := range set.NumMethod() {
		m := set.Method(i)
		mm := mixin.Methods[m.Name]

		if len(mm.Params) > m.Type.NumIn()-first {
			return nil, fmt.Errorf("%s.%s: %d parameter mix-ins for %d parameters: %w",
				t.Name(), m.Name, len(mm.Params), m.Type.NumIn()-first, ErrInvalidValue)
		}

		var params []*introspect.Parameter

		for j := first; j < m.Type.NumIn(); j++ {
			var pm ParamMixin
			if k := j - first; k < len(mm.Params) {
				pm = mm.Params[k]
			}

			ptags, err := s.merge("", pm.Tags)
			if err != nil {
				return nil, fmt.Errorf("%s.%s[%d]: %w", t.Name(), m.Name, j-first, err)
			}

			params = append(params, introspect.NewParameter(pm.Name, m.Type.In(j), ptags))
		}

		mtags, err := s.merge("", mm.Tags)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), m.Name, err)
		}

		var result reflect.Type
		if m.Type.NumOut() > 0 {
			result = m.Type.Out(0)
		}

		methods = append(methods, introspect.NewMethod(class, m.Name, result, params, mtags))
	}

	for name := range mixin.Methods {
		if _, ok := set.MethodByName(name); !ok {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), name, ErrUnknownMember)
		}
	}

	return methods, nil
}

// merge parses base and over and replaces base tags by over tags of the
// same kind.
func (s *Source) merge(base, over string) (tag.Set, error) {
	baseTags, err := Parse(base, s.reg)
	if err != nil {
		return tag.Set{}, err
	}

	overTags, err := Parse(over, s.reg)
	if err != nil {
		return tag.Set{}, err
	}

	tags := slices.DeleteFunc(baseTags, func(b tag.Tag) bool {
		return slices.ContainsFunc(overTags, func(o tag.Tag) bool { return o.Kind() == b.Kind() })
	})

	return tag.NewSet(append(tags, overTags...)...)
}
