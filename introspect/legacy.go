package introspect

import (
	"reflect"

	"go.uber.org/zap"

	"legacy-bridge/databind"
	"legacy-bridge/legacy"
	"legacy-bridge/tag"
	"legacy-bridge/wrapper"
)

// LegacyIntrospector resolves decisions from the legacy tag vocabulary.
//
// Handler finders return instances, not types: every legacy handler is
// constructed here and wrapped, so the engine never asks its own handler
// instantiator for them. Decisions the legacy vocabulary cannot express are
// left to the embedded NopIntrospector.
type LegacyIntrospector struct {
	NopIntrospector

	logger *zap.Logger
}

var _ AnnotationIntrospector = (*LegacyIntrospector)(nil)

// Option configures a LegacyIntrospector.
type Option func(*LegacyIntrospector)

// WithLogger sets the logger used on the handler instantiation path.
func WithLogger(l *zap.Logger) Option {
	return func(li *LegacyIntrospector) {
		if l != nil {
			li.logger = l
		}
	}
}

// New returns a LegacyIntrospector.
func New(opts ...Option) *LegacyIntrospector {
	li := &LegacyIntrospector{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(li)
	}

	li.logger = li.logger.Named("introspect")

	return li
}

// ---- class decisions ----

// FindAutoDetectVisibility merges the class's AutoDetect tag, unmodified,
// over checker.
func (li *LegacyIntrospector) FindAutoDetectVisibility(c *Class, checker databind.VisibilityChecker) databind.VisibilityChecker {
	ann, ok := tag.Find[tag.AutoDetect](c)
	if !ok {
		return checker
	}

	return checker.With(wrapper.AutoDetect(ann))
}

// FindIgnoreUnknownProperties reports IgnoreProperties.IgnoreUnknown.
func (li *LegacyIntrospector) FindIgnoreUnknownProperties(c *Class) Opinion[bool] {
	if ann, ok := tag.Find[tag.IgnoreProperties](c); ok {
		return Definite(ann.IgnoreUnknown)
	}

	return NoOpinion[bool]()
}

// FindPropertiesToIgnore returns the IgnoreProperties names.
func (li *LegacyIntrospector) FindPropertiesToIgnore(a Annotated) Opinion[[]string] {
	if ann, ok := tag.Find[tag.IgnoreProperties](a); ok {
		return Definite(ann.Value)
	}

	return NoOpinion[[]string]()
}

// FindRootName returns the RootName value as a simple property name.
func (li *LegacyIntrospector) FindRootName(c *Class) Opinion[databind.PropertyName] {
	if ann, ok := tag.Find[tag.RootName](c); ok {
		return Definite(databind.NewPropertyName(ann.Value))
	}

	return NoOpinion[databind.PropertyName]()
}

// FindSerializationPropertyOrder returns the explicit PropertyOrder names.
func (li *LegacyIntrospector) FindSerializationPropertyOrder(c *Class) Opinion[[]string] {
	if ann, ok := tag.Find[tag.PropertyOrder](c); ok {
		return Definite(ann.Value)
	}

	return NoOpinion[[]string]()
}

// FindSerializationSortAlphabetically reports PropertyOrder.Alphabetic.
func (li *LegacyIntrospector) FindSerializationSortAlphabetically(c *Class) Opinion[bool] {
	if ann, ok := tag.Find[tag.PropertyOrder](c); ok {
		return Definite(ann.Alphabetic)
	}

	return NoOpinion[bool]()
}

// IsIgnorableType reports the IgnoreType value.
func (li *LegacyIntrospector) IsIgnorableType(c *Class) Opinion[bool] {
	if ann, ok := tag.Find[tag.IgnoreType](c); ok {
		return Definite(ann.Value)
	}

	return NoOpinion[bool]()
}

// FindTypeName returns the TypeName value, which may be empty.
func (li *LegacyIntrospector) FindTypeName(c *Class) Opinion[string] {
	if ann, ok := tag.Find[tag.TypeName](c); ok {
		return Definite(ann.Value)
	}

	return NoOpinion[string]()
}

// FindFilterID returns the filter id. An empty id counts as no tag, so an
// outer layer can still supply one.
func (li *LegacyIntrospector) FindFilterID(c *Class) Opinion[string] {
	if ann, ok := tag.Find[tag.Filter](c); ok && ann.Value != "" {
		return Definite(ann.Value)
	}

	return NoOpinion[string]()
}

// FindSubtypes returns the declared subtypes in declaration order, or nil
// when there is no SubTypes tag.
func (li *LegacyIntrospector) FindSubtypes(a Annotated) []databind.NamedType {
	ann, ok := tag.Find[tag.SubTypes](a)
	if !ok {
		return nil
	}

	result := make([]databind.NamedType, 0, len(ann.Value))
	for _, st := range ann.Value {
		result = append(result, databind.NamedType{Type: st.Value, Name: st.Name})
	}

	return result
}

// ---- member decisions ----

// FindReferenceType returns a managed reference, or failing that a back
// reference, with its declared name.
func (li *LegacyIntrospector) FindReferenceType(m Member) Opinion[databind.ReferenceProperty] {
	if ann, ok := tag.Find[tag.ManagedReference](m); ok {
		return Definite(databind.Managed(ann.Value))
	}

	if ann, ok := tag.Find[tag.BackReference](m); ok {
		return Definite(databind.Back(ann.Value))
	}

	return NoOpinion[databind.ReferenceProperty]()
}

// HasIgnoreMarker reports the Ignore tag's value. An Ignore tag with value
// false is an explicit "do not ignore"; use FindIgnoreMarker to tell it apart
// from an absent tag.
func (li *LegacyIntrospector) HasIgnoreMarker(m Member) bool {
	return li.FindIgnoreMarker(m).OrElse(false)
}

// FindIgnoreMarker returns the Ignore tag's value, or no opinion when the
// member carries no Ignore tag.
func (li *LegacyIntrospector) FindIgnoreMarker(m Member) Opinion[bool] {
	if ann, ok := tag.Find[tag.Ignore](m); ok {
		return Definite(ann.Value)
	}

	return NoOpinion[bool]()
}

// HasAnyGetterAnnotation reports an AnyGetter tag.
func (li *LegacyIntrospector) HasAnyGetterAnnotation(m *Method) bool {
	return m.HasTag(tag.KindAnyGetter)
}

// HasAnySetterAnnotation reports an AnySetter tag.
func (li *LegacyIntrospector) HasAnySetterAnnotation(m *Method) bool {
	return m.HasTag(tag.KindAnySetter)
}

// HasAsValueAnnotation reports a Value tag set to true.
func (li *LegacyIntrospector) HasAsValueAnnotation(m *Method) bool {
	ann, ok := tag.Find[tag.Value](m)
	return ok && ann.Value
}

// HasCreatorAnnotation reports a Creator tag.
func (li *LegacyIntrospector) HasCreatorAnnotation(a Annotated) bool {
	return a.HasTag(tag.KindCreator)
}

// FindInjectableValueID returns the injection id. An empty declared id is
// derived from the member: the raw type name for fields and zero-argument
// methods, the first parameter's name for methods with parameters.
func (li *LegacyIntrospector) FindInjectableValueID(m Member) Opinion[string] {
	ann, ok := tag.Find[tag.Inject](m)
	if !ok {
		return NoOpinion[string]()
	}

	if ann.Value != "" {
		return Definite(ann.Value)
	}

	meth, ok := m.(*Method)
	if !ok || meth.ParameterCount() == 0 {
		return Definite(TypeName(m.RawType()))
	}

	return Definite(meth.Parameter(0).Name())
}

// ---- serialization ----

// FindSerializationInclusion maps Serialize.Include, then WriteNullProperties,
// falling back to def.
func (li *LegacyIntrospector) FindSerializationInclusion(a Annotated, def databind.Include) databind.Include {
	if ann, ok := tag.Find[tag.Serialize](a); ok {
		if inc, err := databind.IncludeOf(ann.Include.Name()); err == nil {
			return inc
		}

		return def
	}

	if ann, ok := tag.Find[tag.WriteNullProperties](a); ok {
		if ann.Value {
			return databind.IncludeAlways
		}

		return databind.IncludeNonNull
	}

	return def
}

// FindSerializationTyping maps Serialize.Typing.
func (li *LegacyIntrospector) FindSerializationTyping(a Annotated) Opinion[databind.Typing] {
	ann, ok := tag.Find[tag.Serialize](a)
	if !ok {
		return NoOpinion[databind.Typing]()
	}

	t, err := databind.TypingOf(ann.Typing.Name())
	if err != nil {
		return NoOpinion[databind.Typing]()
	}

	return Definite(t)
}

// FindSerializationType returns the Serialize.As override.
func (li *LegacyIntrospector) FindSerializationType(a Annotated) Opinion[reflect.Type] {
	if ann, ok := tag.Find[tag.Serialize](a); ok {
		return typeOverride(ann.As)
	}

	return NoOpinion[reflect.Type]()
}

// FindSerializationKeyType returns the Serialize.KeyAs override.
func (li *LegacyIntrospector) FindSerializationKeyType(a Annotated, _ reflect.Type) Opinion[reflect.Type] {
	if ann, ok := tag.Find[tag.Serialize](a); ok {
		return typeOverride(ann.KeyAs)
	}

	return NoOpinion[reflect.Type]()
}

// FindSerializationContentType returns the Serialize.ContentAs override.
func (li *LegacyIntrospector) FindSerializationContentType(a Annotated, _ reflect.Type) Opinion[reflect.Type] {
	if ann, ok := tag.Find[tag.Serialize](a); ok {
		return typeOverride(ann.ContentAs)
	}

	return NoOpinion[reflect.Type]()
}

// FindNameForSerialization resolves the serialized name of a field or method.
// An empty name yields UseDefault.
func (li *LegacyIntrospector) FindNameForSerialization(a Annotated) Opinion[databind.PropertyName] {
	switch e := a.(type) {
	case *Field:
		return propertyName(li.FindSerializationName(e))
	case *Method:
		return propertyName(li.FindSerializationMethodName(e))
	default:
		return NoOpinion[databind.PropertyName]()
	}
}

// FindSerializationName resolves a field's serialized name. Serialize and
// View imply a property with the default name.
func (li *LegacyIntrospector) FindSerializationName(f *Field) Opinion[string] {
	if ann, ok := tag.Find[tag.Property](f); ok {
		return Definite(ann.Value)
	}

	if f.HasTag(tag.KindSerialize) || f.HasTag(tag.KindView) {
		return Definite("")
	}

	return NoOpinion[string]()
}

// FindSerializationMethodName resolves a method's serialized name; Getter is
// more specific than Property.
func (li *LegacyIntrospector) FindSerializationMethodName(m *Method) Opinion[string] {
	if ann, ok := tag.Find[tag.Getter](m); ok {
		return Definite(ann.Value)
	}

	if ann, ok := tag.Find[tag.Property](m); ok {
		return Definite(ann.Value)
	}

	if m.HasTag(tag.KindSerialize) || m.HasTag(tag.KindView) {
		return Definite("")
	}

	return NoOpinion[string]()
}

// ---- deserialization ----

// FindDeserializationType returns the Deserialize.As override.
func (li *LegacyIntrospector) FindDeserializationType(a Annotated, _ reflect.Type) Opinion[reflect.Type] {
	if ann, ok := tag.Find[tag.Deserialize](a); ok {
		return typeOverride(ann.As)
	}

	return NoOpinion[reflect.Type]()
}

// FindDeserializationKeyType returns the Deserialize.KeyAs override.
func (li *LegacyIntrospector) FindDeserializationKeyType(a Annotated, _ reflect.Type) Opinion[reflect.Type] {
	if ann, ok := tag.Find[tag.Deserialize](a); ok {
		return typeOverride(ann.KeyAs)
	}

	return NoOpinion[reflect.Type]()
}

// FindDeserializationContentType returns the Deserialize.ContentAs override.
func (li *LegacyIntrospector) FindDeserializationContentType(a Annotated, _ reflect.Type) Opinion[reflect.Type] {
	if ann, ok := tag.Find[tag.Deserialize](a); ok {
		return typeOverride(ann.ContentAs)
	}

	return NoOpinion[reflect.Type]()
}

// FindNameForDeserialization resolves the deserialized name of a field,
// method or parameter. An empty name yields UseDefault.
func (li *LegacyIntrospector) FindNameForDeserialization(a Annotated) Opinion[databind.PropertyName] {
	switch e := a.(type) {
	case *Field:
		return propertyName(li.FindDeserializationName(e))
	case *Method:
		return propertyName(li.FindDeserializationMethodName(e))
	case *Parameter:
		return propertyName(li.FindDeserializationParameterName(e))
	default:
		return NoOpinion[databind.PropertyName]()
	}
}

// FindDeserializationName resolves a field's deserialized name.
func (li *LegacyIntrospector) FindDeserializationName(f *Field) Opinion[string] {
	if ann, ok := tag.Find[tag.Property](f); ok {
		return Definite(ann.Value)
	}

	if impliesDeserializedProperty(f) {
		return Definite("")
	}

	return NoOpinion[string]()
}

// FindDeserializationMethodName resolves a method's deserialized name; Setter
// is more specific than Property.
func (li *LegacyIntrospector) FindDeserializationMethodName(m *Method) Opinion[string] {
	if ann, ok := tag.Find[tag.Setter](m); ok {
		return Definite(ann.Value)
	}

	if ann, ok := tag.Find[tag.Property](m); ok {
		return Definite(ann.Value)
	}

	if impliesDeserializedProperty(m) {
		return Definite("")
	}

	return NoOpinion[string]()
}

// FindDeserializationParameterName resolves a parameter's name from Property
// only: parameter names cannot be relied upon for a default.
func (li *LegacyIntrospector) FindDeserializationParameterName(p *Parameter) Opinion[string] {
	if p == nil {
		return NoOpinion[string]()
	}

	if ann, ok := tag.Find[tag.Property](p); ok {
		return Definite(ann.Value)
	}

	return NoOpinion[string]()
}

func impliesDeserializedProperty(a Annotated) bool {
	return a.HasTag(tag.KindDeserialize) || a.HasTag(tag.KindView) ||
		a.HasTag(tag.KindBackReference) || a.HasTag(tag.KindManagedReference)
}

// ---- handlers ----

// FindSerializer returns the Serialize.Using handler, or a raw pass-through
// serializer over the element's declared type when RawValue is enabled.
func (li *LegacyIntrospector) FindSerializer(a Annotated) (databind.Serializer, error) {
	if ann, ok := tag.Find[tag.Serialize](a); ok && !isNone(ann.Using, legacy.NoneSerializerType) {
		return li.serializer(ann.Using, "serializer")
	}

	if ann, ok := tag.Find[tag.RawValue](a); ok && ann.Value {
		return databind.NewRawSerializer(a.RawType()), nil
	}

	return nil, nil
}

// FindKeySerializer returns the Serialize.KeyUsing handler.
func (li *LegacyIntrospector) FindKeySerializer(a Annotated) (databind.Serializer, error) {
	if ann, ok := tag.Find[tag.Serialize](a); ok && !isNone(ann.KeyUsing, legacy.NoneSerializerType) {
		return li.serializer(ann.KeyUsing, "key serializer")
	}

	return nil, nil
}

// FindContentSerializer returns the Serialize.ContentUsing handler.
func (li *LegacyIntrospector) FindContentSerializer(a Annotated) (databind.Serializer, error) {
	if ann, ok := tag.Find[tag.Serialize](a); ok && !isNone(ann.ContentUsing, legacy.NoneSerializerType) {
		return li.serializer(ann.ContentUsing, "content serializer")
	}

	return nil, nil
}

// FindDeserializer returns the Deserialize.Using handler.
func (li *LegacyIntrospector) FindDeserializer(a Annotated) (databind.Deserializer, error) {
	if ann, ok := tag.Find[tag.Deserialize](a); ok && !isNone(ann.Using, legacy.NoneDeserializerType) {
		return li.deserializer(ann.Using, "deserializer")
	}

	return nil, nil
}

// FindKeyDeserializer returns the Deserialize.KeyUsing handler.
func (li *LegacyIntrospector) FindKeyDeserializer(a Annotated) (databind.KeyDeserializer, error) {
	ann, ok := tag.Find[tag.Deserialize](a)
	if !ok || isNone(ann.KeyUsing, legacy.NoneKeyDeserializerType) {
		return nil, nil
	}

	h, err := instantiate[legacy.KeyDeserializer](ann.KeyUsing)
	if err != nil {
		return nil, li.failed(ann.KeyUsing, "key deserializer", err)
	}

	li.created(ann.KeyUsing, "key deserializer")

	return wrapper.NewKeyDeserializer(h), nil
}

// FindContentDeserializer returns the Deserialize.ContentUsing handler.
func (li *LegacyIntrospector) FindContentDeserializer(a Annotated) (databind.Deserializer, error) {
	if ann, ok := tag.Find[tag.Deserialize](a); ok && !isNone(ann.ContentUsing, legacy.NoneDeserializerType) {
		return li.deserializer(ann.ContentUsing, "content deserializer")
	}

	return nil, nil
}

func (li *LegacyIntrospector) serializer(t reflect.Type, role string) (databind.Serializer, error) {
	h, err := instantiate[legacy.Serializer](t)
	if err != nil {
		return nil, li.failed(t, role, err)
	}

	li.created(t, role)

	return wrapper.NewSerializer(h), nil
}

func (li *LegacyIntrospector) deserializer(t reflect.Type, role string) (databind.Deserializer, error) {
	h, err := instantiate[legacy.Deserializer](t)
	if err != nil {
		return nil, li.failed(t, role, err)
	}

	li.created(t, role)

	return wrapper.NewDeserializer(h), nil
}

func (li *LegacyIntrospector) created(t reflect.Type, role string) {
	li.logger.Debug("wrapped legacy handler", zap.String("role", role), zap.String("type", TypeName(t)))
}

func (li *LegacyIntrospector) failed(t reflect.Type, role string, cause error) error {
	li.logger.Error("legacy handler instantiation failed",
		zap.String("role", role), zap.String("type", TypeName(t)), zap.Error(cause))

	return &InstantiationError{Type: t, Role: role, Cause: cause}
}

// ---- helpers ----

func typeOverride(t reflect.Type) Opinion[reflect.Type] {
	if tag.IsNoClass(t) {
		return NoOpinion[reflect.Type]()
	}

	return Definite(t)
}

// propertyName maps a resolved name to a PropertyName; "" means UseDefault.
func propertyName(name Opinion[string]) Opinion[databind.PropertyName] {
	n, ok := name.Get()
	if !ok {
		return NoOpinion[databind.PropertyName]()
	}

	if n == "" {
		return Definite(databind.UseDefault)
	}

	return Definite(databind.NewPropertyName(n))
}
