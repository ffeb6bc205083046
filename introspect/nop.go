package introspect

import (
	"fmt"
	"reflect"

	"legacy-bridge/databind"
)

// AnnotationIntrospector is the decision contract the engine consumes.
//
// Methods returning Opinion leave the default to the caller when there is no
// opinion. Handler finders return a nil handler for "none" and a non-nil
// error only when a declared handler could not be constructed.
type AnnotationIntrospector interface {
	// class decisions
	FindAutoDetectVisibility(c *Class, checker databind.VisibilityChecker) databind.VisibilityChecker
	FindIgnoreUnknownProperties(c *Class) Opinion[bool]
	FindRootName(c *Class) Opinion[databind.PropertyName]
	FindSerializationPropertyOrder(c *Class) Opinion[[]string]
	FindSerializationSortAlphabetically(c *Class) Opinion[bool]
	IsIgnorableType(c *Class) Opinion[bool]
	FindTypeName(c *Class) Opinion[string]
	FindFilterID(c *Class) Opinion[string]
	FindNamingStrategy(c *Class) Opinion[reflect.Type]
	FindPOJOBuilder(c *Class) Opinion[reflect.Type]
	FindPOJOBuilderConfig(c *Class) Opinion[databind.BuilderConfig]

	// general decisions
	FindEnumValue(v fmt.Stringer) string
	FindPropertiesToIgnore(a Annotated) Opinion[[]string]
	FindSubtypes(a Annotated) []databind.NamedType
	FindSerializationInclusion(a Annotated, def databind.Include) databind.Include
	FindSerializationTyping(a Annotated) Opinion[databind.Typing]
	FindNameForSerialization(a Annotated) Opinion[databind.PropertyName]
	FindNameForDeserialization(a Annotated) Opinion[databind.PropertyName]
	HasCreatorAnnotation(a Annotated) bool
	FindFormat(a Annotated) Opinion[databind.Format]
	FindObjectIDInfo(a Annotated) Opinion[databind.ObjectIDInfo]
	FindObjectReferenceInfo(a Annotated, info Opinion[databind.ObjectIDInfo]) Opinion[databind.ObjectIDInfo]
	FindViews(a Annotated) []reflect.Type
	FindWrapperName(a Annotated) Opinion[databind.PropertyName]

	// member decisions
	FindReferenceType(m Member) Opinion[databind.ReferenceProperty]
	HasIgnoreMarker(m Member) bool
	FindIgnoreMarker(m Member) Opinion[bool]
	FindInjectableValueID(m Member) Opinion[string]
	HasRequiredMarker(m Member) Opinion[bool]
	IsTypeID(m Member) Opinion[bool]
	HasAnyGetterAnnotation(m *Method) bool
	HasAnySetterAnnotation(m *Method) bool
	HasAsValueAnnotation(m *Method) bool

	// type overrides
	FindSerializationType(a Annotated) Opinion[reflect.Type]
	FindSerializationKeyType(a Annotated, base reflect.Type) Opinion[reflect.Type]
	FindSerializationContentType(a Annotated, base reflect.Type) Opinion[reflect.Type]
	FindDeserializationType(a Annotated, base reflect.Type) Opinion[reflect.Type]
	FindDeserializationKeyType(a Annotated, base reflect.Type) Opinion[reflect.Type]
	FindDeserializationContentType(a Annotated, base reflect.Type) Opinion[reflect.Type]

	// handlers
	FindSerializer(a Annotated) (databind.Serializer, error)
	FindKeySerializer(a Annotated) (databind.Serializer, error)
	FindContentSerializer(a Annotated) (databind.Serializer, error)
	FindDeserializer(a Annotated) (databind.Deserializer, error)
	FindKeyDeserializer(a Annotated) (databind.KeyDeserializer, error)
	FindContentDeserializer(a Annotated) (databind.Deserializer, error)
}

// NopIntrospector has no opinion on anything. Embed it to implement only
// some decisions.
type NopIntrospector struct{}

var _ AnnotationIntrospector = NopIntrospector{}

func (NopIntrospector) FindAutoDetectVisibility(_ *Class, checker databind.VisibilityChecker) databind.VisibilityChecker {
	return checker
}

func (NopIntrospector) FindIgnoreUnknownProperties(*Class) Opinion[bool] { return NoOpinion[bool]() }

func (NopIntrospector) FindRootName(*Class) Opinion[databind.PropertyName] {
	return NoOpinion[databind.PropertyName]()
}

func (NopIntrospector) FindSerializationPropertyOrder(*Class) Opinion[[]string] {
	return NoOpinion[[]string]()
}

func (NopIntrospector) FindSerializationSortAlphabetically(*Class) Opinion[bool] {
	return NoOpinion[bool]()
}

func (NopIntrospector) IsIgnorableType(*Class) Opinion[bool]                 { return NoOpinion[bool]() }
func (NopIntrospector) FindTypeName(*Class) Opinion[string]                  { return NoOpinion[string]() }
func (NopIntrospector) FindFilterID(*Class) Opinion[string]                  { return NoOpinion[string]() }
func (NopIntrospector) FindNamingStrategy(*Class) Opinion[reflect.Type]      { return NoOpinion[reflect.Type]() }
func (NopIntrospector) FindPOJOBuilder(*Class) Opinion[reflect.Type]         { return NoOpinion[reflect.Type]() }

func (NopIntrospector) FindPOJOBuilderConfig(*Class) Opinion[databind.BuilderConfig] {
	return NoOpinion[databind.BuilderConfig]()
}

// FindEnumValue returns the constant's declared name.
func (NopIntrospector) FindEnumValue(v fmt.Stringer) string { return v.String() }

func (NopIntrospector) FindPropertiesToIgnore(Annotated) Opinion[[]string] { return NoOpinion[[]string]() }
func (NopIntrospector) FindSubtypes(Annotated) []databind.NamedType         { return nil }

func (NopIntrospector) FindSerializationInclusion(_ Annotated, def databind.Include) databind.Include {
	return def
}

func (NopIntrospector) FindSerializationTyping(Annotated) Opinion[databind.Typing] {
	return NoOpinion[databind.Typing]()
}

func (NopIntrospector) FindNameForSerialization(Annotated) Opinion[databind.PropertyName] {
	return NoOpinion[databind.PropertyName]()
}

func (NopIntrospector) FindNameForDeserialization(Annotated) Opinion[databind.PropertyName] {
	return NoOpinion[databind.PropertyName]()
}

func (NopIntrospector) HasCreatorAnnotation(Annotated) bool { return false }

func (NopIntrospector) FindFormat(Annotated) Opinion[databind.Format] {
	return NoOpinion[databind.Format]()
}

func (NopIntrospector) FindObjectIDInfo(Annotated) Opinion[databind.ObjectIDInfo] {
	return NoOpinion[databind.ObjectIDInfo]()
}

func (NopIntrospector) FindObjectReferenceInfo(Annotated, Opinion[databind.ObjectIDInfo]) Opinion[databind.ObjectIDInfo] {
	return NoOpinion[databind.ObjectIDInfo]()
}

func (NopIntrospector) FindViews(Annotated) []reflect.Type { return nil }

func (NopIntrospector) FindWrapperName(Annotated) Opinion[databind.PropertyName] {
	return NoOpinion[databind.PropertyName]()
}

func (NopIntrospector) FindReferenceType(Member) Opinion[databind.ReferenceProperty] {
	return NoOpinion[databind.ReferenceProperty]()
}

func (NopIntrospector) HasIgnoreMarker(Member) bool                     { return false }
func (NopIntrospector) FindIgnoreMarker(Member) Opinion[bool]          { return NoOpinion[bool]() }
func (NopIntrospector) FindInjectableValueID(Member) Opinion[string]    { return NoOpinion[string]() }
func (NopIntrospector) HasRequiredMarker(Member) Opinion[bool]          { return NoOpinion[bool]() }
func (NopIntrospector) IsTypeID(Member) Opinion[bool]                   { return NoOpinion[bool]() }
func (NopIntrospector) HasAnyGetterAnnotation(*Method) bool             { return false }
func (NopIntrospector) HasAnySetterAnnotation(*Method) bool             { return false }
func (NopIntrospector) HasAsValueAnnotation(*Method) bool               { return false }
func (NopIntrospector) FindSerializationType(Annotated) Opinion[reflect.Type] {
	return NoOpinion[reflect.Type]()
}

func (NopIntrospector) FindSerializationKeyType(Annotated, reflect.Type) Opinion[reflect.Type] {
	return NoOpinion[reflect.Type]()
}

func (NopIntrospector) FindSerializationContentType(Annotated, reflect.Type) Opinion[reflect.Type] {
	return NoOpinion[reflect.Type]()
}

func (NopIntrospector) FindDeserializationType(Annotated, reflect.Type) Opinion[reflect.Type] {
	return NoOpinion[reflect.Type]()
}

func (NopIntrospector) FindDeserializationKeyType(Annotated, reflect.Type) Opinion[reflect.Type] {
	return NoOpinion[reflect.Type]()
}

func (NopIntrospector) FindDeserializationContentType(Annotated, reflect.Type) Opinion[reflect.Type] {
	return NoOpinion[reflect.Type]()
}

func (NopIntrospector) FindSerializer(Annotated) (databind.Serializer, error)       { return nil, nil }
func (NopIntrospector) FindKeySerializer(Annotated) (databind.Serializer, error)    { return nil, nil }
func (NopIntrospector) FindContentSerializer(Annotated) (databind.Serializer, error) { return nil, nil }
func (NopIntrospector) FindDeserializer(Annotated) (databind.Deserializer, error)   { return nil, nil }

func (NopIntrospector) FindKeyDeserializer(Annotated) (databind.KeyDeserializer, error) {
	return nil, nil
}

func (NopIntrospector) FindContentDeserializer(Annotated) (databind.Deserializer, error) {
	return nil, nil
}
