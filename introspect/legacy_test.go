package introspect

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legacy-bridge/databind"
	"legacy-bridge/tag"
)

type widget struct{}

type baseWidget struct{}

type gadget struct{}

var (
	widgetType = reflect.TypeOf(widget{})
	gadgetType = reflect.TypeOf(gadget{})
	stringType = reflect.TypeOf("")
)

func class(tags ...tag.Tag) *Class {
	return NewClass(widgetType, tag.MustSet(tags...))
}

func field(tags ...tag.Tag) *Field {
	return NewField(class(), "name", stringType, tag.MustSet(tags...))
}

func method(params []*Parameter, tags ...tag.Tag) *Method {
	return NewMethod(class(), "setName", nil, params, tag.MustSet(tags...))
}

func param(name string, tags ...tag.Tag) *Parameter {
	return NewParameter(name, stringType, tag.MustSet(tags...))
}

func TestNew_ImplementsContract(t *testing.T) {
	var ai AnnotationIntrospector = New()
	require.NotNil(t, ai)
}

func TestFindNameForSerialization(t *testing.T) {
	li := New()

	tests := []struct {
		name string
		el   Annotated
		want Opinion[databind.PropertyName]
	}{
		{
			name: "field property",
			el:   field(tag.Property{Value: "fullName"}),
			want: Definite(databind.NewPropertyName("fullName")),
		},
		{
			name: "field property with empty value uses default",
			el:   field(tag.Property{}),
			want: Definite(databind.UseDefault),
		},
		{
			name: "field serialize implies property",
			el:   field(tag.Serialize{}),
			want: Definite(databind.UseDefault),
		},
		{
			name: "field view implies property",
			el:   field(tag.View{Value: []reflect.Type{gadgetType}}),
			want: Definite(databind.UseDefault),
		},
		{
			name: "field property beats serialize",
			el:   field(tag.Serialize{}, tag.Property{Value: "x"}),
			want: Definite(databind.NewPropertyName("x")),
		},
		{
			name: "field deserialize is not a serialization marker",
			el:   field(tag.Deserialize{}),
			want: NoOpinion[databind.PropertyName](),
		},
		{
			name: "untagged field",
			el:   field(),
			want: NoOpinion[databind.PropertyName](),
		},
		{
			name: "method getter",
			el:   method(nil, tag.Getter{Value: "g"}),
			want: Definite(databind.NewPropertyName("g")),
		},
		{
			name: "method getter beats property",
			el:   method(nil, tag.Getter{Value: "g"}, tag.Property{Value: "p"}),
			want: Definite(databind.NewPropertyName("g")),
		},
		{
			name: "method property",
			el:   method(nil, tag.Property{Value: "p"}),
			want: Definite(databind.NewPropertyName("p")),
		},
		{
			name: "method property beats serialize",
			el:   method(nil, tag.Serialize{}, tag.Property{Value: "p"}),
			want: Definite(databind.NewPropertyName("p")),
		},
		{
			name: "method property beats view",
			el:   method(nil, tag.View{}, tag.Property{Value: "p"}),
			want: Definite(databind.NewPropertyName("p")),
		},
		{
			name: "method getter with empty value beats property",
			el:   method(nil, tag.Getter{}, tag.Property{Value: "p"}),
			want: Definite(databind.UseDefault),
		},
		{
			name: "method setter is ignored for serialization",
			el:   method(nil, tag.Setter{Value: "s"}),
			want: NoOpinion[databind.PropertyName](),
		},
		{
			name: "method view implies property",
			el:   method(nil, tag.View{}),
			want: Definite(databind.UseDefault),
		},
		{
			name: "parameter has no serialization name",
			el:   param("p", tag.Property{Value: "x"}),
			want: NoOpinion[databind.PropertyName](),
		},
		{
			name: "class has no serialization name",
			el:   class(tag.Property{Value: "x"}),
			want: NoOpinion[databind.PropertyName](),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := li.FindNameForSerialization(tt.el)
			assert.Equal(t, tt.want, got, spew.Sdump(got))
		})
	}
}

func TestFindNameForDeserialization(t *testing.T) {
	li := New()

	tests := []struct {
		name string
		el   Annotated
		want Opinion[databind.PropertyName]
	}{
		{
			name: "field property",
			el:   field(tag.Property{Value: "n"}),
			want: Definite(databind.NewPropertyName("n")),
		},
		{
			name: "field deserialize implies property",
			el:   field(tag.Deserialize{}),
			want: Definite(databind.UseDefault),
		},
		{
			name: "field back reference implies property",
			el:   field(tag.BackReference{Value: "parent"}),
			want: Definite(databind.UseDefault),
		},
		{
			name: "field managed reference implies property",
			el:   field(tag.ManagedReference{Value: tag.DefaultReference}),
			want: Definite(databind.UseDefault),
		},
		{
			name: "field view implies property",
			el:   field(tag.View{}),
			want: Definite(databind.UseDefault),
		},
		{
			name: "field property beats deserialize",
			el:   field(tag.Deserialize{}, tag.Property{Value: "n"}),
			want: Definite(databind.NewPropertyName("n")),
		},
		{
			name: "field property beats view",
			el:   field(tag.View{}, tag.Property{Value: "n"}),
			want: Definite(databind.NewPropertyName("n")),
		},
		{
			name: "field property beats back reference",
			el:   field(tag.BackReference{Value: "parent"}, tag.Property{Value: "n"}),
			want: Definite(databind.NewPropertyName("n")),
		},
		{
			name: "field property beats managed reference",
			el:   field(tag.ManagedReference{Value: tag.DefaultReference}, tag.Property{Value: "n"}),
			want: Definite(databind.NewPropertyName("n")),
		},
		{
			name: "field serialize is not a deserialization marker",
			el:   field(tag.Serialize{}),
			want: NoOpinion[databind.PropertyName](),
		},
		{
			name: "method setter beats property",
			el:   method(nil, tag.Setter{Value: "s"}, tag.Property{Value: "p"}),
			want: Definite(databind.NewPropertyName("s")),
		},
		{
			name: "method setter with empty value beats property",
			el:   method(nil, tag.Setter{Value: ""}, tag.Property{Value: "bar"}),
			want: Definite(databind.UseDefault),
		},
		{
			name: "method property beats deserialize",
			el:   method(nil, tag.Deserialize{}, tag.Property{Value: "p"}),
			want: Definite(databind.NewPropertyName("p")),
		},
		{
			name: "method property",
			el:   method(nil, tag.Property{Value: "p"}),
			want: Definite(databind.NewPropertyName("p")),
		},
		{
			name: "method getter is ignored for deserialization",
			el:   method(nil, tag.Getter{Value: "g"}),
			want: NoOpinion[databind.PropertyName](),
		},
		{
			name: "method deserialize implies property",
			el:   method(nil, tag.Deserialize{}),
			want: Definite(databind.UseDefault),
		},
		{
			name: "parameter property",
			el:   param("arg0", tag.Property{Value: "id"}),
			want: Definite(databind.NewPropertyName("id")),
		},
		{
			name: "parameter without property",
			el:   param("arg0", tag.Deserialize{}),
			want: NoOpinion[databind.PropertyName](),
		},
		{
			name: "class",
			el:   class(tag.Property{Value: "x"}),
			want: NoOpinion[databind.PropertyName](),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := li.FindNameForDeserialization(tt.el)
			assert.Equal(t, tt.want, got, spew.Sdump(got))
		})
	}
}

func TestFindDeserializationParameterName_Nil(t *testing.T) {
	assert.False(t, New().FindDeserializationParameterName(nil).IsDefinite())
}

func TestUseDefaultIsDistinctFromEmptyName(t *testing.T) {
	got, ok := New().FindNameForSerialization(field(tag.Property{})).Get()
	require.True(t, ok)

	assert.True(t, got.IsUseDefault())
	assert.NotEqual(t, databind.NewPropertyName(""), got)
}

func TestFindSerializationInclusion(t *testing.T) {
	li := New()
	def := databind.IncludeNonEmpty

	tests := []struct {
		name string
		el   Annotated
		want databind.Include
	}{
		{"serialize non null", field(tag.Serialize{Include: tag.InclusionNonNull}), databind.IncludeNonNull},
		{"serialize non default", field(tag.Serialize{Include: tag.InclusionNonDefault}), databind.IncludeNonDefault},
		{"serialize default include is always", field(tag.Serialize{}), databind.IncludeAlways},
		{"write null true", field(tag.WriteNullProperties{Value: true}), databind.IncludeAlways},
		{"write null false", field(tag.WriteNullProperties{Value: false}), databind.IncludeNonNull},
		{
			"serialize beats write null",
			field(tag.Serialize{Include: tag.InclusionNonEmpty}, tag.WriteNullProperties{Value: true}),
			databind.IncludeNonEmpty,
		},
		{"no tags keeps default", field(), def},
		{"class write null", class(tag.WriteNullProperties{Value: false}), databind.IncludeNonNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, li.FindSerializationInclusion(tt.el, def))
		})
	}
}

func TestFindSerializationTyping(t *testing.T) {
	li := New()

	got := li.FindSerializationTyping(class(tag.Serialize{Typing: tag.TypingStatic}))
	assert.Equal(t, Definite(databind.TypingStatic), got)

	got = li.FindSerializationTyping(class(tag.Serialize{}))
	assert.Equal(t, Definite(databind.TypingDynamic), got)

	assert.False(t, li.FindSerializationTyping(class()).IsDefinite())
}

func TestTypeOverrides(t *testing.T) {
	li := New()
	base := reflect.TypeOf(baseWidget{})

	ser := field(tag.Serialize{As: widgetType, KeyAs: stringType, ContentAs: gadgetType})
	assert.Equal(t, Definite(widgetType), li.FindSerializationType(ser))
	assert.Equal(t, Definite(stringType), li.FindSerializationKeyType(ser, base))
	assert.Equal(t, Definite(gadgetType), li.FindSerializationContentType(ser, base))

	de := field(tag.Deserialize{As: widgetType, KeyAs: stringType, ContentAs: gadgetType})
	assert.Equal(t, Definite(widgetType), li.FindDeserializationType(de, base))
	assert.Equal(t, Definite(stringType), li.FindDeserializationKeyType(de, base))
	assert.Equal(t, Definite(gadgetType), li.FindDeserializationContentType(de, base))

	// Deserialize overrides are not visible to serialization and vice versa.
	assert.False(t, li.FindSerializationType(de).IsDefinite())
	assert.False(t, li.FindDeserializationContentType(ser, base).IsDefinite())
}

func TestTypeOverrides_NoClass(t *testing.T) {
	li := New()

	for _, el := range []Annotated{
		field(tag.Serialize{As: tag.NoClassType}),
		field(tag.Serialize{}),
		field(tag.Deserialize{ContentAs: tag.NoClassType}),
		field(),
	} {
		assert.False(t, li.FindSerializationType(el).IsDefinite(), spew.Sdump(el.(*Field).Tags()))
		assert.False(t, li.FindSerializationKeyType(el, nil).IsDefinite())
		assert.False(t, li.FindSerializationContentType(el, nil).IsDefinite())
		assert.False(t, li.FindDeserializationType(el, nil).IsDefinite())
		assert.False(t, li.FindDeserializationKeyType(el, nil).IsDefinite())
		assert.False(t, li.FindDeserializationContentType(el, nil).IsDefinite())
	}
}

func TestFindReferenceType(t *testing.T) {
	li := New()

	got := li.FindReferenceType(field(tag.ManagedReference{Value: "children"}))
	assert.Equal(t, Definite(databind.Managed("children")), got)

	got = li.FindReferenceType(field(tag.BackReference{Value: tag.DefaultReference}))
	assert.Equal(t, Definite(databind.Back("defaultReference")), got)

	// Managed is checked first.
	got = li.FindReferenceType(field(tag.BackReference{Value: "b"}, tag.ManagedReference{Value: "m"}))
	ref, ok := got.Get()
	require.True(t, ok)
	assert.True(t, ref.IsManagedReference())
	assert.Equal(t, "m", ref.Name)

	assert.False(t, li.FindReferenceType(field()).IsDefinite())
}

func TestHasIgnoreMarker(t *testing.T) {
	li := New()

	assert.True(t, li.HasIgnoreMarker(field(tag.Ignore{Value: true})))
	assert.False(t, li.HasIgnoreMarker(field(tag.Ignore{Value: false})))
	assert.False(t, li.HasIgnoreMarker(field()))
	assert.True(t, li.HasIgnoreMarker(method(nil, tag.Ignore{Value: true})))
}

func TestFindIgnoreMarker(t *testing.T) {
	li := New()

	assert.Equal(t, Definite(true), li.FindIgnoreMarker(field(tag.Ignore{Value: true})))
	assert.Equal(t, Definite(false), li.FindIgnoreMarker(field(tag.Ignore{Value: false})))
	assert.Equal(t, NoOpinion[bool](), li.FindIgnoreMarker(field()))
	assert.Equal(t, NoOpinion[bool](), NopIntrospector{}.FindIgnoreMarker(field(tag.Ignore{Value: true})))
}

func TestClassDecisions(t *testing.T) {
	li := New()

	c := class(
		tag.IgnoreProperties{Value: []string{"a", "b"}, IgnoreUnknown: true},
		tag.RootName{Value: "root"},
		tag.TypeName{Value: "W"},
		tag.Filter{Value: "f1"},
		tag.IgnoreType{Value: true},
		tag.PropertyOrder{Value: []string{"z", "y"}, Alphabetic: true},
	)

	assert.Equal(t, Definite(true), li.FindIgnoreUnknownProperties(c))
	assert.Equal(t, Definite([]string{"a", "b"}), li.FindPropertiesToIgnore(c))
	assert.Equal(t, Definite(databind.NewPropertyName("root")), li.FindRootName(c))
	assert.Equal(t, Definite("W"), li.FindTypeName(c))
	assert.Equal(t, Definite("f1"), li.FindFilterID(c))
	assert.Equal(t, Definite(true), li.IsIgnorableType(c))
	assert.Equal(t, Definite([]string{"z", "y"}), li.FindSerializationPropertyOrder(c))
	assert.Equal(t, Definite(true), li.FindSerializationSortAlphabetically(c))

	empty := class()
	assert.False(t, li.FindIgnoreUnknownProperties(empty).IsDefinite())
	assert.False(t, li.FindPropertiesToIgnore(empty).IsDefinite())
	assert.False(t, li.FindRootName(empty).IsDefinite())
	assert.False(t, li.FindTypeName(empty).IsDefinite())
	assert.False(t, li.FindFilterID(empty).IsDefinite())
	assert.False(t, li.IsIgnorableType(empty).IsDefinite())
	assert.False(t, li.FindSerializationPropertyOrder(empty).IsDefinite())
	assert.False(t, li.FindSerializationSortAlphabetically(empty).IsDefinite())
}

func TestFindIgnoreUnknownProperties_ExplicitFalse(t *testing.T) {
	got := New().FindIgnoreUnknownProperties(class(tag.IgnoreProperties{}))
	assert.Equal(t, Definite(false), got)
}

func TestFindFilterID_Empty(t *testing.T) {
	assert.False(t, New().FindFilterID(class(tag.Filter{})).IsDefinite())
}

func TestFindSubtypes(t *testing.T) {
	li := New()

	c := class(tag.SubTypes{Value: []tag.SubType{
		{Value: widgetType, Name: "w"},
		{Value: gadgetType},
	}})

	got := li.FindSubtypes(c)
	assert.Equal(t, []databind.NamedType{
		{Type: widgetType, Name: "w"},
		{Type: gadgetType},
	}, got)

	assert.Nil(t, li.FindSubtypes(class()))
	assert.Empty(t, li.FindSubtypes(class(tag.SubTypes{})))
}

func TestFindAutoDetectVisibility(t *testing.T) {
	li := New()
	base := databind.DefaultVisibilityChecker()

	c := class(tag.AutoDetect{
		FieldVisibility:  tag.VisibilityAny,
		GetterVisibility: tag.VisibilityNone,
	})

	got := li.FindAutoDetectVisibility(c, base)
	assert.Equal(t, databind.VisibilityAny, got.Field)
	assert.Equal(t, databind.VisibilityNone, got.Getter)
	assert.Equal(t, base.Setter, got.Setter)
	assert.Equal(t, base.Creator, got.Creator)
	assert.Equal(t, base.IsGetter, got.IsGetter)

	assert.Equal(t, base, li.FindAutoDetectVisibility(class(), base))
}

func TestFindAutoDetectVisibility_MethodList(t *testing.T) {
	li := New()
	base := databind.DefaultVisibilityChecker()

	c := class(tag.AutoDetect{
		Value:           []tag.Method{tag.MethodField},
		FieldVisibility: tag.VisibilityNonPrivate,
	})

	got := li.FindAutoDetectVisibility(c, base)
	assert.Equal(t, databind.VisibilityNonPrivate, got.Field)
	assert.Equal(t, databind.VisibilityNone, got.Getter)
	assert.Equal(t, databind.VisibilityNone, got.Setter)
	assert.Equal(t, databind.VisibilityNone, got.Creator)
	assert.Equal(t, databind.VisibilityNone, got.IsGetter)
}

func TestMethodMarkers(t *testing.T) {
	li := New()

	assert.True(t, li.HasAnyGetterAnnotation(method(nil, tag.AnyGetter{})))
	assert.True(t, li.HasAnySetterAnnotation(method(nil, tag.AnySetter{})))
	assert.True(t, li.HasAsValueAnnotation(method(nil, tag.Value{Value: true})))
	assert.False(t, li.HasAsValueAnnotation(method(nil, tag.Value{Value: false})))
	assert.True(t, li.HasCreatorAnnotation(method(nil, tag.Creator{})))

	plain := method(nil)
	assert.False(t, li.HasAnyGetterAnnotation(plain))
	assert.False(t, li.HasAnySetterAnnotation(plain))
	assert.False(t, li.HasAsValueAnnotation(plain))
	assert.False(t, li.HasCreatorAnnotation(plain))
}

func TestFindInjectableValueID(t *testing.T) {
	li := New()

	tests := []struct {
		name string
		el   Member
		want Opinion[string]
	}{
		{"explicit id", field(tag.Inject{Value: "clock"}), Definite("clock")},
		{"field falls back to type name", field(tag.Inject{}), Definite("string")},
		{
			"named field type",
			NewField(class(), "w", widgetType, tag.MustSet(tag.Inject{})),
			Definite("legacy-bridge/introspect.widget"),
		},
		{
			"method falls back to first parameter",
			method([]*Parameter{param("source"), param("other")}, tag.Inject{}),
			Definite("source"),
		},
		{
			"zero-arg method falls back to result type",
			NewMethod(class(), "get", widgetType, nil, tag.MustSet(tag.Inject{})),
			Definite("legacy-bridge/introspect.widget"),
		},
		{"parameter falls back to type name", param("p", tag.Inject{}), Definite("string")},
		{"no inject", field(), NoOpinion[string]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, li.FindInjectableValueID(tt.el))
		})
	}
}

func TestUnsupportedDecisionsHaveNoOpinion(t *testing.T) {
	li := New()
	f := field(tag.Property{Value: "x"}, tag.View{Value: []reflect.Type{gadgetType}})
	c := class(tag.RootName{Value: "r"})

	assert.False(t, li.FindFormat(f).IsDefinite())
	assert.False(t, li.FindObjectIDInfo(f).IsDefinite())
	assert.False(t, li.FindObjectReferenceInfo(f, NoOpinion[databind.ObjectIDInfo]()).IsDefinite())
	assert.False(t, li.FindWrapperName(f).IsDefinite())
	assert.False(t, li.HasRequiredMarker(f).IsDefinite())
	assert.False(t, li.IsTypeID(f).IsDefinite())
	assert.False(t, li.FindNamingStrategy(c).IsDefinite())
	assert.False(t, li.FindPOJOBuilder(c).IsDefinite())
	assert.False(t, li.FindPOJOBuilderConfig(c).IsDefinite())
	assert.Nil(t, li.FindViews(f))
	assert.Equal(t, "GETTER", li.FindEnumValue(tag.MethodGetter))
}

func TestDecisionsAreIdempotent(t *testing.T) {
	li := New()
	f := field(tag.Serialize{Include: tag.InclusionNonNull, As: widgetType}, tag.Property{Value: "p"})

	for range 3 {
		assert.Equal(t, Definite(databind.NewPropertyName("p")), li.FindNameForSerialization(f))
		assert.Equal(t, databind.IncludeNonNull, li.FindSerializationInclusion(f, databind.IncludeAlways))
		assert.Equal(t, Definite(widgetType), li.FindSerializationType(f))
	}
}
