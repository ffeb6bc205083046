package tag

import "reflect"

// Tag is implemented by every legacy tag value.
type Tag interface {
	Kind() Kind
}

// NoClass is the "no override" sentinel of the type-override attributes
// (As, KeyAs, ContentAs).
type NoClass struct{}

// NoClassType is the reflect.Type of NoClass.
var NoClassType = reflect.TypeOf(NoClass{})

// IsNoClass reports whether t means "no override": nil or NoClassType.
func IsNoClass(t reflect.Type) bool {
	return t == nil || t == NoClassType
}

// DefaultReference is the reference name used by ManagedReference and
// BackReference when none is declared.
const DefaultReference = "defaultReference"

// Property marks a member as a property, optionally naming it.
// An empty Value means "use the default name".
type Property struct {
	Value string
}

// Getter marks a method as a property getter. Empty Value means default name.
type Getter struct {
	Value string
}

// Setter marks a method as a property setter. Empty Value means default name.
type Setter struct {
	Value string
}

// Serialize configures serialization of a member or class.
//
// Using, KeyUsing and ContentUsing name legacy serializer types; the
// legacy.NoneSerializer type (or nil) means none. As, KeyAs and ContentAs
// override the declared types; NoClass (or nil) means no override.
type Serialize struct {
	Using        reflect.Type
	KeyUsing     reflect.Type
	ContentUsing reflect.Type
	As           reflect.Type
	KeyAs        reflect.Type
	ContentAs    reflect.Type
	Include      Inclusion
	Typing       Typing
}

// Deserialize configures deserialization of a member or class.
//
// Using and ContentUsing name legacy deserializer types (legacy.NoneDeserializer
// means none), KeyUsing names a legacy key deserializer type
// (legacy.NoneKeyDeserializer means none).
type Deserialize struct {
	Using        reflect.Type
	KeyUsing     reflect.Type
	ContentUsing reflect.Type
	As           reflect.Type
	KeyAs        reflect.Type
	ContentAs    reflect.Type
}

// WriteNullProperties is the pre-inclusion boolean switch for writing nulls.
type WriteNullProperties struct {
	Value bool
}

// View lists the views a property belongs to.
type View struct {
	Value []reflect.Type
}

// ManagedReference marks the forward side of a parent/child link.
type ManagedReference struct {
	Value string
}

// BackReference marks the back side of a parent/child link.
type BackReference struct {
	Value string
}

// Ignore marks a member as ignored. Value false explicitly un-ignores it.
type Ignore struct {
	Value bool
}

// IgnoreProperties lists property names to skip, and whether unknown
// properties are tolerated on deserialization.
type IgnoreProperties struct {
	Value         []string
	IgnoreUnknown bool
}

// IgnoreType marks a whole type as ignorable wherever it is referenced.
type IgnoreType struct {
	Value bool
}

// PropertyOrder declares the serialization order of properties.
type PropertyOrder struct {
	Value      []string
	Alphabetic bool
}

// RawValue writes the member's value verbatim, without quoting or escaping.
type RawValue struct {
	Value bool
}

// SubType is one entry of SubTypes.
type SubType struct {
	Value reflect.Type
	Name  string
}

// SubTypes registers the polymorphic subtypes of a class, in order.
type SubTypes struct {
	Value []SubType
}

// TypeName declares the discriminator name of a class.
type TypeName struct {
	Value string
}

// RootName declares the wrapping root element name of a class.
type RootName struct {
	Value string
}

// Filter names the property filter applied to a class.
type Filter struct {
	Value string
}

// Inject marks a member as receiving an injected value. Empty Value means
// the id is derived from the member.
type Inject struct {
	Value string
}

// AnyGetter marks a method returning a map of extra properties.
type AnyGetter struct{}

// AnySetter marks a two-argument method receiving unknown properties.
type AnySetter struct{}

// Creator marks a constructor or factory used for deserialization.
type Creator struct{}

// Value marks a method whose result is the serialized form of the instance.
type Value struct {
	Value bool
}

// AutoDetect configures which accessors are detected automatically.
type AutoDetect struct {
	Value              []Method
	GetterVisibility   Visibility
	IsGetterVisibility Visibility
	SetterVisibility   Visibility
	CreatorVisibility  Visibility
	FieldVisibility    Visibility
}

func (Property) Kind() Kind            { return KindProperty }
func (Getter) Kind() Kind              { return KindGetter }
func (Setter) Kind() Kind              { return KindSetter }
func (Serialize) Kind() Kind           { return KindSerialize }
func (Deserialize) Kind() Kind         { return KindDeserialize }
func (WriteNullProperties) Kind() Kind { return KindWriteNullProperties }
func (View) Kind() Kind                { return KindView }
func (ManagedReference) Kind() Kind    { return KindManagedReference }
func (BackReference) Kind() Kind       { return KindBackReference }
func (Ignore) Kind() Kind              { return KindIgnore }
func (IgnoreProperties) Kind() Kind    { return KindIgnoreProperties }
func (IgnoreType) Kind() Kind          { return KindIgnoreType }
func (PropertyOrder) Kind() Kind       { return KindPropertyOrder }
func (RawValue) Kind() Kind            { return KindRawValue }
func (SubTypes) Kind() Kind            { return KindSubTypes }
func (TypeName) Kind() Kind            { return KindTypeName }
func (RootName) Kind() Kind            { return KindRootName }
func (Filter) Kind() Kind              { return KindFilter }
func (Inject) Kind() Kind              { return KindInject }
func (AnyGetter) Kind() Kind           { return KindAnyGetter }
func (AnySetter) Kind() Kind           { return KindAnySetter }
func (Creator) Kind() Kind             { return KindCreator }
func (Value) Kind() Kind               { return KindValue }
func (AutoDetect) Kind() Kind          { return KindAutoDetect }
