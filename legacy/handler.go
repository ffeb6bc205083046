// Package legacy defines the calling convention of legacy custom handlers.
//
// Handler types named by legacy tags implement Serializer, Deserializer or
// KeyDeserializer. They see the world through JSONGenerator, JSONParser,
// SerializerProvider and DeserializationContext, which the wrapper package
// bridges onto the current engine.
package legacy

import (
	"reflect"
	"time"
)

// Serializer is a legacy custom serializer.
type Serializer interface {
	Serialize(value any, gen JSONGenerator, provider SerializerProvider) error
}

// Deserializer is a legacy custom deserializer.
type Deserializer interface {
	Deserialize(p JSONParser, ctx DeserializationContext) (any, error)
}

// KeyDeserializer is a legacy custom map key deserializer.
type KeyDeserializer interface {
	DeserializeKey(key string, ctx DeserializationContext) (any, error)
}

// EmptyChecker is optionally implemented by serializers that define emptiness.
type EmptyChecker interface {
	IsEmpty(value any) bool
}

// TypedHandler is optionally implemented by handlers that know their type.
type TypedHandler interface {
	HandledType() reflect.Type
}

// NullValuer is optionally implemented by deserializers with a non-nil null value.
type NullValuer interface {
	NullValue() any
}

// EmptyValuer is optionally implemented by deserializers with an empty value.
type EmptyValuer interface {
	EmptyValue() any
}

// Constructible is implemented by handler types that need initialization
// beyond their zero value. Construct runs once on a freshly allocated value;
// an error aborts instantiation.
type Constructible interface {
	Construct() error
}

// NoneSerializer is the "no serializer" sentinel of Serialize.Using,
// Serialize.KeyUsing and Serialize.ContentUsing.
type NoneSerializer struct{}

// NoneDeserializer is the "no deserializer" sentinel of Deserialize.Using
// and Deserialize.ContentUsing.
type NoneDeserializer struct{}

// NoneKeyDeserializer is the "no key deserializer" sentinel of
// Deserialize.KeyUsing.
type NoneKeyDeserializer struct{}

var (
	NoneSerializerType      = reflect.TypeOf(NoneSerializer{})
	NoneDeserializerType    = reflect.TypeOf(NoneDeserializer{})
	NoneKeyDeserializerType = reflect.TypeOf(NoneKeyDeserializer{})
)

// SerializerProvider exposes legacy serialization-time services.
type SerializerProvider interface {
	DefaultSerializeValue(value any, gen JSONGenerator) error
	DefaultSerializeNull(gen JSONGenerator) error
	DefaultSerializeDateValue(t time.Time, gen JSONGenerator) error
	SerializationView() reflect.Type
}

// DeserializationContext exposes legacy deserialization-time services.
type DeserializationContext interface {
	ParseDate(s string) (time.Time, error)
	MappingException(target reflect.Type) error
	WeirdStringException(target reflect.Type, msg string) error
	WeirdKeyException(target reflect.Type, key string, msg string) error
}
