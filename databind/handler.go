package databind

import (
	"fmt"
	"reflect"
	"time"
)

// Serializer writes values through a Generator.
type Serializer interface {
	Serialize(value any, gen *Generator, provider SerializerProvider) error
	// IsEmpty reports whether value counts as empty for NON_EMPTY inclusion.
	IsEmpty(provider SerializerProvider, value any) bool
	// HandledType returns the type this serializer handles, nil if unknown.
	HandledType() reflect.Type
}

// Deserializer reads values from a Parser positioned at the value's first token.
type Deserializer interface {
	Deserialize(p *Parser, ctx *DeserializationContext) (any, error)
	// NullValue is returned for JSON null.
	NullValue(ctx *DeserializationContext) (any, error)
	// EmptyValue is returned for empty input where permitted.
	EmptyValue(ctx *DeserializationContext) (any, error)
}

// KeyDeserializer converts a map key string into a key value.
type KeyDeserializer interface {
	DeserializeKey(key string, ctx *DeserializationContext) (any, error)
}

// SerializerProvider exposes serialization-time services to serializers.
type SerializerProvider interface {
	// DefaultSerializeValue serializes value with the engine's own handler.
	DefaultSerializeValue(value any, gen *Generator) error
	// DefaultSerializeNull writes the engine's null representation.
	DefaultSerializeNull(gen *Generator) error
	// DateFormat returns the layout used for time values.
	DateFormat() string
	// ActiveView returns the view in effect, nil when none.
	ActiveView() reflect.Type
}

// DeserializationContext carries deserialization-time state and helpers.
type DeserializationContext struct {
	// DateLayout is the time layout used by ParseDate; RFC3339 when empty.
	DateLayout string
	// Attributes holds per-call values handlers may share.
	Attributes map[string]any
}

// ParseDate parses s using the context's date layout.
func (c *DeserializationContext) ParseDate(s string) (time.Time, error) {
	layout := time.RFC3339
	if c != nil && c.DateLayout != "" {
		layout = c.DateLayout
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, c.WeirdStringError(s, reflect.TypeOf(time.Time{}), "not a valid date")
	}

	return t, nil
}

// Attribute returns a per-call attribute.
func (c *DeserializationContext) Attribute(key string) (any, bool) {
	if c == nil || c.Attributes == nil {
		return nil, false
	}

	v, ok := c.Attributes[key]

	return v, ok
}

// MappingError reports an input that cannot be mapped to target.
func (c *DeserializationContext) MappingError(target reflect.Type, msg string) error {
	return &MappingError{Target: target, Msg: msg}
}

// WeirdStringError reports a string value unusable for target.
func (c *DeserializationContext) WeirdStringError(value string, target reflect.Type, msg string) error {
	return &MappingError{Target: target, Msg: fmt.Sprintf("cannot deserialize value %q: %s", value, msg)}
}

// WeirdKeyError reports a map key unusable for target.
func (c *DeserializationContext) WeirdKeyError(key string, target reflect.Type, msg string) error {
	return &MappingError{Target: target, Msg: fmt.Sprintf("cannot deserialize map key %q: %s", key, msg)}
}

// MappingError is a deserialization failure attributed to a target type.
type MappingError struct {
	Target reflect.Type
	Msg    string
}

func (e *MappingError) Error() string {
	if e.Target == nil {
		return e.Msg
	}

	return fmt.Sprintf("%s (target %s)", e.Msg, e.Target)
}
