package databind

import (
	"fmt"
	"reflect"
)

// RawSerializer writes the textual form of a value verbatim, unquoted and
// unescaped.
type RawSerializer struct {
	handled reflect.Type
}

// NewRawSerializer returns a RawSerializer for values of type t.
func NewRawSerializer(t reflect.Type) *RawSerializer {
	return &RawSerializer{handled: t}
}

func (s *RawSerializer) Serialize(value any, gen *Generator, _ SerializerProvider) error {
	if value == nil {
		return gen.WriteNull()
	}

	return gen.WriteRawValue(rawText(value))
}

func (s *RawSerializer) IsEmpty(_ SerializerProvider, value any) bool {
	return value == nil || rawText(value) == ""
}

func (s *RawSerializer) HandledType() reflect.Type { return s.handled }

func rawText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
