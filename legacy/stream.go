package legacy

import "strconv"

// JSONGenerator is the legacy streaming writer.
type JSONGenerator interface {
	WriteStartObject() error
	WriteEndObject() error
	WriteStartArray() error
	WriteEndArray() error
	WriteFieldName(name string) error
	WriteString(s string) error
	WriteNumberInt(v int64) error
	WriteNumberFloat(v float64) error
	WriteNumberString(encoded string) error
	WriteBoolean(b bool) error
	WriteNull() error
	WriteObject(v any) error
	WriteRaw(text string) error
	WriteRawValue(text string) error
	WriteStringField(name, value string) error
}

// JSONToken enumerates legacy parser tokens.
type JSONToken int

const (
	NotAvailable JSONToken = iota
	StartObject
	EndObject
	StartArray
	EndArray
	FieldName
	ValueString
	ValueNumberInt
	ValueNumberFloat
	ValueTrue
	ValueFalse
	ValueNull
)

var tokenNames = [...]string{
	"NOT_AVAILABLE", "START_OBJECT", "END_OBJECT", "START_ARRAY", "END_ARRAY", "FIELD_NAME",
	"VALUE_STRING", "VALUE_NUMBER_INT", "VALUE_NUMBER_FLOAT", "VALUE_TRUE", "VALUE_FALSE", "VALUE_NULL",
}

func (t JSONToken) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "JSONToken(" + strconv.Itoa(int(t)) + ")"
	}

	return tokenNames[t]
}

// JSONParser is the legacy streaming reader.
type JSONParser interface {
	NextToken() (JSONToken, error)
	CurrentToken() JSONToken
	CurrentName() string
	Text() string
	IntValue() (int64, error)
	DoubleValue() (float64, error)
	BooleanValue() (bool, error)
	SkipChildren() error
}
