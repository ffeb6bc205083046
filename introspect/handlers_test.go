package introspect

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"legacy-bridge/databind"
	"legacy-bridge/legacy"
	"legacy-bridge/tag"
	"legacy-bridge/wrapper"
)

// upperSerializer writes strings in upper case.
type upperSerializer struct {
	prefix string
}

func (s *upperSerializer) Construct() error {
	s.prefix = "~"
	return nil
}

func (s *upperSerializer) Serialize(value any, gen legacy.JSONGenerator, _ legacy.SerializerProvider) error {
	return gen.WriteString(s.prefix + strings.ToUpper(value.(string)))
}

// plainSerializer has a value receiver and no Construct hook.
type plainSerializer struct{}

func (plainSerializer) Serialize(_ any, gen legacy.JSONGenerator, _ legacy.SerializerProvider) error {
	return gen.WriteString("plain")
}

var errBroken = errors.New("broken constructor")

type failingSerializer struct{}

func (failingSerializer) Construct() error { return errBroken }

func (failingSerializer) Serialize(any, legacy.JSONGenerator, legacy.SerializerProvider) error {
	return nil
}

type panickingSerializer struct{}

func (panickingSerializer) Construct() error { panic("boom") }

func (panickingSerializer) Serialize(any, legacy.JSONGenerator, legacy.SerializerProvider) error {
	return nil
}

type intDeserializer struct{}

func (intDeserializer) Deserialize(p legacy.JSONParser, _ legacy.DeserializationContext) (any, error) {
	return p.IntValue()
}

type upperKeyDeserializer struct{}

func (upperKeyDeserializer) DeserializeKey(key string, _ legacy.DeserializationContext) (any, error) {
	return strings.ToUpper(key), nil
}

type notAHandler struct{}

type failingDeserializer struct{}

func (failingDeserializer) Construct() error { return errBroken }

func (failingDeserializer) Deserialize(legacy.JSONParser, legacy.DeserializationContext) (any, error) {
	return nil, nil
}

type failingKeyDeserializer struct{}

func (failingKeyDeserializer) Construct() error { return errBroken }

func (failingKeyDeserializer) DeserializeKey(string, legacy.DeserializationContext) (any, error) {
	return nil, nil
}

var (
	upperSerializerType = reflect.TypeOf(upperSerializer{})
	plainSerializerType = reflect.TypeOf(plainSerializer{})
	intDeserializerType = reflect.TypeOf(intDeserializer{})
)

func serialize(t *testing.T, s databind.Serializer, v any) string {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, s.Serialize(v, databind.NewGenerator(&buf), nil))

	return buf.String()
}

func TestFindSerializer_Using(t *testing.T) {
	li := New()

	s, err := li.FindSerializer(field(tag.Serialize{Using: upperSerializerType}))
	require.NoError(t, err)
	require.IsType(t, &wrapper.SerializerWrapper{}, s)

	assert.Equal(t, `"~ABC"`, serialize(t, s, "abc"))
	assert.IsType(t, &upperSerializer{}, s.(*wrapper.SerializerWrapper).Unwrap())
}

func TestFindSerializer_PointerAndValueTypes(t *testing.T) {
	li := New()

	s, err := li.FindSerializer(field(tag.Serialize{Using: reflect.TypeOf(&upperSerializer{})}))
	require.NoError(t, err)
	assert.Equal(t, `"~X"`, serialize(t, s, "x"))

	s, err = li.FindSerializer(field(tag.Serialize{Using: plainSerializerType}))
	require.NoError(t, err)
	assert.Equal(t, `"plain"`, serialize(t, s, nil))
}

func TestFindSerializer_NewInstancePerCall(t *testing.T) {
	li := New()
	f := field(tag.Serialize{Using: upperSerializerType})

	a, err := li.FindSerializer(f)
	require.NoError(t, err)
	b, err := li.FindSerializer(f)
	require.NoError(t, err)

	assert.NotSame(t, a.(*wrapper.SerializerWrapper).Unwrap(), b.(*wrapper.SerializerWrapper).Unwrap())
}

func TestFindSerializer_None(t *testing.T) {
	li := New()

	for _, el := range []Annotated{
		field(),
		field(tag.Serialize{}),
		field(tag.Serialize{Using: legacy.NoneSerializerType}),
		field(tag.RawValue{Value: false}),
	} {
		s, err := li.FindSerializer(el)
		require.NoError(t, err)
		assert.Nil(t, s)
	}
}

func TestFindSerializer_RawValue(t *testing.T) {
	li := New()

	s, err := li.FindSerializer(field(tag.RawValue{Value: true}))
	require.NoError(t, err)
	require.IsType(t, &databind.RawSerializer{}, s)

	assert.Equal(t, stringType, s.HandledType())
	assert.Equal(t, `{"a":1}`, serialize(t, s, `{"a":1}`))
}

func TestFindSerializer_UsingBeatsRawValue(t *testing.T) {
	s, err := New().FindSerializer(field(tag.RawValue{Value: true}, tag.Serialize{Using: plainSerializerType}))
	require.NoError(t, err)
	assert.IsType(t, &wrapper.SerializerWrapper{}, s)
}

func TestFindSerializer_NoneFallsThroughToRawValue(t *testing.T) {
	s, err := New().FindSerializer(field(tag.RawValue{Value: true}, tag.Serialize{Using: legacy.NoneSerializerType}))
	require.NoError(t, err)
	assert.IsType(t, &databind.RawSerializer{}, s)
}

func TestFindKeyAndContentSerializer(t *testing.T) {
	li := New()
	f := field(tag.Serialize{KeyUsing: plainSerializerType, ContentUsing: upperSerializerType})

	ks, err := li.FindKeySerializer(f)
	require.NoError(t, err)
	assert.Equal(t, `"plain"`, serialize(t, ks, "k"))

	cs, err := li.FindContentSerializer(f)
	require.NoError(t, err)
	assert.Equal(t, `"~C"`, serialize(t, cs, "c"))

	// Using alone does not leak into key or content.
	only := field(tag.Serialize{Using: plainSerializerType})

	ks, err = li.FindKeySerializer(only)
	require.NoError(t, err)
	assert.Nil(t, ks)

	cs, err = li.FindContentSerializer(only)
	require.NoError(t, err)
	assert.Nil(t, cs)
}

func TestFindDeserializer(t *testing.T) {
	li := New()

	d, err := li.FindDeserializer(field(tag.Deserialize{Using: intDeserializerType}))
	require.NoError(t, err)
	require.NotNil(t, d)

	p := databind.NewParserBytes([]byte(`42`))
	_, err = p.NextToken()
	require.NoError(t, err)

	got, err := d.Deserialize(p, &databind.DeserializationContext{})
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	cd, err := li.FindContentDeserializer(field(tag.Deserialize{ContentUsing: intDeserializerType}))
	require.NoError(t, err)
	assert.NotNil(t, cd)
}

func TestFindDeserializer_None(t *testing.T) {
	li := New()

	d, err := li.FindDeserializer(field(tag.Deserialize{Using: legacy.NoneDeserializerType}))
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = li.FindContentDeserializer(field(tag.Deserialize{}))
	require.NoError(t, err)
	assert.Nil(t, d)

	kd, err := li.FindKeyDeserializer(field(tag.Deserialize{KeyUsing: legacy.NoneKeyDeserializerType}))
	require.NoError(t, err)
	assert.Nil(t, kd)
}

func TestFindKeyDeserializer(t *testing.T) {
	kd, err := New().FindKeyDeserializer(field(tag.Deserialize{KeyUsing: reflect.TypeOf(upperKeyDeserializer{})}))
	require.NoError(t, err)

	got, err := kd.DeserializeKey("id", nil)
	require.NoError(t, err)
	assert.Equal(t, "ID", got)
}

func TestFindSerializer_InstantiationErrors(t *testing.T) {
	tests := []struct {
		name  string
		using reflect.Type
		cause error
		msg   string
	}{
		{"constructor error", reflect.TypeOf(failingSerializer{}), errBroken, "broken constructor"},
		{"constructor panic", reflect.TypeOf(panickingSerializer{}), nil, "panic: boom"},
		{"not a handler", reflect.TypeOf(notAHandler{}), errNotHandler, "does not implement"},
		{"interface type", reflect.TypeOf((*legacy.Serializer)(nil)).Elem(), errNotConstructible, "zero-value"},
		{"func type", reflect.TypeOf(func() {}), errNotConstructible, "zero-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New().FindSerializer(field(tag.Serialize{Using: tt.using}))
			require.Error(t, err)
			assert.Nil(t, s)

			require.ErrorIs(t, err, ErrInstantiation)

			if tt.cause != nil {
				require.ErrorIs(t, err, tt.cause)
			}

			var ie *InstantiationError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.using, ie.Type)
			assert.Equal(t, "serializer", ie.Role)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestFindDeserializer_InstantiationError_Role(t *testing.T) {
	_, err := New().FindContentDeserializer(field(tag.Deserialize{ContentUsing: reflect.TypeOf(notAHandler{})}))

	var ie *InstantiationError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "content deserializer", ie.Role)
}

func TestFindDeserializer_InstantiationErrors(t *testing.T) {
	li := New()

	tests := []struct {
		name  string
		find  func() (any, error)
		using reflect.Type
		role  string
	}{
		{
			name:  "deserializer constructor error",
			using: reflect.TypeOf(failingDeserializer{}),
			role:  "deserializer",
			find: func() (any, error) {
				return li.FindDeserializer(field(tag.Deserialize{Using: reflect.TypeOf(failingDeserializer{})}))
			},
		},
		{
			name:  "key deserializer constructor error",
			using: reflect.TypeOf(failingKeyDeserializer{}),
			role:  "key deserializer",
			find: func() (any, error) {
				return li.FindKeyDeserializer(field(tag.Deserialize{KeyUsing: reflect.TypeOf(failingKeyDeserializer{})}))
			},
		},
		{
			name:  "key deserializer not a handler",
			using: reflect.TypeOf(notAHandler{}),
			role:  "key deserializer",
			find: func() (any, error) {
				return li.FindKeyDeserializer(field(tag.Deserialize{KeyUsing: reflect.TypeOf(notAHandler{})}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.find()
			require.ErrorIs(t, err, ErrInstantiation)

			var ie *InstantiationError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.using, ie.Type)
			assert.Equal(t, tt.role, ie.Role)
		})
	}
}

func TestFindDeserializer_InstantiationErrorReturnsNilHandler(t *testing.T) {
	d, err := New().FindDeserializer(field(tag.Deserialize{Using: reflect.TypeOf(failingDeserializer{})}))
	require.ErrorIs(t, err, errBroken)
	assert.Nil(t, d)

	kd, err := New().FindKeyDeserializer(field(tag.Deserialize{KeyUsing: reflect.TypeOf(failingKeyDeserializer{})}))
	require.ErrorIs(t, err, errBroken)
	assert.Nil(t, kd)
}

func TestHandlerLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	li := New(WithLogger(zap.New(core)))

	_, err := li.FindSerializer(field(tag.Serialize{Using: plainSerializerType}))
	require.NoError(t, err)

	_, err = li.FindKeySerializer(field(tag.Serialize{KeyUsing: reflect.TypeOf(failingSerializer{})}))
	require.Error(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "introspect", entries[0].LoggerName)
	assert.Equal(t, "serializer", entries[0].ContextMap()["role"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "key serializer", entries[1].ContextMap()["role"])
	assert.Equal(t, "legacy-bridge/introspect.failingSerializer", entries[1].ContextMap()["type"])
}

func TestDecisionsDoNotLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	li := New(WithLogger(zap.New(core)))

	li.FindNameForSerialization(field(tag.Property{Value: "x"}))
	li.FindSerializationInclusion(field(tag.WriteNullProperties{}), databind.IncludeAlways)

	assert.Zero(t, logs.Len())
}

func TestWithLogger_Nil(t *testing.T) {
	li := New(WithLogger(nil))
	require.NotNil(t, li.logger)
}
