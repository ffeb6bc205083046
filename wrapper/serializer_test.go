package wrapper

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legacy-bridge/databind"
	"legacy-bridge/legacy"
)

type point struct {
	X, Y int
}

// pointSerializer exercises every generator call a legacy handler may make.
type pointSerializer struct{}

func (pointSerializer) Serialize(value any, gen legacy.JSONGenerator, provider legacy.SerializerProvider) error {
	p := value.(point)

	steps := []func() error{
		gen.WriteStartObject,
		func() error { return gen.WriteStringField("kind", "point") },
		func() error { return gen.WriteFieldName("x") },
		func() error { return gen.WriteNumberInt(int64(p.X)) },
		func() error { return gen.WriteFieldName("y") },
		func() error { return gen.WriteNumberFloat(float64(p.Y) + 0.5) },
		func() error { return gen.WriteFieldName("big") },
		func() error { return gen.WriteNumberString("12345678901234567890") },
		func() error { return gen.WriteFieldName("ok") },
		func() error { return gen.WriteBoolean(true) },
		func() error { return gen.WriteFieldName("none") },
		func() error { return provider.DefaultSerializeNull(gen) },
		func() error { return gen.WriteFieldName("list") },
		gen.WriteStartArray,
		func() error { return provider.DefaultSerializeValue([]int{1, 2}, gen) },
		gen.WriteNull,
		func() error { return gen.WriteObject(map[string]int{"n": 1}) },
		func() error { return gen.WriteRawValue(`"raw"`) },
		gen.WriteEndArray,
		func() error { return gen.WriteFieldName("at") },
		func() error { return provider.DefaultSerializeDateValue(time.UnixMilli(1500).UTC(), gen) },
		gen.WriteEndObject,
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}

func (pointSerializer) IsEmpty(value any) bool { return value.(point) == point{} }

func (pointSerializer) HandledType() reflect.Type { return reflect.TypeOf(point{}) }

// bareSerializer implements only the required method.
type bareSerializer struct{}

func (bareSerializer) Serialize(value any, gen legacy.JSONGenerator, _ legacy.SerializerProvider) error {
	return gen.WriteObject(value)
}

// viewSerializer writes the active view's name.
type viewSerializer struct{}

func (viewSerializer) Serialize(_ any, gen legacy.JSONGenerator, provider legacy.SerializerProvider) error {
	if v := provider.SerializationView(); v != nil {
		return gen.WriteString(v.Name())
	}

	return gen.WriteNull()
}

// foreignSerializer hands the provider a generator it did not receive.
type foreignSerializer struct{}

func (foreignSerializer) Serialize(_ any, _ legacy.JSONGenerator, provider legacy.SerializerProvider) error {
	return provider.DefaultSerializeNull(nil)
}

type publicView struct{}

type stubProvider struct {
	layout string
	view   reflect.Type
	calls  []string
}

func (p *stubProvider) DefaultSerializeValue(value any, gen *databind.Generator) error {
	p.calls = append(p.calls, "value")
	return gen.WriteValue(value)
}

func (p *stubProvider) DefaultSerializeNull(gen *databind.Generator) error {
	p.calls = append(p.calls, "null")
	return gen.WriteNull()
}

func (p *stubProvider) DateFormat() string       { return p.layout }
func (p *stubProvider) ActiveView() reflect.Type { return p.view }

func run(t *testing.T, s databind.Serializer, v any, provider databind.SerializerProvider) string {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, s.Serialize(v, databind.NewGenerator(&buf), provider))

	return buf.String()
}

func TestSerializerWrapper_Serialize(t *testing.T) {
	w := NewSerializer(pointSerializer{})

	got := run(t, w, point{X: 1, Y: 2}, nil)
	assert.Equal(t,
		`{"kind":"point","x":1,"y":2.5,"big":12345678901234567890,"ok":true,"none":null,`+
			`"list":[[1,2],null,{"n":1},"raw"],"at":1500}`,
		got)
}

func TestSerializerWrapper_ProviderIsForwarded(t *testing.T) {
	provider := &stubProvider{layout: time.RFC3339}
	w := NewSerializer(pointSerializer{})

	got := run(t, w, point{}, provider)

	assert.Contains(t, got, `"at":"1970-01-01T00:00:01Z"`)
	assert.Equal(t, []string{"null", "value"}, provider.calls)
}

func TestSerializerWrapper_View(t *testing.T) {
	w := NewSerializer(viewSerializer{})

	assert.Equal(t, `"publicView"`, run(t, w, nil, &stubProvider{view: reflect.TypeOf(publicView{})}))
	assert.Equal(t, `null`, run(t, w, nil, &stubProvider{}))
	assert.Equal(t, `null`, run(t, w, nil, nil))
}

func TestSerializerWrapper_ForeignGenerator(t *testing.T) {
	w := NewSerializer(foreignSerializer{})

	var buf bytes.Buffer

	err := w.Serialize(nil, databind.NewGenerator(&buf), nil)
	require.ErrorIs(t, err, ErrForeignGenerator)
}

func TestSerializerWrapper_OptionalMethods(t *testing.T) {
	full := NewSerializer(pointSerializer{})
	assert.True(t, full.IsEmpty(nil, point{}))
	assert.False(t, full.IsEmpty(nil, point{X: 1}))
	assert.Equal(t, reflect.TypeOf(point{}), full.HandledType())

	bare := NewSerializer(bareSerializer{})
	assert.True(t, bare.IsEmpty(nil, nil))
	assert.False(t, bare.IsEmpty(nil, ""))
	assert.Nil(t, bare.HandledType())
	assert.Equal(t, bareSerializer{}, bare.Unwrap())
}

func TestSerializerWrapper_ErrorsPropagate(t *testing.T) {
	w := NewSerializer(bareSerializer{})

	var buf bytes.Buffer

	g := databind.NewGenerator(&buf)
	require.NoError(t, g.WriteStartObject())

	// A value directly inside an object, with no field name, is rejected.
	err := w.Serialize(1, g, nil)
	require.ErrorIs(t, err, databind.ErrExpectFieldName)
}
