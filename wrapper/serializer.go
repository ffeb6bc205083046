package wrapper

import (
	"errors"
	"reflect"
	"time"

	"github.com/goccy/go-json"

	"legacy-bridge/databind"
	"legacy-bridge/legacy"
)

// ErrForeignGenerator is returned when a legacy handler passes the provider a
// generator that did not come from this package.
var ErrForeignGenerator = errors.New("generator was not created by the serializer wrapper")

// SerializerWrapper presents a legacy.Serializer as a databind.Serializer.
type SerializerWrapper struct {
	legacy legacy.Serializer
}

var _ databind.Serializer = (*SerializerWrapper)(nil)

// NewSerializer wraps s.
func NewSerializer(s legacy.Serializer) *SerializerWrapper {
	return &SerializerWrapper{legacy: s}
}

// Unwrap returns the legacy serializer.
func (w *SerializerWrapper) Unwrap() legacy.Serializer { return w.legacy }

func (w *SerializerWrapper) Serialize(value any, gen *databind.Generator, provider databind.SerializerProvider) error {
	return w.legacy.Serialize(value, &generatorBridge{gen: gen}, &providerBridge{provider: provider})
}

// IsEmpty forwards to the legacy IsEmpty when defined; otherwise only nil is
// empty.
func (w *SerializerWrapper) IsEmpty(_ databind.SerializerProvider, value any) bool {
	if ec, ok := w.legacy.(legacy.EmptyChecker); ok {
		return ec.IsEmpty(value)
	}

	return value == nil
}

func (w *SerializerWrapper) HandledType() reflect.Type {
	if th, ok := w.legacy.(legacy.TypedHandler); ok {
		return th.HandledType()
	}

	return nil
}

// generatorBridge presents a databind.Generator as a legacy.JSONGenerator.
type generatorBridge struct {
	gen *databind.Generator
}

func (b *generatorBridge) WriteStartObject() error          { return b.gen.WriteStartObject() }
func (b *generatorBridge) WriteEndObject() error            { return b.gen.WriteEndObject() }
func (b *generatorBridge) WriteStartArray() error           { return b.gen.WriteStartArray() }
func (b *generatorBridge) WriteEndArray() error             { return b.gen.WriteEndArray() }
func (b *generatorBridge) WriteFieldName(name string) error { return b.gen.WriteFieldName(name) }
func (b *generatorBridge) WriteString(s string) error       { return b.gen.WriteString(s) }
func (b *generatorBridge) WriteNumberInt(v int64) error     { return b.gen.WriteNumber(v) }
func (b *generatorBridge) WriteNumberFloat(v float64) error { return b.gen.WriteNumber(v) }
func (b *generatorBridge) WriteBoolean(v bool) error        { return b.gen.WriteBool(v) }
func (b *generatorBridge) WriteNull() error                 { return b.gen.WriteNull() }
func (b *generatorBridge) WriteObject(v any) error          { return b.gen.WriteValue(v) }
func (b *generatorBridge) WriteRaw(text string) error       { return b.gen.WriteRaw(text) }
func (b *generatorBridge) WriteRawValue(text string) error  { return b.gen.WriteRawValue(text) }

func (b *generatorBridge) WriteNumberString(encoded string) error {
	return b.gen.WriteNumber(json.Number(encoded))
}

func (b *generatorBridge) WriteStringField(name, value string) error {
	if err := b.gen.WriteFieldName(name); err != nil {
		return err
	}

	return b.gen.WriteString(value)
}

// providerBridge presents a databind.SerializerProvider as a
// legacy.SerializerProvider. A nil provider falls back to plain marshaling.
type providerBridge struct {
	provider databind.SerializerProvider
}

func unbridge(gen legacy.JSONGenerator) (*databind.Generator, error) {
	b, ok := gen.(*generatorBridge)
	if !ok {
		return nil, ErrForeignGenerator
	}

	return b.gen, nil
}

func (p *providerBridge) DefaultSerializeValue(value any, gen legacy.JSONGenerator) error {
	g, err := unbridge(gen)
	if err != nil {
		return err
	}

	if p.provider == nil {
		return g.WriteValue(value)
	}

	return p.provider.DefaultSerializeValue(value, g)
}

func (p *providerBridge) DefaultSerializeNull(gen legacy.JSONGenerator) error {
	g, err := unbridge(gen)
	if err != nil {
		return err
	}

	if p.provider == nil {
		return g.WriteNull()
	}

	return p.provider.DefaultSerializeNull(g)
}

// DefaultSerializeDateValue writes t with the provider's date layout, or as
// epoch milliseconds when no layout is configured.
func (p *providerBridge) DefaultSerializeDateValue(t time.Time, gen legacy.JSONGenerator) error {
	g, err := unbridge(gen)
	if err != nil {
		return err
	}

	if p.provider != nil {
		if layout := p.provider.DateFormat(); layout != "" {
			return g.WriteString(t.Format(layout))
		}
	}

	return g.WriteNumber(t.UnixMilli())
}

func (p *providerBridge) SerializationView() reflect.Type {
	if p.provider == nil {
		return nil
	}

	return p.provider.ActiveView()
}
