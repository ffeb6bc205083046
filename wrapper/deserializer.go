package wrapper

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"legacy-bridge/databind"
	"legacy-bridge/legacy"
)

// DeserializerWrapper presents a legacy.Deserializer as a databind.Deserializer.
type DeserializerWrapper struct {
	legacy legacy.Deserializer
}

var _ databind.Deserializer = (*DeserializerWrapper)(nil)

// NewDeserializer wraps d.
func NewDeserializer(d legacy.Deserializer) *DeserializerWrapper {
	return &DeserializerWrapper{legacy: d}
}

// Unwrap returns the legacy deserializer.
func (w *DeserializerWrapper) Unwrap() legacy.Deserializer { return w.legacy }

func (w *DeserializerWrapper) Deserialize(p *databind.Parser, ctx *databind.DeserializationContext) (any, error) {
	return w.legacy.Deserialize(&parserBridge{p: p}, &contextBridge{ctx: ctx})
}

func (w *DeserializerWrapper) NullValue(*databind.DeserializationContext) (any, error) {
	if nv, ok := w.legacy.(legacy.NullValuer); ok {
		return nv.NullValue(), nil
	}

	return nil, nil
}

// EmptyValue forwards to the legacy EmptyValue, falling back to NullValue.
func (w *DeserializerWrapper) EmptyValue(ctx *databind.DeserializationContext) (any, error) {
	if ev, ok := w.legacy.(legacy.EmptyValuer); ok {
		return ev.EmptyValue(), nil
	}

	return w.NullValue(ctx)
}

// KeyDeserializerWrapper presents a legacy.KeyDeserializer as a
// databind.KeyDeserializer.
type KeyDeserializerWrapper struct {
	legacy legacy.KeyDeserializer
}

var _ databind.KeyDeserializer = (*KeyDeserializerWrapper)(nil)

// NewKeyDeserializer wraps d.
func NewKeyDeserializer(d legacy.KeyDeserializer) *KeyDeserializerWrapper {
	return &KeyDeserializerWrapper{legacy: d}
}

// Unwrap returns the legacy key deserializer.
func (w *KeyDeserializerWrapper) Unwrap() legacy.KeyDeserializer { return w.legacy }

func (w *KeyDeserializerWrapper) DeserializeKey(key string, ctx *databind.DeserializationContext) (any, error) {
	return w.legacy.DeserializeKey(key, &contextBridge{ctx: ctx})
}

// parserBridge presents a databind.Parser as a legacy.JSONParser. Numbers are
// split into integer and floating point tokens by their textual form.
type parserBridge struct {
	p *databind.Parser
}

func (b *parserBridge) NextToken() (legacy.JSONToken, error) {
	k, err := b.p.NextToken()
	if err != nil {
		return legacy.NotAvailable, err
	}

	return b.translate(k), nil
}

func (b *parserBridge) CurrentToken() legacy.JSONToken { return b.translate(b.p.CurrentToken()) }
func (b *parserBridge) CurrentName() string           { return b.p.CurrentName() }
func (b *parserBridge) Text() string                  { return b.p.Text() }
func (b *parserBridge) SkipChildren() error           { return b.p.SkipChildren() }
func (b *parserBridge) BooleanValue() (bool, error)   { return b.p.Bool() }

func (b *parserBridge) IntValue() (int64, error) {
	n, err := b.p.Number()
	if err != nil {
		return 0, err
	}

	if v, err := n.Int64(); err == nil {
		return v, nil
	}

	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("parser: %q: %w", n, err)
	}

	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("parser: %q out of int64 range: %w", n, strconv.ErrRange)
	}

	return int64(f), nil
}

func (b *parserBridge) DoubleValue() (float64, error) {
	n, err := b.p.Number()
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(string(n), 64)
}

func (b *parserBridge) translate(k databind.TokenKind) legacy.JSONToken {
	switch k {
	case databind.TokenStartObject:
		return legacy.StartObject
	case databind.TokenEndObject:
		return legacy.EndObject
	case databind.TokenStartArray:
		return legacy.StartArray
	case databind.TokenEndArray:
		return legacy.EndArray
	case databind.TokenFieldName:
		return legacy.FieldName
	case databind.TokenString:
		return legacy.ValueString
	case databind.TokenNumber:
		if strings.ContainsAny(b.p.Text(), ".eE") {
			return legacy.ValueNumberFloat
		}

		return legacy.ValueNumberInt
	case databind.TokenTrue:
		return legacy.ValueTrue
	case databind.TokenFalse:
		return legacy.ValueFalse
	case databind.TokenNull:
		return legacy.ValueNull
	default:
		return legacy.NotAvailable
	}
}

// contextBridge presents a databind.DeserializationContext as a
// legacy.DeserializationContext.
type contextBridge struct {
	ctx *databind.DeserializationContext
}

func (c *contextBridge) ParseDate(s string) (time.Time, error) { return c.ctx.ParseDate(s) }

func (c *contextBridge) MappingException(target reflect.Type) error {
	return c.ctx.MappingError(target, fmt.Sprintf("can not deserialize instance of %s", target))
}

func (c *contextBridge) WeirdStringException(target reflect.Type, msg string) error {
	return c.ctx.MappingError(target, msg)
}

func (c *contextBridge) WeirdKeyException(target reflect.Type, key string, msg string) error {
	return c.ctx.WeirdKeyError(key, target, msg)
}
