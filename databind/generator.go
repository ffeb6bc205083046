package databind

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

var (
	ErrExpectFieldName = errors.New("generator: expected field name")
	ErrExpectValue     = errors.New("generator: expected value")
	ErrUnbalanced      = errors.New("generator: unbalanced container end")
)

type genFrame struct {
	object    bool
	count     int
	afterName bool
}

// Generator writes JSON tokens to an io.Writer, inserting separators.
// The first write error is sticky and returned by every later call.
type Generator struct {
	w     io.Writer
	stack []genFrame
	roots int
	err   error
}

// NewGenerator returns a Generator writing to w.
func NewGenerator(w io.Writer) *Generator {
	return &Generator{w: w}
}

// Err returns the first error encountered, if any.
func (g *Generator) Err() error { return g.err }

// Depth returns the current container nesting depth.
func (g *Generator) Depth() int { return len(g.stack) }

func (g *Generator) write(s string) error {
	if g.err != nil {
		return g.err
	}

	if _, err := io.WriteString(g.w, s); err != nil {
		g.err = fmt.Errorf("generator: write: %w", err)
	}

	return g.err
}

// beforeValue writes the separator a value needs in the current context.
func (g *Generator) beforeValue() error {
	if g.err != nil {
		return g.err
	}

	n := len(g.stack)
	if n == 0 {
		g.roots++
		if g.roots > 1 {
			return g.write(" ")
		}

		return nil
	}

	top := &g.stack[n-1]
	if top.object {
		if !top.afterName {
			g.err = ErrExpectFieldName
			return g.err
		}

		top.afterName = false

		return nil
	}

	top.count++
	if top.count > 1 {
		return g.write(",")
	}

	return nil
}

// WriteStartObject opens an object.
func (g *Generator) WriteStartObject() error {
	if err := g.beforeValue(); err != nil {
		return err
	}

	g.stack = append(g.stack, genFrame{object: true})

	return g.write("{")
}

// WriteEndObject closes the current object.
func (g *Generator) WriteEndObject() error {
	if err := g.pop(true); err != nil {
		return err
	}

	return g.write("}")
}

// WriteStartArray opens an array.
func (g *Generator) WriteStartArray() error {
	if err := g.beforeValue(); err != nil {
		return err
	}

	g.stack = append(g.stack, genFrame{})

	return g.write("[")
}

// WriteEndArray closes the current array.
func (g *Generator) WriteEndArray() error {
	if err := g.pop(false); err != nil {
		return err
	}

	return g.write("]")
}

func (g *Generator) pop(object bool) error {
	if g.err != nil {
		return g.err
	}

	n := len(g.stack)
	if n == 0 || g.stack[n-1].object != object {
		g.err = ErrUnbalanced
		return g.err
	}

	if g.stack[n-1].afterName {
		g.err = ErrExpectValue
		return g.err
	}

	g.stack = g.stack[:n-1]

	return nil
}

// WriteFieldName writes an object key.
func (g *Generator) WriteFieldName(name string) error {
	if g.err != nil {
		return g.err
	}

	n := len(g.stack)
	if n == 0 || !g.stack[n-1].object || g.stack[n-1].afterName {
		g.err = ErrExpectValue
		return g.err
	}

	top := &g.stack[n-1]
	top.count++
	top.afterName = true

	quoted, err := json.Marshal(name)
	if err != nil {
		g.err = fmt.Errorf("generator: field name: %w", err)
		return g.err
	}

	if top.count > 1 {
		if err := g.write(","); err != nil {
			return err
		}
	}

	if err := g.write(string(quoted)); err != nil {
		return err
	}

	return g.write(":")
}

// WriteString writes a quoted, escaped string value.
func (g *Generator) WriteString(s string) error {
	return g.WriteValue(s)
}

// WriteNumber writes a numeric value. v must be a Go number or json.Number.
func (g *Generator) WriteNumber(v any) error {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return g.WriteValue(v)
	default:
		g.err = fmt.Errorf("generator: %T is not a number: %w", v, ErrExpectValue)
		return g.err
	}
}

// WriteBool writes a boolean value.
func (g *Generator) WriteBool(b bool) error {
	if err := g.beforeValue(); err != nil {
		return err
	}

	if b {
		return g.write("true")
	}

	return g.write("false")
}

// WriteNull writes a null value.
func (g *Generator) WriteNull() error {
	if err := g.beforeValue(); err != nil {
		return err
	}

	return g.write("null")
}

// WriteValue marshals v as a complete value.
func (g *Generator) WriteValue(v any) error {
	if err := g.beforeValue(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		g.err = fmt.Errorf("generator: marshal %T: %w", v, err)
		return g.err
	}

	return g.write(string(data))
}

// WriteRawValue writes raw as a complete value, verbatim.
func (g *Generator) WriteRawValue(raw string) error {
	if err := g.beforeValue(); err != nil {
		return err
	}

	return g.write(raw)
}

// WriteRaw writes raw text with no separator handling.
func (g *Generator) WriteRaw(raw string) error {
	return g.write(raw)
}
