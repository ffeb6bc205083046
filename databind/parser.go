package databind

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
)

// ErrNotScalar is returned when a scalar accessor is used on a container token.
var ErrNotScalar = errors.New("parser: current token is not a scalar")

// TokenKind enumerates the tokens produced by Parser.
type TokenKind int

const (
	TokenNone TokenKind = iota
	TokenStartObject
	TokenEndObject
	TokenStartArray
	TokenEndArray
	TokenFieldName
	TokenString
	TokenNumber
	TokenTrue
	TokenFalse
	TokenNull
)

var tokenNames = [...]string{
	"NONE", "START_OBJECT", "END_OBJECT", "START_ARRAY", "END_ARRAY",
	"FIELD_NAME", "VALUE_STRING", "VALUE_NUMBER", "VALUE_TRUE", "VALUE_FALSE", "VALUE_NULL",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}

	return tokenNames[k]
}

// IsScalar reports whether k is a value token other than a container marker.
func (k TokenKind) IsScalar() bool {
	return k >= TokenString && k <= TokenNull
}

type parseFrame struct {
	object       bool
	expectingKey bool
	name         string
}

// Parser reads JSON as a token stream.
type Parser struct {
	dec   *json.Decoder
	stack []parseFrame
	cur   TokenKind
	text  string
}

// NewParser returns a Parser reading from r. Numbers keep their textual form.
func NewParser(r io.Reader) *Parser {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	return &Parser{dec: dec}
}

// NewParserBytes returns a Parser over b.
func NewParserBytes(b []byte) *Parser {
	return NewParser(bytes.NewReader(b))
}

// CurrentToken returns the token most recently returned by NextToken.
func (p *Parser) CurrentToken() TokenKind { return p.cur }

// Text returns the textual form of the current token: the key for
// TokenFieldName, the value for strings and numbers, and the literal for
// booleans and null.
func (p *Parser) Text() string { return p.text }

// CurrentName returns the name of the field the parser is in, if any.
func (p *Parser) CurrentName() string {
	if n := len(p.stack); n > 0 {
		return p.stack[n-1].name
	}

	return ""
}

// NextToken advances to the next token. It returns io.EOF at the end of input.
func (p *Parser) NextToken() (TokenKind, error) {
	tok, err := p.dec.Token()
	if err != nil {
		p.cur = TokenNone
		p.text = ""

		if errors.Is(err, io.EOF) {
			return TokenNone, io.EOF
		}

		return TokenNone, fmt.Errorf("parser: %w", err)
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			p.stack = append(p.stack, parseFrame{object: true, expectingKey: true})
			return p.set(TokenStartObject, "{"), nil
		case '}':
			p.popFrame()
			return p.set(TokenEndObject, "}"), nil
		case '[':
			p.stack = append(p.stack, parseFrame{})
			return p.set(TokenStartArray, "["), nil
		default:
			p.popFrame()
			return p.set(TokenEndArray, "]"), nil
		}
	case string:
		if n := len(p.stack); n > 0 {
			top := &p.stack[n-1]
			if top.object && top.expectingKey {
				top.expectingKey = false
				top.name = v

				return p.set(TokenFieldName, v), nil
			}
		}

		p.valueDone()

		return p.set(TokenString, v), nil
	case json.Number:
		p.valueDone()
		return p.set(TokenNumber, string(v)), nil
	case float64:
		p.valueDone()
		return p.set(TokenNumber, strconv.FormatFloat(v, 'g', -1, 64)), nil
	case bool:
		p.valueDone()

		if v {
			return p.set(TokenTrue, "true"), nil
		}

		return p.set(TokenFalse, "false"), nil
	default:
		p.valueDone()
		return p.set(TokenNull, "null"), nil
	}
}

func (p *Parser) set(k TokenKind, text string) TokenKind {
	p.cur = k
	p.text = text

	return k
}

func (p *Parser) popFrame() {
	if n := len(p.stack); n > 0 {
		p.stack = p.stack[:n-1]
	}

	p.valueDone()
}

// valueDone marks the enclosing object as expecting its next key.
func (p *Parser) valueDone() {
	if n := len(p.stack); n > 0 {
		top := &p.stack[n-1]
		if top.object && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

// Bool returns the current boolean value.
func (p *Parser) Bool() (bool, error) {
	switch p.cur {
	case TokenTrue:
		return true, nil
	case TokenFalse:
		return false, nil
	default:
		return false, fmt.Errorf("%s: %w", p.cur, ErrNotScalar)
	}
}

// Number returns the current number token as json.Number.
func (p *Parser) Number() (json.Number, error) {
	if p.cur != TokenNumber {
		return "", fmt.Errorf("%s: %w", p.cur, ErrNotScalar)
	}

	return json.Number(p.text), nil
}

// SkipChildren skips to the matching end token when the current token
// starts a container; otherwise it does nothing.
func (p *Parser) SkipChildren() error {
	if p.cur != TokenStartObject && p.cur != TokenStartArray {
		return nil
	}

	depth := 1
	for depth > 0 {
		k, err := p.NextToken()
		if err != nil {
			return err
		}

		switch k {
		case TokenStartObject, TokenStartArray:
			depth++
		case TokenEndObject, TokenEndArray:
			depth--
		}
	}

	return nil
}
