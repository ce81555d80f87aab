// Package json is an example grammar built on top of textparse: a
// packrat parser for a JSON text, grounded on
// original_source/examples/check_json.rs (the upstream crate's own
// worked example) and shaped after a runtime value-tag enum for the
// result type grammar users see once a value has parsed.
//
// It is explicitly outside textparse's core scope: it is a demonstration
// of the combinator algebra, not a dependency of it.
package json

import "github.com/go-textparse/textparse"

type lbracket struct{}

func (lbracket) Rune() rune   { return '[' }
func (lbracket) Name() string { return "'['" }

type rbracket struct{}

func (rbracket) Rune() rune   { return ']' }
func (rbracket) Name() string { return "']'" }

type lbrace struct{}

func (lbrace) Rune() rune   { return '{' }
func (lbrace) Name() string { return "'{'" }

type rbrace struct{}

func (rbrace) Rune() rune   { return '}' }
func (rbrace) Name() string { return "'}'" }

type quote struct{}

func (quote) Rune() rune   { return '"' }
func (quote) Name() string { return `'"'` }

type colon struct{}

func (colon) Rune() rune   { return ':' }
func (colon) Name() string { return "':'" }

type comma struct{}

func (comma) Rune() rune   { return ',' }
func (comma) Name() string { return "','" }

type nullLiteral struct{}

func (nullLiteral) Literal() string { return "null" }
func (nullLiteral) Name() string    { return "" }

type trueLiteral struct{}

func (trueLiteral) Literal() string { return "true" }
func (trueLiteral) Name() string    { return "" }

type falseLiteral struct{}

func (falseLiteral) Literal() string { return "false" }
func (falseLiteral) Name() string    { return "" }

// JSONNull matches the literal "null".
type JSONNull = textparse.Str[nullLiteral]

// JSONBool matches "true" or "false".
type JSONBool struct {
	inner textparse.Either[
		textparse.Str[trueLiteral], *textparse.Str[trueLiteral],
		textparse.Str[falseLiteral], *textparse.Str[falseLiteral],
	]
}

func (b *JSONBool) Parse(p *textparse.Parser) error { return b.inner.Parse(p) }
func (b JSONBool) StartPosition() textparse.Position { return b.inner.StartPosition() }
func (b JSONBool) EndPosition() textparse.Position   { return b.inner.EndPosition() }

// Value reports the parsed boolean.
func (b JSONBool) Value() bool {
	_, ok := b.inner.A()
	return ok
}
