package json

import (
	"golang.org/x/text/unicode/norm"

	"github.com/go-textparse/textparse"
)

type stringChar struct {
	inner textparse.Sequence2[
		textparse.Not[textparse.Char[quote], *textparse.Char[quote]], *textparse.Not[textparse.Char[quote], *textparse.Char[quote]],
		textparse.AnyChar, *textparse.AnyChar,
	]
}

func (c *stringChar) Parse(p *textparse.Parser) error { return c.inner.Parse(p) }
func (c stringChar) StartPosition() textparse.Position { return c.inner.StartPosition() }
func (c stringChar) EndPosition() textparse.Position   { return c.inner.EndPosition() }

// JSONString matches a double-quoted string. Escape sequences are not
// interpreted (neither is the original crate's example grammar this is
// grounded on); the content between the quotes is taken verbatim.
type JSONString struct {
	inner textparse.Sequence3[
		textparse.Char[quote], *textparse.Char[quote],
		textparse.While[stringChar, *stringChar], *textparse.While[stringChar, *stringChar],
		textparse.Char[quote], *textparse.Char[quote],
	]
}

func (s *JSONString) Parse(p *textparse.Parser) error { return s.inner.Parse(p) }
func (s JSONString) StartPosition() textparse.Position { return s.inner.StartPosition() }
func (s JSONString) EndPosition() textparse.Position   { return s.inner.EndPosition() }

func (s *JSONString) ComponentName() (string, bool) { return "a JSON string", true }

// Value returns the string's content (the text between the quotes),
// normalized to Unicode NFC. Normalizing at this layer applies it once at
// parse time instead of on every later comparison.
func (s JSONString) Value(text string) string {
	raw := textparse.SpanText(s.inner.B(), text)
	return norm.NFC.String(raw)
}
