package json

import "github.com/go-textparse/textparse"

// JSONArray matches "[" followed by zero or more comma-separated JSON
// values and "]". Elements are parsed as whitespace-tolerant JSONValue
// (so whitespace around each item and around the separating comma is
// still consumed), but Values reports each item's bare JSONValueInner
// span rather than JSONValue's own whitespace-inclusive one, matching
// the literal item spans a reader of the input would expect.
type JSONArray struct {
	inner textparse.Sequence3[
		textparse.Char[lbracket], *textparse.Char[lbracket],
		textparse.Items[JSONValue, *JSONValue, textparse.Char[comma], *textparse.Char[comma]],
		*textparse.Items[JSONValue, *JSONValue, textparse.Char[comma], *textparse.Char[comma]],
		textparse.Char[rbracket], *textparse.Char[rbracket],
	]
}

func (a *JSONArray) Parse(p *textparse.Parser) error  { return a.inner.Parse(p) }
func (a JSONArray) StartPosition() textparse.Position { return a.inner.StartPosition() }
func (a JSONArray) EndPosition() textparse.Position   { return a.inner.EndPosition() }

func (a *JSONArray) ComponentName() (string, bool) { return "a JSON array", true }

// Values returns the array's elements, in order. Each element's span is
// the bare value's own span, excluding the whitespace tolerated around
// it and around the comma that separates it from its neighbors.
func (a JSONArray) Values() []JSONValueInner {
	items := a.inner.B().Values()
	out := make([]JSONValueInner, len(items))
	for i, v := range items {
		out[i] = v.inner.B()
	}
	return out
}
