package json

import "github.com/go-textparse/textparse"

type objectKey struct {
	inner textparse.Sequence3[
		textparse.Whitespaces, *textparse.Whitespaces,
		JSONString, *JSONString,
		textparse.Whitespaces, *textparse.Whitespaces,
	]
}

func (k *objectKey) Parse(p *textparse.Parser) error { return k.inner.Parse(p) }
func (k objectKey) StartPosition() textparse.Position { return k.inner.StartPosition() }
func (k objectKey) EndPosition() textparse.Position   { return k.inner.EndPosition() }

// JSONObjectItem matches a "key": value object entry.
type JSONObjectItem struct {
	inner textparse.Sequence3[
		objectKey, *objectKey,
		textparse.Char[colon], *textparse.Char[colon],
		JSONValue, *JSONValue,
	]
}

func (it *JSONObjectItem) Parse(p *textparse.Parser) error { return it.inner.Parse(p) }
func (it JSONObjectItem) StartPosition() textparse.Position { return it.inner.StartPosition() }
func (it JSONObjectItem) EndPosition() textparse.Position   { return it.inner.EndPosition() }

// Key returns the entry's key text (quotes and surrounding whitespace
// excluded, content NFC-normalized).
func (it JSONObjectItem) Key(text string) string {
	return it.inner.A().inner.B().Value(text)
}

// Value returns the entry's value.
func (it JSONObjectItem) Value() JSONValue { return it.inner.C() }

// JSONObject matches "{" followed by zero or more comma-separated
// "key": value entries and "}".
type JSONObject struct {
	inner textparse.Sequence3[
		textparse.Char[lbrace], *textparse.Char[lbrace],
		textparse.Items[JSONObjectItem, *JSONObjectItem, textparse.Char[comma], *textparse.Char[comma]],
		*textparse.Items[JSONObjectItem, *JSONObjectItem, textparse.Char[comma], *textparse.Char[comma]],
		textparse.Char[rbrace], *textparse.Char[rbrace],
	]
}

func (o *JSONObject) Parse(p *textparse.Parser) error { return o.inner.Parse(p) }
func (o JSONObject) StartPosition() textparse.Position { return o.inner.StartPosition() }
func (o JSONObject) EndPosition() textparse.Position   { return o.inner.EndPosition() }

func (o *JSONObject) ComponentName() (string, bool) { return "a JSON object", true }

// Entries returns the object's key-value entries, in source order.
func (o JSONObject) Entries() []JSONObjectItem { return o.inner.B().Values() }
