package json

import "github.com/go-textparse/textparse"

// Kind identifies which alternative a parsed JSONValue matched. Mirrors
// the shape of a runtime value-tag enum, adapted from a runtime-value tag
// to a parsed-component tag: there is no KindUndefined or KindInt64 here,
// since every successfully parsed JSONValue matched exactly one grammar
// alternative.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindString
	KindNumber
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

type scalar struct {
	inner textparse.OneOfFour[
		JSONNull, *JSONNull,
		JSONBool, *JSONBool,
		JSONString, *JSONString,
		JSONNumber, *JSONNumber,
	]
}

func (s *scalar) Parse(p *textparse.Parser) error   { return s.inner.Parse(p) }
func (s scalar) StartPosition() textparse.Position  { return s.inner.StartPosition() }
func (s scalar) EndPosition() textparse.Position    { return s.inner.EndPosition() }

type compound struct {
	inner textparse.Either[
		JSONArray, *JSONArray,
		JSONObject, *JSONObject,
	]
}

func (c *compound) Parse(p *textparse.Parser) error  { return c.inner.Parse(p) }
func (c compound) StartPosition() textparse.Position { return c.inner.StartPosition() }
func (c compound) EndPosition() textparse.Position   { return c.inner.EndPosition() }

// JSONValueInner is the five-way ordered choice a JSON value resolves to:
// null, a boolean, a string, a number, or a compound (array/object)
// value. Go's combinator algebra only defines fixed Either/OneOfThree/
// OneOfFour arities (textparse/doc.go), so a fifth alternative nests a
// further choice the way the doc comment there describes.
//
// This is the bare value component, with no surrounding whitespace
// folded into its span; JSONValue wraps it in whitespace tolerance.
// JSONArray parses its elements as JSONValue but hands back each
// element's JSONValueInner from Values, so an item's reported span
// covers only the value text. JSONObject entry values stay JSONValue.
// Grounded on check_json.rs's JsonValueInner.
type JSONValueInner struct {
	inner textparse.Either[
		scalar, *scalar,
		compound, *compound,
	]
}

func (v *JSONValueInner) Parse(p *textparse.Parser) error  { return v.inner.Parse(p) }
func (v JSONValueInner) StartPosition() textparse.Position { return v.inner.StartPosition() }
func (v JSONValueInner) EndPosition() textparse.Position   { return v.inner.EndPosition() }

func (v *JSONValueInner) ComponentName() (string, bool) { return "a JSON value", true }

// Kind reports which alternative this value matched.
func (v JSONValueInner) Kind() Kind {
	if s, ok := v.inner.A(); ok {
		if _, ok := s.inner.A(); ok {
			return KindNull
		}
		if _, ok := s.inner.B(); ok {
			return KindBool
		}
		if _, ok := s.inner.C(); ok {
			return KindString
		}
		return KindNumber
	}
	compound, _ := v.inner.B()
	if _, ok := compound.inner.A(); ok {
		return KindArray
	}
	return KindObject
}

// Bool returns the boolean value and true, if this value is a bool.
func (v JSONValueInner) Bool() (bool, bool) {
	s, ok := v.inner.A()
	if !ok {
		return false, false
	}
	b, ok := s.inner.B()
	if !ok {
		return false, false
	}
	return b.Value(), true
}

// String returns the string content and true, if this value is a string.
func (v JSONValueInner) String(text string) (string, bool) {
	s, ok := v.inner.A()
	if !ok {
		return "", false
	}
	str, ok := s.inner.C()
	if !ok {
		return "", false
	}
	return str.Value(text), true
}

// Number returns the integer value and true, if this value is a number.
func (v JSONValueInner) Number(text string) (int64, bool) {
	s, ok := v.inner.A()
	if !ok {
		return 0, false
	}
	num, ok := s.inner.D()
	if !ok {
		return 0, false
	}
	return num.Value(text), true
}

// Array returns the array and true, if this value is an array.
func (v JSONValueInner) Array() (JSONArray, bool) {
	c, ok := v.inner.B()
	if !ok {
		return JSONArray{}, false
	}
	return c.inner.A()
}

// Object returns the object and true, if this value is an object.
func (v JSONValueInner) Object() (JSONObject, bool) {
	c, ok := v.inner.B()
	if !ok {
		return JSONObject{}, false
	}
	return c.inner.B()
}

// JSONValue matches any JSON value, tolerating surrounding whitespace.
// Grounded on check_json.rs's JsonValue(WithoutWhitespaces<JsonValueInner>).
type JSONValue struct {
	inner textparse.Sequence3[
		textparse.Whitespaces, *textparse.Whitespaces,
		JSONValueInner, *JSONValueInner,
		textparse.Whitespaces, *textparse.Whitespaces,
	]
}

func (v *JSONValue) Parse(p *textparse.Parser) error  { return v.inner.Parse(p) }
func (v JSONValue) StartPosition() textparse.Position { return v.inner.StartPosition() }
func (v JSONValue) EndPosition() textparse.Position   { return v.inner.EndPosition() }

// Kind reports which alternative this value matched.
func (v JSONValue) Kind() Kind { return v.inner.B().Kind() }

// Bool returns the boolean value and true, if this value is a bool.
func (v JSONValue) Bool() (bool, bool) { return v.inner.B().Bool() }

// String returns the string content and true, if this value is a string.
func (v JSONValue) String(text string) (string, bool) { return v.inner.B().String(text) }

// Number returns the integer value and true, if this value is a number.
func (v JSONValue) Number(text string) (int64, bool) { return v.inner.B().Number(text) }

// Array returns the array and true, if this value is an array.
func (v JSONValue) Array() (JSONArray, bool) { return v.inner.B().Array() }

// Object returns the object and true, if this value is an object.
func (v JSONValue) Object() (JSONObject, bool) { return v.inner.B().Object() }
