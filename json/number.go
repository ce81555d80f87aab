package json

import (
	"strconv"

	"github.com/go-textparse/textparse"
)

// JSONNumber matches one or more decimal digits. The upstream example
// grammar this is grounded on (check_json.rs) does not handle signs,
// fractions, or exponents either — it exists to demonstrate NonEmpty<While<Digit>>,
// not to be a complete JSON number grammar.
type JSONNumber struct {
	digits textparse.NonEmpty[
		textparse.While[textparse.Digit, *textparse.Digit], *textparse.While[textparse.Digit, *textparse.Digit],
	]
}

func (n *JSONNumber) Parse(p *textparse.Parser) error {
	v, err := textparse.Parse[
		textparse.NonEmpty[textparse.While[textparse.Digit, *textparse.Digit], *textparse.While[textparse.Digit, *textparse.Digit]],
	](p)
	if err != nil {
		return err
	}
	n.digits = v
	return nil
}

func (n JSONNumber) StartPosition() textparse.Position { return n.digits.StartPosition() }
func (n JSONNumber) EndPosition() textparse.Position   { return n.digits.EndPosition() }

func (n *JSONNumber) ComponentName() (string, bool) { return "a JSON number", true }

// Value returns the number's integer value.
func (n JSONNumber) Value(text string) int64 {
	v, _ := strconv.ParseInt(textparse.SpanText(n.digits, text), 10, 64)
	return v
}
