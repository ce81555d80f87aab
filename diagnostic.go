package textparse

import (
	"fmt"
	"strings"
)

// DefaultSourceID is used for a Diagnostic's source-identifier label when
// the caller doesn't supply one.
const DefaultSourceID = "<UNKNOWN>"

// Diagnostic renders a Parser's ExpectedSet into a human-readable,
// position-annotated message. It is the core's only opinion about error
// *text*; everything upstream of it (the expected-set computation itself)
// is pure data.
//
// Grounded on CompilerError.Format's header-line, source-line-with-caret
// layout, and 1-based line/column conventions, adapted to a four-part
// format that points at the failure position rather than quoting the
// offending source line.
type Diagnostic struct {
	SourceID string
	Set      *ExpectedSet
	Input    string
}

// NewDiagnostic builds a Diagnostic from the Parser's current expected
// state. Call it after a top-level Parse returns failure.
func NewDiagnostic(p *Parser, sourceID string) *Diagnostic {
	if sourceID == "" {
		sourceID = DefaultSourceID
	}
	return &Diagnostic{SourceID: sourceID, Set: p.Expected(), Input: p.Text()}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.String()
}

// String renders the full four-part diagnostic: the expected phrase, an
// optional ", reached EOS" suffix, a "--> source:line:column" location
// line, and a caret line pointing at the column, itself followed by the
// expected phrase again.
func (d *Diagnostic) String() string {
	phrase := d.phrase()
	line, column := d.Set.Position.LineColumn(d.Input)

	var sb strings.Builder
	sb.WriteString(phrase)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, " --> %s:%d:%d\n", d.SourceID, line, column)
	sb.WriteString(strings.Repeat(" ", column-1))
	sb.WriteString("^ ")
	sb.WriteString(phrase)
	return sb.String()
}

// phrase builds "expected X" / "expected one of X, Y, or Z" (Oxford
// comma, sorted lexicographically — ExpectedSet.Names already is), plus
// the ", reached EOS" suffix when the failure position is the input's
// length.
func (d *Diagnostic) phrase() string {
	var sb strings.Builder
	sb.WriteString("expected ")

	switch names := d.Set.Names; len(names) {
	case 0:
		sb.WriteString("more input")
	case 1:
		sb.WriteString(names[0])
	case 2:
		sb.WriteString("one of ")
		sb.WriteString(names[0])
		sb.WriteString(" or ")
		sb.WriteString(names[1])
	default:
		sb.WriteString("one of ")
		for i, name := range names {
			switch {
			case i == 0:
				sb.WriteString(name)
			case i == len(names)-1:
				sb.WriteString(", or ")
				sb.WriteString(name)
			default:
				sb.WriteString(", ")
				sb.WriteString(name)
			}
		}
	}

	if d.Set.Position.Offset() >= len(d.Input) {
		sb.WriteString(", reached EOS")
	}
	return sb.String()
}
