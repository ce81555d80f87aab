package textparse

import "unicode"

// Empty always succeeds and consumes nothing; its span is the single
// point at the cursor when it was parsed. Maybe[T] does not use it for
// its "absent" arm; Maybe records the cursor position directly instead.
type Empty struct {
	pos Position
}

func (e *Empty) Parse(p *Parser) error {
	e.pos = p.CurrentPosition()
	return nil
}

func (e Empty) StartPosition() Position { return e.pos }
func (e Empty) EndPosition() Position { return e.pos }

// AnyChar consumes exactly one character, failing at EOS.
type AnyChar struct {
	start, end Position
	r rune
}

func (a *AnyChar) Parse(p *Parser) error {
	r, ok := p.PeekChar()
	if !ok {
		return errFailed
	}
	a.start, a.end = p.ReadChar()
	a.r = r
	return nil
}

func (a AnyChar) StartPosition() Position { return a.start }
func (a AnyChar) EndPosition() Position { return a.end }

// Rune returns the character this AnyChar consumed.
func (a AnyChar) Rune() rune { return a.r }

// CharSpec names a single literal character for Char[S]. S is a
// zero-sized marker type the grammar author defines once per literal,
// playing the role Rust's const generics play for the original crate's
// Char<const C: char>: distinct marker types give Char[S1] and Char[S2]
// distinct, stable identities for the memo, without Go needing const
// generics to express it.
//
//	type lbrace struct{}
//	func (lbrace) Rune() rune { return '{' }
//	func (lbrace) Name() string { return "{" } // "" suppresses from expected sets
//	type LBrace = textparse.Char[lbrace]
type CharSpec interface {
	Rune() rune
	Name() string
}

// Char consumes exactly the character S names, failing otherwise.
type Char[S CharSpec] struct {
	start, end Position
}

func (c *Char[S]) Parse(p *Parser) error {
	var spec S
	r, ok := p.PeekChar()
	if !ok || r != spec.Rune() {
		return errFailed
	}
	c.start, c.end = p.ReadChar()
	return nil
}

func (c Char[S]) StartPosition() Position { return c.start }
func (c Char[S]) EndPosition() Position { return c.end }

func (c *Char[S]) ComponentName() (string, bool) {
	var spec S
	name := spec.Name()
	return name, name != ""
}

// StrSpec names a literal string for Str[S], the same marker-type idiom
// as CharSpec.
type StrSpec interface {
	Literal() string
	Name() string
}

// Str consumes exactly the literal bytes S names.
type Str[S StrSpec] struct {
	start, end Position
}

func (s *Str[S]) Parse(p *Parser) error {
	var spec S
	lit := spec.Literal()
	if len(lit) > len(p.RemainingText()) || p.RemainingText()[:len(lit)] != lit {
		return errFailed
	}
	s.start, s.end = p.ConsumeBytes(len(lit))
	return nil
}

func (s Str[S]) StartPosition() Position { return s.start }
func (s Str[S]) EndPosition() Position { return s.end }

func (s *Str[S]) ComponentName() (string, bool) {
	var spec S
	name := spec.Name()
	return name, name != ""
}

// digitValue reports the numeric value of r in the given radix, and
// whether r is a valid digit at all.
func digitValue(r rune, radix int) (int, bool) {
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'z':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		v = int(r-'A') + 10
	default:
		return 0, false
	}
	if v >= radix {
		return 0, false
	}
	return v, true
}

// Digit consumes one character whose numeric value fits radix 10.
// Exposes the digit's value via Value(). For a non-default radix, use
// DigitRadix.
type Digit struct {
	start, end Position
	value int
}

func (d *Digit) Parse(p *Parser) error {
	r, ok := p.PeekChar()
	if !ok {
		return errFailed
	}
	v, ok := digitValue(r, 10)
	if !ok {
		return errFailed
	}
	d.start, d.end = p.ReadChar()
	d.value = v
	return nil
}

func (d Digit) StartPosition() Position { return d.start }
func (d Digit) EndPosition() Position { return d.end }
func (d Digit) Value() int { return d.value }

func (d *Digit) ComponentName() (string, bool) { return "a digit", true }

// RadixSpec names a non-default radix for DigitRadix[R], the marker-type
// idiom again: e.g. a hex-digit grammar rule defines a `hex` marker type
// whose Radix method returns 16.
type RadixSpec interface {
	Radix() int
}

// DigitRadix consumes one character whose numeric value fits the radix R
// names.
type DigitRadix[R RadixSpec] struct {
	start, end Position
	value int
}

func (d *DigitRadix[R]) Parse(p *Parser) error {
	var spec R
	r, ok := p.PeekChar()
	if !ok {
		return errFailed
	}
	v, ok := digitValue(r, spec.Radix())
	if !ok {
		return errFailed
	}
	d.start, d.end = p.ReadChar()
	d.value = v
	return nil
}

func (d DigitRadix[R]) StartPosition() Position { return d.start }
func (d DigitRadix[R]) EndPosition() Position { return d.end }
func (d DigitRadix[R]) Value() int { return d.value }

func (d *DigitRadix[R]) ComponentName() (string, bool) { return "a digit", true }

// Whitespace consumes one ASCII whitespace character.
type Whitespace struct {
	start, end Position
}

func (w *Whitespace) Parse(p *Parser) error {
	r, ok := p.PeekChar()
	if !ok || !isASCIIWhitespace(r) {
		return errFailed
	}
	w.start, w.end = p.ReadChar()
	return nil
}

func (w Whitespace) StartPosition() Position { return w.start }
func (w Whitespace) EndPosition() Position { return w.end }

func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// unicodeIsSpace is kept alongside isASCIIWhitespace for components that
// explicitly want Unicode-aware whitespace.
func unicodeIsSpace(r rune) bool { return unicode.IsSpace(r) }

// Eos succeeds iff the cursor is at the end of the input.
type Eos struct {
	pos Position
}

func (e *Eos) Parse(p *Parser) error {
	if !p.IsEOS() {
		return errFailed
	}
	e.pos = p.CurrentPosition()
	return nil
}

func (e Eos) StartPosition() Position { return e.pos }
func (e Eos) EndPosition() Position { return e.pos }

func (e *Eos) ComponentName() (string, bool) { return "EOS", true }
