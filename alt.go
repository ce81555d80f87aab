package textparse

// Either tries A, then B, committing to the first that succeeds — PEG
// ordered choice. Cursor restoration between attempts comes for free
// from Parse[T]'s own rollback-on-failure; Either itself never touches
// the cursor.
type Either[A Span, PA Component[A], B Span, PB Component[B]] struct {
	a *A
	b *B
}

func (e *Either[A, PA, B, PB]) Parse(p *Parser) error {
	if a, err := Parse[A, PA](p); err == nil {
		e.a, e.b = &a, nil
		return nil
	}
	b, err := Parse[B, PB](p)
	if err != nil {
		return err
	}
	e.a, e.b = nil, &b
	return nil
}

func (e Either[A, PA, B, PB]) StartPosition() Position {
	if e.a != nil {
		return (*e.a).StartPosition()
	}
	return (*e.b).StartPosition()
}

func (e Either[A, PA, B, PB]) EndPosition() Position {
	if e.a != nil {
		return (*e.a).EndPosition()
	}
	return (*e.b).EndPosition()
}

// A returns the A branch and true, if that's the one that matched.
func (e Either[A, PA, B, PB]) A() (A, bool) {
	if e.a == nil {
		var zero A
		return zero, false
	}
	return *e.a, true
}

// B returns the B branch and true, if that's the one that matched.
func (e Either[A, PA, B, PB]) B() (B, bool) {
	if e.b == nil {
		var zero B
		return zero, false
	}
	return *e.b, true
}

// OneOfThree tries A, B, then C in order.
type OneOfThree[A Span, PA Component[A], B Span, PB Component[B], C Span, PC Component[C]] struct {
	a *A
	b *B
	c *C
}

func (o *OneOfThree[A, PA, B, PB, C, PC]) Parse(p *Parser) error {
	if a, err := Parse[A, PA](p); err == nil {
		o.a = &a
		return nil
	}
	if b, err := Parse[B, PB](p); err == nil {
		o.b = &b
		return nil
	}
	c, err := Parse[C, PC](p)
	if err != nil {
		return err
	}
	o.c = &c
	return nil
}

func (o OneOfThree[A, PA, B, PB, C, PC]) StartPosition() Position {
	switch {
	case o.a != nil:
		return (*o.a).StartPosition()
	case o.b != nil:
		return (*o.b).StartPosition()
	default:
		return (*o.c).StartPosition()
	}
}

func (o OneOfThree[A, PA, B, PB, C, PC]) EndPosition() Position {
	switch {
	case o.a != nil:
		return (*o.a).EndPosition()
	case o.b != nil:
		return (*o.b).EndPosition()
	default:
		return (*o.c).EndPosition()
	}
}

func (o OneOfThree[A, PA, B, PB, C, PC]) A() (A, bool) {
	if o.a == nil {
		var z A
		return z, false
	}
	return *o.a, true
}

func (o OneOfThree[A, PA, B, PB, C, PC]) B() (B, bool) {
	if o.b == nil {
		var z B
		return z, false
	}
	return *o.b, true
}

func (o OneOfThree[A, PA, B, PB, C, PC]) C() (C, bool) {
	if o.c == nil {
		var z C
		return z, false
	}
	return *o.c, true
}

// OneOfFour tries A, B, C, then D in order.
type OneOfFour[A Span, PA Component[A], B Span, PB Component[B], C Span, PC Component[C], D Span, PD Component[D]] struct {
	a *A
	b *B
	c *C
	d *D
}

func (o *OneOfFour[A, PA, B, PB, C, PC, D, PD]) Parse(p *Parser) error {
	if a, err := Parse[A, PA](p); err == nil {
		o.a = &a
		return nil
	}
	if b, err := Parse[B, PB](p); err == nil {
		o.b = &b
		return nil
	}
	if c, err := Parse[C, PC](p); err == nil {
		o.c = &c
		return nil
	}
	d, err := Parse[D, PD](p)
	if err != nil {
		return err
	}
	o.d = &d
	return nil
}

func (o OneOfFour[A, PA, B, PB, C, PC, D, PD]) StartPosition() Position {
	switch {
	case o.a != nil:
		return (*o.a).StartPosition()
	case o.b != nil:
		return (*o.b).StartPosition()
	case o.c != nil:
		return (*o.c).StartPosition()
	default:
		return (*o.d).StartPosition()
	}
}

func (o OneOfFour[A, PA, B, PB, C, PC, D, PD]) EndPosition() Position {
	switch {
	case o.a != nil:
		return (*o.a).EndPosition()
	case o.b != nil:
		return (*o.b).EndPosition()
	case o.c != nil:
		return (*o.c).EndPosition()
	default:
		return (*o.d).EndPosition()
	}
}

func (o OneOfFour[A, PA, B, PB, C, PC, D, PD]) A() (A, bool) {
	if o.a == nil {
		var z A
		return z, false
	}
	return *o.a, true
}

func (o OneOfFour[A, PA, B, PB, C, PC, D, PD]) B() (B, bool) {
	if o.b == nil {
		var z B
		return z, false
	}
	return *o.b, true
}

func (o OneOfFour[A, PA, B, PB, C, PC, D, PD]) C() (C, bool) {
	if o.c == nil {
		var z C
		return z, false
	}
	return *o.c, true
}

func (o OneOfFour[A, PA, B, PB, C, PC, D, PD]) D() (D, bool) {
	if o.d == nil {
		var z D
		return z, false
	}
	return *o.d, true
}

// Not succeeds, with an empty span at the current cursor, iff T fails. It
// never consumes input either way: on T's success Not itself returns
// failure, and the enclosing Parse[T] call restores the cursor to Not's
// entry position automatically.
type Not[T Span, PT Component[T]] struct {
	pos Position
	name string
}

func (n *Not[T, PT]) Parse(p *Parser) error {
	start := p.CurrentPosition()
	if _, err := Parse[T, PT](p); err == nil {
		return errFailed
	}
	n.pos = start
	return nil
}

func (n Not[T, PT]) StartPosition() Position { return n.pos }
func (n Not[T, PT]) EndPosition() Position { return n.pos }

// ComponentName surfaces "not <T-name>" when T itself is named.
func (n *Not[T, PT]) ComponentName() (string, bool) {
	if named, ok := any(PT(new(T))).(Named); ok {
		if inner, ok := named.ComponentName(); ok {
			return "not " + inner, true
		}
	}
	return "", false
}

// Box is a transparent wrapper forwarding Parse and Span to T, used to
// break an otherwise-infinite Go type definition in a recursive grammar
// (e.g. a JSON value that can contain an array of JSON values): T is
// stored behind a pointer so the struct has finite size, the same role
// Box<T> plays in the original Rust crate.
type Box[T Span, PT Component[T]] struct {
	inner *T
}

func (b *Box[T, PT]) Parse(p *Parser) error {
	v, err := Parse[T, PT](p)
	if err != nil {
		return err
	}
	b.inner = &v
	return nil
}

func (b Box[T, PT]) StartPosition() Position { return (*b.inner).StartPosition() }
func (b Box[T, PT]) EndPosition() Position { return (*b.inner).EndPosition() }

// Get returns the boxed value.
func (b Box[T, PT]) Get() T { return *b.inner }
