package textparse

// While greedily parses the longest run of T at the cursor and always
// succeeds, possibly with an empty (zero-item) result. It never partially
// consumes: a failing step's cursor movement is always rolled back by
// that step's own Parse[T] call before While sees it, so the recorded
// span only ever covers complete T matches.
//
// A run that stops making progress (an item parses but consumes no
// input) records that one item and then stops the loop rather than
// looping forever: an
// implementation that didn't guard this would hang on any T capable of
// a zero-width success (Maybe, Not, Empty itself).
type While[T Span, PT Component[T]] struct {
	items      []T
	start, end Position
}

func (w *While[T, PT]) Parse(p *Parser) error {
	start := p.CurrentPosition()
	var items []T
	for {
		mark := p.CurrentPosition()
		v, err := Parse[T, PT](p)
		if err != nil {
			break
		}
		items = append(items, v)
		if p.CurrentPosition() == mark {
			break
		}
	}
	w.items = items
	w.start, w.end = start, p.CurrentPosition()
	return nil
}

func (w While[T, PT]) StartPosition() Position { return w.start }
func (w While[T, PT]) EndPosition() Position { return w.end }

// Items returns the matched items, in order. Never nil-vs-empty
// significant: a zero-length run returns an empty, non-nil slice.
func (w While[T, PT]) Items() []T {
	if w.items == nil {
		return []T{}
	}
	return w.items
}

// Whitespaces consumes the longest run of ASCII whitespace; always
// succeeds, possibly empty.
type Whitespaces = While[Whitespace, *Whitespace]

// SkipWhitespaces parses and discards a run of whitespace at the cursor.
// It is the statement form of Whitespaces for callers that don't need the
// matched span: it returns nothing, since a whitespace run always matches.
func SkipWhitespaces(p *Parser) {
	_, _ = Parse[Whitespaces](p)
}

// NonEmpty runs T and fails if the result's span is empty, otherwise
// returns it unchanged.
type NonEmpty[T Span, PT Component[T]] struct {
	value T
}

func (n *NonEmpty[T, PT]) Parse(p *Parser) error {
	v, err := Parse[T, PT](p)
	if err != nil {
		return err
	}
	if IsEmptySpan(v) {
		return errFailed
	}
	n.value = v
	return nil
}

func (n NonEmpty[T, PT]) StartPosition() Position { return n.value.StartPosition() }
func (n NonEmpty[T, PT]) EndPosition() Position { return n.value.EndPosition() }
func (n NonEmpty[T, PT]) Value() T { return n.value }

// Maybe always succeeds: it produces T if T parsed at the cursor, else an
// empty result at the cursor's current position. Its "absent" arm plays
// the role _examples/original_source/src/components.rs's Null type plays
// for the original crate's Maybe(Either<T, Null>).
type Maybe[T Span, PT Component[T]] struct {
	value *T
	empty Position
}

func (m *Maybe[T, PT]) Parse(p *Parser) error {
	start := p.CurrentPosition()
	v, err := Parse[T, PT](p)
	if err != nil {
		m.value = nil
		m.empty = start
		return nil
	}
	m.value = &v
	return nil
}

func (m Maybe[T, PT]) StartPosition() Position {
	if m.value != nil {
		return (*m.value).StartPosition()
	}
	return m.empty
}

func (m Maybe[T, PT]) EndPosition() Position {
	if m.value != nil {
		return (*m.value).EndPosition()
	}
	return m.empty
}

// Get returns the parsed T and true if T matched, or the zero value and
// false if Maybe fell back to its empty arm.
func (m Maybe[T, PT]) Get() (T, bool) {
	if m.value == nil {
		var zero T
		return zero, false
	}
	return *m.value, true
}

// nonEmptyItems is Item (Delim Item)*: at least one Item, with Delim
// separating consecutive Items. A trailing delimiter is never consumed:
// if Delim parses but the following Item fails, the whole construct
// fails and its cursor movement is rolled back by the enclosing Parse[T]
// call, exactly matching how Items<Item, Delim> is expected to behave
// on a trailing delimiter.
type nonEmptyItems[Item Span, PI Component[Item], Delim Span, PD Component[Delim]] struct {
	items      []Item
	start, end Position
}

func (n *nonEmptyItems[Item, PI, Delim, PD]) Parse(p *Parser) error {
	start := p.CurrentPosition()
	first, err := Parse[Item, PI](p)
	if err != nil {
		return err
	}
	items := []Item{first}
	for {
		if _, err := Parse[Delim, PD](p); err != nil {
			break
		}
		item, err := Parse[Item, PI](p)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	n.items = items
	n.start, n.end = start, p.CurrentPosition()
	return nil
}

func (n nonEmptyItems[Item, PI, Delim, PD]) StartPosition() Position { return n.start }
func (n nonEmptyItems[Item, PI, Delim, PD]) EndPosition() Position { return n.end }

// Items is zero or more Item separated by Delim: implemented as
// Maybe[nonEmptyItems[Item, Delim]], exactly as the original crate
// implements it.
type Items[Item Span, PI Component[Item], Delim Span, PD Component[Delim]] struct {
	inner Maybe[nonEmptyItems[Item, PI, Delim, PD], *nonEmptyItems[Item, PI, Delim, PD]]
}

func (it *Items[Item, PI, Delim, PD]) Parse(p *Parser) error {
	return it.inner.Parse(p)
}

func (it Items[Item, PI, Delim, PD]) StartPosition() Position { return it.inner.StartPosition() }
func (it Items[Item, PI, Delim, PD]) EndPosition() Position { return it.inner.EndPosition() }

// Values returns the matched Items, in order, or an empty slice if none
// matched.
func (it Items[Item, PI, Delim, PD]) Values() []Item {
	v, ok := it.inner.Get()
	if !ok {
		return []Item{}
	}
	return v.items
}
