package textparse

import "testing"

type aSpec struct{}

func (aSpec) Rune() rune   { return 'a' }
func (aSpec) Name() string { return "'a'" }

type charA = Char[aSpec]

func TestParseBasic(t *testing.T) {
	p := New("abc")
	v, err := Parse[charA](p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.StartPosition().Offset() != 0 || v.EndPosition().Offset() != 1 {
		t.Fatalf("span = [%d,%d), want [0,1)", v.StartPosition().Offset(), v.EndPosition().Offset())
	}
	if p.CurrentPosition().Offset() != v.EndPosition().Offset() {
		t.Fatalf("cursor after success = %d, want %d", p.CurrentPosition().Offset(), v.EndPosition().Offset())
	}
}

func TestParseFailureRestoresCursor(t *testing.T) {
	p := New("xyz")
	start := p.CurrentPosition()
	if _, err := Parse[charA](p); err == nil {
		t.Fatal("expected failure parsing 'a' at 'x'")
	}
	if p.CurrentPosition() != start {
		t.Fatalf("cursor moved on failure: %v != %v", p.CurrentPosition(), start)
	}
}

func TestParseMemoIdempotence(t *testing.T) {
	p := New("aaa")
	v1, err1 := Parse[charA](p)
	if err1 != nil {
		t.Fatal(err1)
	}
	p.current = NewPosition(0) // re-enter at the same position the memo was keyed on
	v2, err2 := Parse[charA](p)
	if err2 != nil {
		t.Fatal(err2)
	}
	if v1 != v2 {
		t.Fatalf("memoized result differs: %+v != %+v", v1, v2)
	}
}

func TestPeekRestoresCursor(t *testing.T) {
	p := New("abc")
	start := p.CurrentPosition()
	if _, err := Peek[charA](p); err != nil {
		t.Fatal(err)
	}
	if p.CurrentPosition() != start {
		t.Fatalf("Peek moved the cursor: %v != %v", p.CurrentPosition(), start)
	}
	// A real Parse right after should still succeed at the same position.
	if _, err := Parse[charA](p); err != nil {
		t.Fatalf("Parse after Peek failed: %v", err)
	}
}

// selfRef is deliberately left-recursive: it tries to parse itself first.
type selfRef struct {
	start, end Position
}

func (s *selfRef) Parse(p *Parser) error {
	if _, err := Parse[selfRef](p); err != nil {
		return err
	}
	s.start, s.end = p.ReadChar()
	return nil
}

func (s selfRef) StartPosition() Position { return s.start }
func (s selfRef) EndPosition() Position   { return s.end }

func TestLeftRecursionFailsDeterministically(t *testing.T) {
	p := New("aaa")
	if _, err := Parse[selfRef](p); err == nil {
		t.Fatal("expected left-recursive component to fail rather than loop")
	}
}

func TestParsedItemsOrder(t *testing.T) {
	p := New("aaa")
	for i := 0; i < 3; i++ {
		if _, err := Parse[charA](p); err != nil {
			t.Fatal(err)
		}
	}
	var starts []int
	for pos, v := range ParsedItems[charA](p) {
		starts = append(starts, pos.Offset())
		if v.StartPosition() != pos {
			t.Fatalf("iterator position %v != value start %v", pos, v.StartPosition())
		}
	}
	if len(starts) != 3 {
		t.Fatalf("got %d parsed items, want 3", len(starts))
	}
	for i := 1; i < len(starts); i++ {
		if starts[i] <= starts[i-1] {
			t.Fatalf("ParsedItems not in ascending order: %v", starts)
		}
	}
}

// pathological is a component for the memo bound: it is requested at the
// same positions over and over through a Sequence2 below.
// pathologicalInvocations tracks how many times its Parse method body
// actually runs.
var pathologicalInvocations int

type pathological struct {
	start, end Position
}

func (p2 *pathological) Parse(p *Parser) error {
	pathologicalInvocations++
	r, ok := p.PeekChar()
	if !ok || r != 'a' {
		return errFailed
	}
	p2.start, p2.end = p.ReadChar()
	return nil
}

func (p2 pathological) StartPosition() Position { return p2.start }
func (p2 pathological) EndPosition() Position   { return p2.end }

type pathologicalPair = Sequence2[pathological, *pathological, pathological, *pathological]

func TestMemoBoundsInvocationCount(t *testing.T) {
	pathologicalInvocations = 0
	p := New("aa")
	// Ask for the same sub-parse at the same position many times over;
	// a memoizing engine runs the underlying Parse body once per
	// distinct (type, position) pair no matter how many callers ask.
	for i := 0; i < 50; i++ {
		p.current = NewPosition(0)
		if _, err := Parse[pathologicalPair](p); err != nil {
			t.Fatal(err)
		}
	}
	if pathologicalInvocations != 2 {
		t.Fatalf("pathological.Parse invoked %d times across 50 repeated requests at the same positions, want 2 (one per distinct position)", pathologicalInvocations)
	}
}
