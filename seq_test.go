package textparse

import "testing"

func TestSequence2Concatenates(t *testing.T) {
	type seq = Sequence2[charA, *charA, charB, *charB]
	p := New("ab")
	v, err := Parse[seq](p)
	if err != nil {
		t.Fatal(err)
	}
	if v.StartPosition().Offset() != 0 || v.EndPosition().Offset() != 2 {
		t.Fatalf("span = [%d,%d), want [0,2)", v.StartPosition().Offset(), v.EndPosition().Offset())
	}
}

func TestSequence2FailsPartway(t *testing.T) {
	type seq = Sequence2[charA, *charA, charB, *charB]
	p := New("ac")
	if _, err := Parse[seq](p); err == nil {
		t.Fatal("expected failure: second element doesn't match")
	}
	if p.CurrentPosition().Offset() != 0 {
		t.Fatal("a partial sequence match must roll back entirely")
	}
}

func TestSequence2SpanIsAlwaysFirstStartToLastEnd(t *testing.T) {
	// Open-question decision (a): sequence span always spans
	// first.start -> last.end, even if an element's own span is empty.
	type seq = Sequence2[Empty, *Empty, charA, *charA]
	p := New("a")
	v, err := Parse[seq](p)
	if err != nil {
		t.Fatal(err)
	}
	if v.StartPosition().Offset() != 0 || v.EndPosition().Offset() != 1 {
		t.Fatalf("span = [%d,%d), want [0,1)", v.StartPosition().Offset(), v.EndPosition().Offset())
	}
}

func TestSequence6AllElementsInOrder(t *testing.T) {
	type seq = Sequence6[
		charA, *charA, charB, *charB, charA, *charA,
		charB, *charB, charA, *charA, charB, *charB,
	]
	p := New("ababab")
	v, err := Parse[seq](p)
	if err != nil {
		t.Fatal(err)
	}
	if SpanLen(v) != 6 {
		t.Fatalf("SpanLen = %d, want 6", SpanLen(v))
	}
}
