package textparse

import "testing"

type bSpec struct{}

func (bSpec) Rune() rune   { return 'b' }
func (bSpec) Name() string { return "'b'" }

type charB = Char[bSpec]

func TestExpectedSetDeepestPositionWins(t *testing.T) {
	// "a" then fail: trying 'a' succeeds at 0, then trying 'b' at
	// position 1 fails — the deepest attempted position (1) should be
	// the one reported, not position 0.
	type seq = Sequence2[charA, *charA, charB, *charB]
	p := New("ac")
	if _, err := Parse[seq](p); err == nil {
		t.Fatal("expected failure")
	}
	set := p.Expected()
	if set.Position.Offset() != 1 {
		t.Fatalf("expected-set position = %d, want 1", set.Position.Offset())
	}
	if len(set.Names) != 1 || set.Names[0] != "'b'" {
		t.Fatalf("expected-set names = %v, want [\"'b'\"]", set.Names)
	}
}

func TestExpectedSetAccumulatesAtSamePositionDepth(t *testing.T) {
	type choice = Either[charA, *charA, charB, *charB]
	p := New("c")
	if _, err := Parse[choice](p); err == nil {
		t.Fatal("expected failure")
	}
	set := p.Expected()
	if set.Position.Offset() != 0 {
		t.Fatalf("position = %d, want 0", set.Position.Offset())
	}
	if len(set.Names) != 2 {
		t.Fatalf("names = %v, want 2 entries", set.Names)
	}
	if set.Names[0] != "'a'" || set.Names[1] != "'b'" {
		t.Fatalf("names = %v, want sorted [\"'a'\", \"'b'\"]", set.Names)
	}
}
