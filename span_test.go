package textparse

import "testing"

func TestSpanHelpers(t *testing.T) {
	text := "hello world"
	nonEmpty := spanRange{start: NewPosition(0), end: NewPosition(5)}
	empty := spanRange{start: NewPosition(3), end: NewPosition(3)}

	if IsEmptySpan(nonEmpty) {
		t.Error("nonEmpty span reported as empty")
	}
	if !IsEmptySpan(empty) {
		t.Error("empty span reported as non-empty")
	}
	if got := SpanLen(nonEmpty); got != 5 {
		t.Errorf("SpanLen = %d, want 5", got)
	}
	if got := SpanLen(empty); got != 0 {
		t.Errorf("SpanLen of empty span = %d, want 0", got)
	}
	if got := SpanText(nonEmpty, text); got != "hello" {
		t.Errorf("SpanText = %q, want %q", got, "hello")
	}
}
