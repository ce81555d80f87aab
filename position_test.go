package textparse

import "testing"

func TestPositionLineColumn(t *testing.T) {
	text := "ab\ncde\nf"
	tests := []struct {
		offset     int
		line, col  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{8, 3, 2},
	}
	for _, tt := range tests {
		pos := NewPosition(tt.offset)
		line, col := pos.LineColumn(text)
		if line != tt.line || col != tt.col {
			t.Errorf("LineColumn(%d) = (%d,%d), want (%d,%d)", tt.offset, line, col, tt.line, tt.col)
		}
	}
}

func TestPositionBefore(t *testing.T) {
	a, b := NewPosition(3), NewPosition(5)
	if !a.Before(b) {
		t.Error("expected a.Before(b)")
	}
	if b.Before(a) {
		t.Error("expected !b.Before(a)")
	}
	if a.Before(a) {
		t.Error("expected !a.Before(a)")
	}
}

func TestPositionMultiByteColumn(t *testing.T) {
	// "é" is 2 bytes in UTF-8 but must count as a single column.
	text := "é!"
	pos := NewPosition(len("é"))
	_, col := pos.LineColumn(text)
	if col != 2 {
		t.Errorf("column after one multi-byte rune = %d, want 2", col)
	}
}
