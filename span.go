package textparse

// Span is implemented by every parsed component: it reports the half-open
// byte range [StartPosition, EndPosition) the component covers in the
// input it was parsed from.
//
// Grounded on _examples/original_source/src/span.rs's Span trait; the
// default Len/IsEmpty/Text helpers below mirror that trait's provided
// methods.
type Span interface {
	StartPosition() Position
	EndPosition() Position
}

// IsEmptySpan reports whether s covers no input, i.e. its start position is
// not strictly before its end position.
func IsEmptySpan(s Span) bool {
	return !s.StartPosition().Before(s.EndPosition())
}

// SpanLen returns the byte length of s, or 0 for an empty span.
func SpanLen(s Span) int {
	if IsEmptySpan(s) {
		return 0
	}
	return s.EndPosition().Offset() - s.StartPosition().Offset()
}

// SpanText slices text to the portion s covers.
func SpanText(s Span, text string) string {
	return text[s.StartPosition().Offset():s.EndPosition().Offset()]
}

// spanRange is a concrete Span value, used internally by combinators that
// need to hand back a plain start/end pair rather than delegate to an
// inner component (the Go analogue of the original crate's
// impl Span for Range<Position>).
type spanRange struct {
	start, end Position
}

func (r spanRange) StartPosition() Position { return r.start }
func (r spanRange) EndPosition() Position   { return r.end }
