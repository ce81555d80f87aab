package textparse

// This file documents the combinator algebra's overall shape and the
// code-generation contract a future grammar generator would target; it
// ships no code of its own.
//
// # Combinator algebra
//
// Every grammar component is a Go type T whose pointer *T implements
// Component[T] (Span plus a Parse method). A grammar is then just a type
// hierarchy built out of:
//
// - leaf.go: Empty, AnyChar, Char[S], Str[S], Digit, DigitRadix[R],
// Whitespace, Eos
// - repeat.go: While[T], Whitespaces, NonEmpty[T], Maybe[T], Items[Item,Delim]
// - alt.go: Either[A,B], OneOfThree[A,B,C], OneOfFour[A,B,C,D], Not[T], Box[T]
// - seq.go: Sequence2[A,B] .. Sequence6[A,B,C,D,E,F]
//
// composed by embedding or field reference, and driven uniformly through
// the package-level Parse[T] function.
//
// # Code-generation contract
//
// A grammar author writing a large grammar by hand would eventually want
// a generator that emits the boilerplate Sequence/Either/Box wiring from a
// more compact grammar notation (e.g. a PEG-like DSL), the way parser
// generators commonly sit on top of a combinator core. That generator is
// an external collaborator and explicitly out of this repository's scope:
// nothing here parses or emits Go source. What this package guarantees,
// so such a generator has stable primitives to target, is:
//
// - Sequence2..Sequence6 cover fixed-arity concatenation; a generator
// targeting a longer sequence composes them (a Sequence7 is a
// Sequence2[Sequence6[...], X]), rather than this package growing an
// unbounded family of arities.
// - Either/OneOfThree/OneOfFour cover fixed-arity ordered choice on the
// same principle; wider choices nest the same way.
// - Box[T] is the escape hatch a generator reaches for whenever a
// generated type would otherwise be infinite-size due to direct
// recursion (a rule referencing itself through a Sequence/Either
// field rather than through While/Maybe, which already store T
// indirectly via a slice/pointer).
// - Marker types (CharSpec, StrSpec, RadixSpec) are the shape a
// generator emits one of per distinct literal in the source grammar,
// giving each a stable reflect.Type identity for the memo without any
// code in this package needing to know about them in advance.
