// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cmb provides the core abstractions for building parser combinators
// in Go.
//
// The package defines three load-bearing pieces: a [Reader] that cursors over
// an indexable input, a result model ([Success], [Failure], [Result]) that
// represents parse outcomes as plain values, and the [Combinator] protocol
// that lets any parsing unit be uniformly composed. The one composite
// combinator included is [Action], which maps a successful value through a
// user function. Grammar combinators (sequence, choice, repetition) are built
// on top of these contracts, outside this package.
//
// # Design Philosophy
//
// cmb provides:
//   - Minimal but complete contracts for input access, outcomes, and composition
//   - Structural capability checks via interface satisfaction, no inheritance
//   - Value-typed readers and results so backtracking is a plain struct copy
//
// # Input Sources
//
// Any sequence with indexed element access and a length is a valid input:
//
//   - [Source]: the capability interface — At(i) and Len()
//   - [Text]: a string viewed as a byte sequence
//   - [Runes]: a rune slice, for code-point level grammars
//   - [Slice]: any element type, for token lists and byte buffers
//   - [NormalizedRunes]: NFC-normalized rune source for canonical positions
//
// # Reader
//
// [Reader] is a non-owning cursor over a [Source]. It is a small value type;
// combinators fork and backtrack by copying it, never by undoing mutations on
// shared state:
//
//   - [NewReader]: construct at cursor zero
//   - [Reader.Current], [Reader.Seek], [Reader.Next]: element access and motion
//   - [Reader.IsEnd], [Reader.Remaining]: end-of-input queries
//
// # Results
//
// A parse outcome is a value, never an error or a panic:
//
//   - [Success]: a produced value plus the count of unconsumed input
//   - [Failure]: the furthest input position reached before failing
//   - [Result]: exactly one of the two
//   - [Succeed], [Fail]: Result constructors
//   - [MatchResult]: pattern matching
//   - [MapResult]: transform the success value, failures pass through
//   - [FlatMapResult]: sequence result-producing functions
//
// [Failure.Merge] keeps the deeper of two failure positions. Choice-style
// combinators use it so the reported error is the most specific one among the
// alternatives that were attempted.
//
// # Combinator Protocol
//
// A combinator is any type satisfying [Combinator]: it parses from a [Reader]
// and carries a process-unique identity minted at construction:
//
//   - [Combinator]: the capability interface
//   - [Base]: embeddable identity provider, [NewBase] to construct
//   - [Apply]: wrap a combinator with a transform function, yielding [Action]
//
// Identity is diagnostic: strictly increasing, unique per instance, useful for
// memoization or tracing in layers built on this core. The counter is atomic,
// so constructing combinators from several goroutines is safe. Parsing itself
// touches no shared mutable state; independent reader copies may be driven in
// parallel freely.
//
// # Error Tiers
//
// Failed parses are ordinary [Result] values and are always returned, never
// thrown. Contract violations — reading past the end, seeking out of bounds,
// extracting the wrong [Result] variant — are programmer errors and panic with
// a "cmb: "-prefixed message. They must never be used for ordinary parse
// control flow.
//
// # Example
//
//	// one is a user combinator consuming a single byte.
//	type one struct{ cmb.Base }
//
//	func (one) Parse(in cmb.Reader[byte]) cmb.Result[byte] {
//		if in.IsEnd() {
//			return cmb.Fail[byte](cmb.NewFailure(in.Cursor()))
//		}
//		b := in.Current()
//		in.Next()
//		return cmb.Succeed(cmb.NewSuccess(b, in.Remaining()))
//	}
//
//	digit := cmb.Apply(one{Base: cmb.NewBase()}, func(b byte) int {
//		return int(b - '0')
//	})
//	res := digit.Parse(cmb.NewReader[byte](cmb.Text("7")))
//	// res.Success().Value() == 7, res.Success().Remaining() == 0
package cmb
