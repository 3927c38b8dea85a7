// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmb

import (
	"golang.org/x/text/unicode/norm"
)

// Source is the capability an input sequence must satisfy to be read by a
// [Reader]: indexed element access and a total length. Satisfying the
// interface is the whole requirement — any text buffer, token list, or byte
// slice qualifies with no adapter code.
//
// At must be valid for all i in [0, Len()). The sequence must not change
// while a parse over it is in flight.
type Source[E any] interface {
	// At returns the element at index i.
	At(i int) E
	// Len returns the number of elements in the sequence.
	Len() int
}

// Text is a string viewed as a byte sequence.
type Text string

// At returns the byte at index i.
func (t Text) At(i int) byte { return t[i] }

// Len returns the length of the string in bytes.
func (t Text) Len() int { return len(t) }

// Runes is a rune slice source, for grammars over Unicode code points.
type Runes []rune

// At returns the rune at index i.
func (r Runes) At(i int) rune { return r[i] }

// Len returns the number of runes.
func (r Runes) Len() int { return len(r) }

// Slice is a generic slice source, for token lists and byte buffers.
type Slice[E any] []E

// At returns the element at index i.
func (s Slice[E]) At(i int) E { return s[i] }

// Len returns the number of elements.
func (s Slice[E]) Len() int { return len(s) }

// NormalizedRunes converts s to a [Runes] source after NFC normalization.
// Canonically equivalent encodings of the same text (for example "é" as one
// code point or as 'e' plus a combining accent) normalize to identical rune
// sequences, so cursor positions and failure positions are stable across them.
func NormalizedRunes(s string) Runes {
	return Runes(norm.NFC.String(s))
}
