// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmb

import (
	"sync/atomic"
)

// Combinator is the capability every parsing unit satisfies: it carries a
// construction-time identity and parses from a [Reader] state, producing a
// [Result]. E is the input element type, T the produced value type.
//
// Satisfying the interface is the whole membership check — no base class, no
// registration. A concrete combinator embeds [Base] for the identity and
// implements Parse; it then composes with [Apply] and with everything built
// on this protocol.
//
// Parse must be a pure function of the reader state: it forks the reader by
// value and never mutates shared state, so independent parses of the same
// combinator may run in parallel.
type Combinator[E, T any] interface {
	// ID returns the process-unique identity assigned at construction.
	ID() uint64
	// Parse attempts a parse from the given reader state.
	Parse(in Reader[E]) Result[T]
}

// idCounter mints combinator identities. Atomic, so combinators may be
// constructed from several goroutines without duplicated identities.
var idCounter atomic.Uint64

// Base provides the identity half of the [Combinator] capability. Concrete
// combinators embed a Base obtained from [NewBase]; the promoted ID method
// satisfies the interface.
//
// The zero Base is not valid — identities exist only through NewBase.
type Base struct {
	id uint64
}

// NewBase assigns a fresh identity. Identities are strictly increasing and
// unique per combinator instance within the process.
func NewBase() Base {
	return Base{id: idCounter.Add(1)}
}

// ID returns the identity assigned at construction.
func (b Base) ID() uint64 { return b.id }

// Apply wraps a combinator with a transform function, yielding an [Action]
// that maps the combinator's successful value through fn. This is the one
// composition operation the protocol itself provides; it works uniformly for
// any type satisfying [Combinator].
func Apply[E, T, U any](c Combinator[E, T], fn func(T) U) Action[E, T, U] {
	if c == nil {
		panic("cmb: Apply on a nil combinator")
	}
	if fn == nil {
		panic("cmb: Apply with a nil transform")
	}
	return Action[E, T, U]{base: NewBase(), inner: c, fn: fn}
}
