// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmb

// Action is the composite combinator produced by [Apply]. It owns the wrapped
// combinator and the transform function outright; nothing is shared between
// an Action and the combinator it was built from.
//
// Invocation is transparent to failure: only the success path is transformed.
type Action[E, T, U any] struct {
	base  Base
	inner Combinator[E, T]
	fn    func(T) U
}

// ID returns the identity assigned when the Action was constructed.
func (a Action[E, T, U]) ID() uint64 { return a.base.ID() }

// Parse invokes the wrapped combinator on the reader state. On
// Success(v, remaining) it returns Success(fn(v), remaining) — the remaining
// count untouched. A Failure is returned unchanged and fn is never called.
func (a Action[E, T, U]) Parse(in Reader[E]) Result[U] {
	return MapResult(a.inner.Parse(in), a.fn)
}
