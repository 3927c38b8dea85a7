// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmb

// Reader is a non-owning cursor over a [Source]. It holds a view of the
// sequence plus an integer offset, so copying a Reader is cheap; combinators
// fork and backtrack by copying the value and never touch shared state.
//
// The source must outlive every Reader over it and must not change during a
// parse. The cursor stays within [0, Len]; the position equal to Len
// represents end of input.
type Reader[E any] struct {
	source Source[E]
	cursor int
}

// NewReader constructs a Reader over src with the cursor at zero.
// Panics if src is nil: a Reader never owns its input, so there must be an
// input to view.
func NewReader[E any](src Source[E]) Reader[E] {
	if src == nil {
		panic("cmb: reader source must not be nil")
	}
	return Reader[E]{source: src}
}

// Source returns the sequence the Reader views.
func (r Reader[E]) Source() Source[E] { return r.source }

// Cursor returns the current offset.
func (r Reader[E]) Cursor() int { return r.cursor }

// IsEnd reports whether the cursor is at end of input.
func (r Reader[E]) IsEnd() bool { return r.cursor == r.source.Len() }

// Remaining returns the number of elements left from the cursor to the end.
func (r Reader[E]) Remaining() int { return r.source.Len() - r.cursor }

// Current returns the element at the cursor.
// Panics when IsEnd() holds; callers check IsEnd first.
func (r Reader[E]) Current() E {
	if r.IsEnd() {
		panic("cmb: Current called at end of input")
	}
	return r.source.At(r.cursor)
}

// Seek moves the cursor to idx. The position equal to the source length is
// allowed and represents end of input. Panics when idx is out of bounds.
func (r *Reader[E]) Seek(idx int) {
	if idx < 0 || idx > r.source.Len() {
		panic("cmb: Seek index out of bounds")
	}
	r.cursor = idx
}

// Next advances the cursor by one element, equivalent to Seek(Cursor()+1).
// Panics when IsEnd() holds.
func (r *Reader[E]) Next() {
	if r.IsEnd() {
		panic("cmb: Next called at end of input")
	}
	r.Seek(r.cursor + 1)
}
