// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmb

// Parse outcomes.
// A failed parse is a plain value, propagated by returning it — never a panic
// and never an error. Panics here mark contract violations only: extracting
// the variant a Result does not hold.

// Success is the outcome of a parse that produced a value. It owns the value
// and records how many input elements were left unconsumed.
type Success[T any] struct {
	value     T
	remaining int
}

// NewSuccess creates a Success holding value, with remaining elements of
// input left unconsumed.
func NewSuccess[T any](value T, remaining int) Success[T] {
	return Success[T]{value: value, remaining: remaining}
}

// Value returns the produced value.
func (s Success[T]) Value() T { return s.value }

// Remaining returns the count of unconsumed input elements.
func (s Success[T]) Remaining() int { return s.remaining }

// Failure is the outcome of a parse that failed. It records the furthest
// input position reached before failing, across every alternative attempted
// up to this point.
type Failure struct {
	furthest int
}

// NewFailure creates a Failure that reached position furthest.
func NewFailure(furthest int) Failure {
	return Failure{furthest: furthest}
}

// Furthest returns the deepest input position reached before failing.
func (f Failure) Furthest() int { return f.furthest }

// Merge combines two failures, keeping the deeper position. Choice-style
// combinators fold the failures of their alternatives through Merge so the
// reported error is the most specific one.
func (f Failure) Merge(other Failure) Failure {
	if other.furthest > f.furthest {
		return other
	}
	return f
}

// Result is a parse outcome: exactly one of a [Success] or a [Failure].
// The zero value is a Failure at position zero.
type Result[T any] struct {
	isSuccess bool
	success   Success[T]
	failure   Failure
}

// Succeed creates a Result holding the given Success.
func Succeed[T any](s Success[T]) Result[T] {
	return Result[T]{isSuccess: true, success: s}
}

// Fail creates a Result holding the given Failure.
func Fail[T any](f Failure) Result[T] {
	return Result[T]{failure: f}
}

// IsSuccess reports whether the Result holds a Success.
func (r Result[T]) IsSuccess() bool { return r.isSuccess }

// IsFailure reports whether the Result holds a Failure.
func (r Result[T]) IsFailure() bool { return !r.isSuccess }

// Success returns the held Success.
// Panics if the Result holds a Failure; callers check IsSuccess first or use
// GetSuccess.
func (r Result[T]) Success() Success[T] {
	if !r.isSuccess {
		panic("cmb: Success called on a failure result")
	}
	return r.success
}

// Failure returns the held Failure.
// Panics if the Result holds a Success; callers check IsFailure first or use
// GetFailure.
func (r Result[T]) Failure() Failure {
	if r.isSuccess {
		panic("cmb: Failure called on a success result")
	}
	return r.failure
}

// GetSuccess returns the Success and true, or zero and false.
func (r Result[T]) GetSuccess() (Success[T], bool) {
	if r.isSuccess {
		return r.success, true
	}
	return Success[T]{}, false
}

// GetFailure returns the Failure and true, or zero and false.
func (r Result[T]) GetFailure() (Failure, bool) {
	if !r.isSuccess {
		return r.failure, true
	}
	return Failure{}, false
}

// MatchResult pattern matches on the Result, calling onSuccess or onFailure.
func MatchResult[T, R any](r Result[T], onSuccess func(Success[T]) R, onFailure func(Failure) R) R {
	if r.isSuccess {
		return onSuccess(r.success)
	}
	return onFailure(r.failure)
}

// MapResult applies a pure function to the success value, preserving the
// remaining count. Failures pass through untouched and f is never called.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.isSuccess {
		return Succeed(NewSuccess(f(r.success.value), r.success.remaining))
	}
	return Fail[U](r.failure)
}

// FlatMapResult sequences a result-producing function after a Result.
// The function receives the success value and its remaining count; failures
// pass through untouched and f is never called.
func FlatMapResult[T, U any](r Result[T], f func(T, int) Result[U]) Result[U] {
	if r.isSuccess {
		return f(r.success.value, r.success.remaining)
	}
	return Fail[U](r.failure)
}
