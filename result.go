// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// Result is the outcome of running a [Task]: exactly one of Ok or Err.
type Result[A, E any] struct {
	ok    bool
	value A
	err   E
}

// Never marks a channel that cannot be inhabited.
// Task[A, Never] never fails and Task[Never, E] never succeeds;
// no function in this package produces a Never value.
type Never struct{}

// OkResult creates a successful Result.
func OkResult[A, E any](a A) Result[A, E] {
	return Result[A, E]{ok: true, value: a}
}

// ErrResult creates a failed Result.
func ErrResult[A, E any](e E) Result[A, E] {
	return Result[A, E]{err: e}
}

// IsOk returns true if the Result holds a success value.
func (r Result[A, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result holds an error value.
func (r Result[A, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and true, or zero and false.
func (r Result[A, E]) Get() (A, bool) {
	if r.ok {
		return r.value, true
	}
	var zero A
	return zero, false
}

// GetErr returns the error value and true, or zero and false.
func (r Result[A, E]) GetErr() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

// MatchResult pattern matches on the Result, calling onOk or onErr.
func MatchResult[A, E, T any](r Result[A, E], onOk func(A) T, onErr func(E) T) T {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// MapResult applies f to the success value.
func MapResult[A, E, B any](r Result[A, E], f func(A) B) Result[B, E] {
	if r.ok {
		return OkResult[B, E](f(r.value))
	}
	return ErrResult[B](r.err)
}

// MapErrResult applies f to the error value.
func MapErrResult[A, E, F any](r Result[A, E], f func(E) F) Result[A, F] {
	if r.ok {
		return OkResult[A, F](r.value)
	}
	return ErrResult[A](f(r.err))
}

// FlatMapResult sequences two Result computations.
func FlatMapResult[A, E, B any](r Result[A, E], f func(A) Result[B, E]) Result[B, E] {
	if r.ok {
		return f(r.value)
	}
	return ErrResult[B](r.err)
}

// Outcome is the type-erased Result crossing the host boundary.
type Outcome = Result[Resumed, Resumed]

// Resolve creates a successful Outcome carrying v.
func Resolve(v Resumed) Outcome {
	return Outcome{ok: true, value: v}
}

// Reject creates a failed Outcome carrying e.
func Reject(e Resumed) Outcome {
	return Outcome{err: e}
}

// narrow recovers the typed Result from an Outcome.
// A nil payload narrows to the zero value of the target type.
func narrow[A, E any](o Outcome) Result[A, E] {
	if o.ok {
		if o.value == nil {
			var zero A
			return OkResult[A, E](zero)
		}
		return OkResult[A, E](o.value.(A))
	}
	if o.err == nil {
		var zero E
		return ErrResult[A](zero)
	}
	return ErrResult[A](o.err.(E))
}
