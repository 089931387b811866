// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// Task is a deferred computation that yields a [Result] when driven by
// [Run] or [Advance].
//
// A Task is an immutable description: constructing one performs nothing,
// and the same value may be run again, each run being independent.
// The zero Task succeeds with the zero value of A.
type Task[A, E any] struct {
	n node
}

// Ok lifts a pure value into a Task that always succeeds.
func Ok[A, E any](a A) Task[A, E] {
	return Task[A, E]{n: &pureNode{value: a}}
}

// Err lifts an error value into a Task that always fails.
func Err[A, E any](e E) Task[A, E] {
	return Task[A, E]{n: &failNode{err: e}}
}

// FromResult lifts a precomputed Result into a Task.
func FromResult[A, E any](r Result[A, E]) Task[A, E] {
	if r.ok {
		return Ok[A, E](r.value)
	}
	return Err[A](r.err)
}

// Defer builds the Task with f each time it runs.
// Side effects in f happen at run time, not at construction.
func Defer[A, E any](f func() Task[A, E]) Task[A, E] {
	return Task[A, E]{n: &deferNode{build: func() node { return f().n }}}
}

// Attempt runs t and always passes its Result to f, on either branch.
//
// Attempt is the single sequencing primitive: every other combinator in
// this package is an adapter over it.
func Attempt[A, E, B, F any](t Task[A, E], f func(Result[A, E]) Task[B, F]) Task[B, F] {
	return Task[B, F]{n: &afterNode{
		src: t.n,
		next: func(o Outcome) node {
			return f(narrow[A, E](o)).n
		},
	}}
}

// Await runs t; on success it feeds the value to f and runs the resulting
// Task. Failure of t propagates untouched and f is never called.
func Await[A, B, E any](t Task[A, E], f func(A) Task[B, E]) Task[B, E] {
	return Attempt(t, func(r Result[A, E]) Task[B, E] {
		if r.ok {
			return f(r.value)
		}
		return Err[B](r.err)
	})
}

// OnErr runs t; on failure it feeds the error to f and runs the resulting
// Task. Success of t passes through unchanged.
func OnErr[A, E, F any](t Task[A, E], f func(E) Task[A, F]) Task[A, F] {
	return Attempt(t, func(r Result[A, E]) Task[A, F] {
		if r.ok {
			return Ok[A, F](r.value)
		}
		return f(r.err)
	})
}

// Map applies a pure function to the success value of t.
func Map[A, B, E any](t Task[A, E], f func(A) B) Task[B, E] {
	return Attempt(t, func(r Result[A, E]) Task[B, E] {
		return FromResult(MapResult(r, f))
	})
}

// MapErr applies a pure function to the error value of t.
func MapErr[A, E, F any](t Task[A, E], f func(E) F) Task[A, F] {
	return Attempt(t, func(r Result[A, E]) Task[A, F] {
		return FromResult(MapErrResult(r, f))
	})
}

// ToResult reifies the outcome of t into an always-succeeding Task.
// This is how callers catch a failure without leaving the Task world.
func ToResult[A, E any](t Task[A, E]) Task[Result[A, E], Never] {
	return Attempt(t, func(r Result[A, E]) Task[Result[A, E], Never] {
		return Ok[Result[A, E], Never](r)
	})
}

// Then runs t, discards its value, and runs next.
func Then[A, B, E any](t Task[A, E], next Task[B, E]) Task[B, E] {
	return Await(t, func(A) Task[B, E] { return next })
}
