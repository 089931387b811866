// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// unhandledEffect panics with a descriptive message for unmatched operations.
//
//go:noinline
func unhandledEffect(host string, op Operation) {
	panic(&UnhandledEffectError{Host: host, Op: op})
}

// Operation is the interface for effect operations submitted to a [Host].
type Operation any

// Resumed is the interface for values flowing back from a [Host].
type Resumed any

// Op is the F-bounded interface for effect operations.
// Each effect defines a concrete type implementing Op with the success and
// error types it resumes with. The self-referencing constraint gives the
// compiler knowledge of both the concrete operation and its result.
//
// Example:
//
//	type Now struct{ task.Phantom[time.Time, error] }
type Op[O Op[O, A, E], A, E any] interface {
	OpResult() Result[A, E] // phantom type marker for result
}

// Phantom is an embeddable zero-size type that provides the [Op] result marker.
type Phantom[A, E any] struct{}

// OpResult implements the phantom type marker for [Op].
func (Phantom[A, E]) OpResult() Result[A, E] { panic("phantom") }

// Host performs effect operations on behalf of a running [Task].
//
// Submit starts op and calls resume exactly once with its [Outcome].
// The call may happen before Submit returns or later from another
// goroutine; the evaluator waits either way. Calling resume twice panics.
type Host interface {
	Submit(op Operation, resume func(Outcome))
}

// HostFunc adapts a synchronous function to [Host].
type HostFunc func(op Operation) Outcome

// Submit implements Host by calling f and resuming immediately.
func (f HostFunc) Submit(op Operation, resume func(Outcome)) {
	resume(f(op))
}

// Perform suspends on op and resumes with the host's outcome.
// This is the only primitive that leaves the evaluator.
func Perform[O Op[O, A, E], A, E any](op O) Task[A, E] {
	return Task[A, E]{n: &effectNode{op: op}}
}

// Suspend is the untyped form of [Perform] for operations that do not
// declare an [Op] type. The host must resume with values of type A or E.
func Suspend[A, E any](op Operation) Task[A, E] {
	return Task[A, E]{n: &effectNode{op: op}}
}

// Dispatch returns a [HostFunc] that interprets operations with dispatch
// against ctx. When dispatch reports false the operation is unhandled and
// the host panics with [*UnhandledEffectError] naming the host.
//
// The usual dispatch function is structural: each effect family defines
// one method taking its context, and operations carry their own
// interpretation.
func Dispatch[C any](name string, ctx C, dispatch func(op Operation, ctx C) (Outcome, bool)) HostFunc {
	return func(op Operation) Outcome {
		if o, ok := dispatch(op, ctx); ok {
			return o
		}
		unhandledEffect(name, op)
		return Outcome{}
	}
}
