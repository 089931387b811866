// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package task provides a deferred, possibly failing computation type and
// a small set of combinators over it, evaluated against a pluggable effect
// host.
//
// The core type [Task] describes a computation that, when driven to
// completion, yields a [Result]: exactly one of a success value or an error
// value. Constructing a Task performs nothing; [Run] and [Advance] drive it.
//
// # Design Philosophy
//
// task provides:
//   - One sequencing primitive, [Attempt]: run a computation, then hand its
//     Result to a continuation. Every other combinator is an adapter over it.
//   - One effect primitive, [Perform]: suspend on an operation and resume with
//     the [Outcome] a [Host] reports.
//   - Defunctionalized evaluation: Tasks are a graph of nodes walked by an
//     iterative evaluator with an explicit continuation stack, so loops and
//     long chains do not grow the Go stack.
//
// How an effect is carried out (inline, on a goroutine, by an event loop)
// is the host's business; combinators never know.
//
// # Core Operations
//
// Constructors:
//
//   - [Ok], [Err]: Always succeed / always fail
//   - [FromResult]: Lift a precomputed [Result]
//   - [Defer]: Build the Task when it runs
//
// Sequencing:
//
//   - [Attempt]: Run, then continue with the Result on either branch
//   - [Await]: Continue with the success value; failures propagate
//   - [OnErr]: Continue with the error value; successes propagate
//   - [Map], [MapErr]: Transform one channel, pass the other through
//   - [ToResult]: Reify failure into an always-succeeding Task
//   - [Then]: Sequence, discarding the first value
//
// Iteration and collections:
//
//   - [Loop]: Iterate a step function until [Done]; [Continue] carries state
//   - [Forever]: Repeat until the first failure
//   - [Sequence]: Run in order and collect values
//   - [ForEach]: Run in order for side effects
//   - [Batch], [Both]: Applicative composition, sequential by construction
//
// Resource safety:
//
//   - [Bracket]: Acquire, use, release on every path
//   - [Ensure]: Run a finalizer on every path
//
// All sequential forms short-circuit: after the first failure no later
// step runs.
//
// # Effects and Hosts
//
// Effects are defined as types implementing the F-bounded [Op] constraint
// (embed [Phantom] to get the marker). [Perform] suspends on such an
// operation; a [Host] performs it and resumes exactly once.
//
//   - [Host]: Submit(op, resume) boundary to the outside world
//   - [HostFunc]: Synchronous host
//   - [Dispatch]: Build a HostFunc from a structural dispatch function
//   - [Async]: Perform each operation on its own goroutine
//   - [Trace]: Report submissions and outcomes through a logf function
//
// An operation a host does not recognize is a wiring mistake and panics
// with [*UnhandledEffectError]. Ordinary failures always travel as data.
//
// # Evaluation
//
//   - [Run]: Drive a Task to completion against a Host
//   - [Advance]: Drive until the first effect, returning a [Suspension]
//   - [Suspension.Op]: The pending operation
//   - [Suspension.Resume]: Continue with an Outcome (panics on reuse)
//   - [Suspension.TryResume]: Non-panicking variant of Resume
//   - [Suspension.Discard]: Drop without resuming
//   - [Once]: Affine wrapper used for host resume callbacks
//
// Nil completion convention: an [Outcome] carrying a nil payload narrows to
// the zero value of the expected type.
//
// # Example
//
//	type Now struct{ task.Phantom[time.Time, error] }
//
//	stamp := task.Map(task.Perform[Now, time.Time, error](Now{}),
//	    func(t time.Time) string { return t.Format(time.RFC3339) })
//
//	r := task.Run(stamp, task.HostFunc(func(op task.Operation) task.Outcome {
//	    return task.Resolve(time.Now())
//	}))
package task
