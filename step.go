// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import "sync/atomic"

// Stepping boundary for external schedulers.
// Advance yields control at each effect instead of calling a Host, so an
// event loop or cooperative scheduler can perform the effect however it
// likes and resume later.

// Suspension is a Task paused on an effect operation.
// It holds the pending operation and a one-shot resumption handle.
//
// Suspension enforces affine semantics: Resume may be called at most once.
// Calling Resume twice panics. Use Discard to explicitly abandon it.
type Suspension[A, E any] struct {
	used atomic.Uintptr
	op   Operation
	m    *machine
}

// Op returns the effect operation that caused the suspension.
func (s *Suspension[A, E]) Op() Operation { return s.op }

// Resume advances the Task with the host's outcome for Op.
// Returns either the final Result (with nil suspension) or the next
// suspension. Panics if the suspension has already been resumed or
// discarded.
func (s *Suspension[A, E]) Resume(o Outcome) (Result[A, E], *Suspension[A, E]) {
	if s.used.Add(1) != 1 {
		panic("task: suspension resumed twice")
	}
	out, pending := s.m.resume(o)
	return classify[A, E](s.m, out, pending)
}

// TryResume attempts to advance the Task.
// Returns (result, suspension, true) on success, or (zero, nil, false)
// if already used.
func (s *Suspension[A, E]) TryResume(o Outcome) (Result[A, E], *Suspension[A, E], bool) {
	if s.used.Add(1) != 1 {
		return Result[A, E]{}, nil, false
	}
	out, pending := s.m.resume(o)
	r, next := classify[A, E](s.m, out, pending)
	return r, next, true
}

// Discard marks the suspension as consumed without resuming.
func (s *Suspension[A, E]) Discard() {
	s.used.Store(1)
	s.m = nil
}

// Advance drives t until it either completes or suspends on an effect.
// Returns (result, nil) if the Task completed, or (zero, suspension) if
// an effect is pending.
//
// Example:
//
//	r, susp := task.Advance(t)
//	for susp != nil {
//	    r, susp = susp.Resume(perform(susp.Op()))
//	}
func Advance[A, E any](t Task[A, E]) (Result[A, E], *Suspension[A, E]) {
	m := new(machine)
	out, pending := m.eval(t.n)
	return classify[A, E](m, out, pending)
}

// classify turns an evaluator result into either a final Result or a
// fresh Suspension owning m.
func classify[A, E any](m *machine, o Outcome, pending *effectNode) (Result[A, E], *Suspension[A, E]) {
	if pending != nil {
		return Result[A, E]{}, &Suspension[A, E]{op: pending.op, m: m}
	}
	return narrow[A, E](o), nil
}
