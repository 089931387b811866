// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// Step tells [Loop] whether to continue with a new state or stop with a
// final value.
type Step[S, D any] struct {
	done  bool
	state S
	value D
}

// Continue continues the loop with state s.
func Continue[S, D any](s S) Step[S, D] {
	return Step[S, D]{state: s}
}

// Done terminates the loop with value d.
func Done[S, D any](d D) Step[S, D] {
	return Step[S, D]{done: true, value: d}
}

// IsDone returns true if the step terminates the loop.
func (s Step[S, D]) IsDone() bool { return s.done }

// State returns the carried state and true, or zero and false.
func (s Step[S, D]) State() (S, bool) {
	if !s.done {
		return s.state, true
	}
	var zero S
	return zero, false
}

// Value returns the final value and true, or zero and false.
func (s Step[S, D]) Value() (D, bool) {
	if s.done {
		return s.value, true
	}
	var zero D
	return zero, false
}

// Loop runs step with the current state until it returns [Done] or fails.
// A [Continue] result runs step again with the new state; a failure ends
// the loop with that error.
//
// The loop is driven by the evaluator's iteration, not by recursion, so
// the number of iterations is not bounded by stack depth.
//
// Example:
//
//	count := task.Loop(0, func(n int) task.Task[task.Step[int, int], error] {
//	    if n < 3 {
//	        return task.Ok[task.Step[int, int], error](task.Continue[int, int](n + 1))
//	    }
//	    return task.Ok[task.Step[int, int], error](task.Done[int](n))
//	})
func Loop[S, D, E any](state S, step func(S) Task[Step[S, D], E]) Task[D, E] {
	var iterate func(S) node
	iterate = func(s S) node {
		return &afterNode{
			src: step(s).n,
			next: func(o Outcome) node {
				if !o.ok {
					return &failNode{err: o.err}
				}
				st := narrow[Step[S, D], E](o).value
				if st.done {
					return &pureNode{value: st.value}
				}
				return iterate(st.state)
			},
		}
	}
	return Task[D, E]{n: &deferNode{build: func() node { return iterate(state) }}}
}

// Forever runs t repeatedly until it fails, then fails with that error.
// It never succeeds.
func Forever[A, E any](t Task[A, E]) Task[Never, E] {
	loop := &afterNode{src: t.n}
	loop.next = func(o Outcome) node {
		if !o.ok {
			return &failNode{err: o.err}
		}
		return loop
	}
	return Task[Never, E]{n: loop}
}
