// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// Collection and applicative combinators.
// All of them run their operands strictly left to right and stop at the
// first failure; none of them introduces parallelism.

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

type sequenceState[A any] struct {
	i   int
	acc []A
}

// Sequence runs tasks in order and collects their values in input order.
// The first failure stops the sequence; later tasks never run.
func Sequence[A, E any](tasks []Task[A, E]) Task[[]A, E] {
	ts := append([]Task[A, E](nil), tasks...)
	return Defer(func() Task[[]A, E] {
		start := sequenceState[A]{acc: make([]A, 0, len(ts))}
		return Loop(start, func(s sequenceState[A]) Task[Step[sequenceState[A], []A], E] {
			if s.i == len(ts) {
				return Ok[Step[sequenceState[A], []A], E](Done[sequenceState[A]](s.acc))
			}
			return Map(ts[s.i], func(a A) Step[sequenceState[A], []A] {
				return Continue[sequenceState[A], []A](sequenceState[A]{i: s.i + 1, acc: append(s.acc, a)})
			})
		})
	})
}

// ForEach runs f for each item in order, discarding the success values.
// The first failure stops the iteration; later items are never visited.
func ForEach[T, E any](items []T, f func(T) Task[struct{}, E]) Task[struct{}, E] {
	xs := append([]T(nil), items...)
	return Loop(0, func(i int) Task[Step[int, struct{}], E] {
		if i == len(xs) {
			return Ok[Step[int, struct{}], E](Done[int](struct{}{}))
		}
		return Map(f(xs[i]), func(struct{}) Step[int, struct{}] {
			return Continue[int, struct{}](i + 1)
		})
	})
}

// Batch applies the function produced by tf to the value produced by ta.
// tf runs first, then ta; Batch is exactly Await(tf, Map(ta, f)) and never
// runs its operands concurrently.
func Batch[A, B, E any](tf Task[func(A) B, E], ta Task[A, E]) Task[B, E] {
	return Await(tf, func(f func(A) B) Task[B, E] {
		return Map(ta, f)
	})
}

// Both runs ta then tb and pairs their values.
func Both[A, B, E any](ta Task[A, E], tb Task[B, E]) Task[Pair[A, B], E] {
	tf := Map(ta, func(a A) func(B) Pair[A, B] {
		return func(b B) Pair[A, B] { return Pair[A, B]{Fst: a, Snd: b} }
	})
	return Batch(tf, tb)
}
