// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task_test

import (
	"slices"
	"strings"
	"testing"

	"code.hybscloud.com/task"
)

// recorder collects the order in which deferred tasks run.
type recorder struct {
	log []string
}

func (r *recorder) ok(name string, v int) task.Task[int, string] {
	return task.Defer(func() task.Task[int, string] {
		r.log = append(r.log, name)
		return task.Ok[int, string](v)
	})
}

func (r *recorder) fail(name, e string) task.Task[int, string] {
	return task.Defer(func() task.Task[int, string] {
		r.log = append(r.log, name)
		return task.Err[int](e)
	})
}

func TestSequence(t *testing.T) {
	got := mustOk(t, task.Run(task.Sequence([]task.Task[int, string]{inc(0), inc(1), inc(2)}), calcHost))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
}

func TestSequenceEmpty(t *testing.T) {
	got := mustOk(t, task.Run(task.Sequence[int, string](nil), calcHost))
	if got == nil || len(got) != 0 {
		t.Fatalf("got %#v, want empty non-nil slice", got)
	}
}

func TestSequenceShortCircuits(t *testing.T) {
	var r recorder
	t3runs := 0
	t3 := task.Defer(func() task.Task[int, string] {
		t3runs++
		return task.Ok[int, string](3)
	})
	seq := task.Sequence([]task.Task[int, string]{r.ok("t1", 1), r.fail("t2", "t2 failed"), t3})
	if got := mustErr(t, task.Run(seq, calcHost)); got != "t2 failed" {
		t.Fatalf("got %q, want %q", got, "t2 failed")
	}
	if t3runs != 0 {
		t.Fatalf("t3 ran %d times after t2 failed", t3runs)
	}
	if !slices.Equal(r.log, []string{"t1", "t2"}) {
		t.Fatalf("order: got %v, want [t1 t2]", r.log)
	}
}

func TestSequenceIsRestartable(t *testing.T) {
	seq := task.Sequence([]task.Task[int, string]{inc(10), inc(20)})
	first := mustOk(t, task.Run(seq, calcHost))
	second := mustOk(t, task.Run(seq, calcHost))
	if !slices.Equal(first, second) || !slices.Equal(first, []int{11, 21}) {
		t.Fatalf("runs differ: %v vs %v", first, second)
	}
}

func TestSequenceCopiesInput(t *testing.T) {
	tasks := []task.Task[int, string]{inc(0), inc(1)}
	seq := task.Sequence(tasks)
	tasks[0] = boom("mutated")
	got := mustOk(t, task.Run(seq, calcHost))
	if !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", got)
	}
}

func TestForEachOrder(t *testing.T) {
	var seen []string
	each := task.ForEach([]string{"a", "b", "c"}, func(s string) task.Task[struct{}, string] {
		return task.Defer(func() task.Task[struct{}, string] {
			seen = append(seen, s)
			return task.Ok[struct{}, string](struct{}{})
		})
	})
	mustOk(t, task.Run(each, calcHost))
	if strings.Join(seen, "") != "abc" {
		t.Fatalf("order: got %v, want [a b c]", seen)
	}
}

func TestForEachStopsAtFailure(t *testing.T) {
	var seen []int
	each := task.ForEach([]int{1, 2, 3, 4}, func(n int) task.Task[struct{}, string] {
		seen = append(seen, n)
		if n == 2 {
			return task.Err[struct{}]("two")
		}
		return task.Ok[struct{}, string](struct{}{})
	})
	if got := mustErr(t, task.Run(each, calcHost)); got != "two" {
		t.Fatalf("got %q, want %q", got, "two")
	}
	if !slices.Equal(seen, []int{1, 2}) {
		t.Fatalf("visited %v, want [1 2]", seen)
	}
}

func TestBatchOrder(t *testing.T) {
	var r recorder
	tf := task.Map(r.ok("f", 0), func(int) func(int) int {
		return func(a int) int { return a * 100 }
	})
	got := mustOk(t, task.Run(task.Batch(tf, r.ok("a", 3)), calcHost))
	if got != 300 {
		t.Fatalf("got %d, want 300", got)
	}
	if !slices.Equal(r.log, []string{"f", "a"}) {
		t.Fatalf("order: got %v, want [f a]", r.log)
	}
}

func TestBatchFunctionFailureSkipsArgument(t *testing.T) {
	var r recorder
	tf := task.Map(r.fail("f", "no function"), func(int) func(int) int {
		return func(a int) int { return a }
	})
	if got := mustErr(t, task.Run(task.Batch(tf, r.ok("a", 1)), calcHost)); got != "no function" {
		t.Fatalf("got %q, want %q", got, "no function")
	}
	if !slices.Equal(r.log, []string{"f"}) {
		t.Fatalf("order: got %v, want [f]", r.log)
	}
}

func TestBoth(t *testing.T) {
	tb := task.Map(inc(1), func(n int) string { return strings.Repeat("x", n) })
	got := mustOk(t, task.Run(task.Both(inc(0), tb), calcHost))
	if got.Fst != 1 || got.Snd != "xx" {
		t.Fatalf("got %+v, want {1 xx}", got)
	}
}

func TestBothFailureOrder(t *testing.T) {
	var r recorder
	both := task.Both(r.fail("left", "left failed"), r.fail("right", "right failed"))
	if got := mustErr(t, task.Run(both, calcHost)); got != "left failed" {
		t.Fatalf("got %q, want %q", got, "left failed")
	}
	if !slices.Equal(r.log, []string{"left"}) {
		t.Fatalf("order: got %v, want [left]", r.log)
	}
}
