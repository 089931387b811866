// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task_test

import (
	"testing"

	"code.hybscloud.com/task"
)

func TestLoopCountsToThree(t *testing.T) {
	continues := 0
	step := func(n int) task.Task[task.Step[int, int], string] {
		if n < 3 {
			continues++
			return task.Ok[task.Step[int, int], string](task.Continue[int, int](n + 1))
		}
		return task.Ok[task.Step[int, int], string](task.Done[int](n))
	}
	got := mustOk(t, task.Run(task.Loop(0, step), calcHost))
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if continues != 3 {
		t.Fatalf("continued %d times, want 3", continues)
	}
}

func TestLoopWithEffects(t *testing.T) {
	const n = 100_000
	loop := task.Loop(0, func(i int) task.Task[task.Step[int, int], string] {
		if i == n {
			return task.Ok[task.Step[int, int], string](task.Done[int](i))
		}
		return task.Map(inc(i), task.Continue[int, int])
	})
	if got := mustOk(t, task.Run(loop, calcHost)); got != n {
		t.Fatalf("got %d, want %d", got, n)
	}
}

func TestLoopPropagatesFailure(t *testing.T) {
	iterations := 0
	loop := task.Loop(0, func(i int) task.Task[task.Step[int, string], string] {
		iterations++
		if i == 4 {
			return task.Err[task.Step[int, string]]("stopped at 4")
		}
		return task.Ok[task.Step[int, string], string](task.Continue[int, string](i + 1))
	})
	if got := mustErr(t, task.Run(loop, calcHost)); got != "stopped at 4" {
		t.Fatalf("got %q, want %q", got, "stopped at 4")
	}
	if iterations != 5 {
		t.Fatalf("step ran %d times, want 5", iterations)
	}
}

func TestLoopIsRestartable(t *testing.T) {
	loop := task.Loop(1, func(i int) task.Task[task.Step[int, int], string] {
		if i >= 64 {
			return task.Ok[task.Step[int, int], string](task.Done[int](i))
		}
		return task.Ok[task.Step[int, int], string](task.Continue[int, int](i * 2))
	})
	for range 3 {
		if got := mustOk(t, task.Run(loop, calcHost)); got != 64 {
			t.Fatalf("got %d, want 64", got)
		}
	}
}

func TestStepAccessors(t *testing.T) {
	c := task.Continue[int, string](7)
	if c.IsDone() {
		t.Fatal("Continue reports done")
	}
	if s, ok := c.State(); !ok || s != 7 {
		t.Fatalf("State: got (%d, %v), want (7, true)", s, ok)
	}
	if _, ok := c.Value(); ok {
		t.Fatal("Value on Continue reported a value")
	}

	d := task.Done[int]("fin")
	if !d.IsDone() {
		t.Fatal("Done reports not done")
	}
	if v, ok := d.Value(); !ok || v != "fin" {
		t.Fatalf("Value: got (%q, %v), want (fin, true)", v, ok)
	}
	if _, ok := d.State(); ok {
		t.Fatal("State on Done reported a state")
	}
}

func TestForeverStopsOnFifthFailure(t *testing.T) {
	invocations := 0
	body := task.Defer(func() task.Task[struct{}, string] {
		invocations++
		if invocations == 5 {
			return task.Err[struct{}]("fifth")
		}
		return task.Ok[struct{}, string](struct{}{})
	})
	got := mustErr(t, task.Run(task.Forever(body), calcHost))
	if got != "fifth" {
		t.Fatalf("got %q, want %q", got, "fifth")
	}
	if invocations != 5 {
		t.Fatalf("body ran %d times, want 5", invocations)
	}
}

func TestForeverWithEffects(t *testing.T) {
	const limit = 50_000
	n := 0
	body := task.Await(task.Defer(func() task.Task[int, string] {
		n++
		return task.Ok[int, string](n)
	}), func(i int) task.Task[int, string] {
		if i == limit {
			return boom("limit")
		}
		return inc(i)
	})
	if got := mustErr(t, task.Run(task.Forever(body), calcHost)); got != "limit" {
		t.Fatalf("got %q, want %q", got, "limit")
	}
	if n != limit {
		t.Fatalf("body ran %d times, want %d", n, limit)
	}
}
