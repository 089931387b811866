// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task_test

import (
	"testing"

	"code.hybscloud.com/task"
)

func TestAdvancePure(t *testing.T) {
	r, s := task.Advance(task.Map(task.Ok[int, string](2), func(x int) int { return x * 5 }))
	if s != nil {
		t.Fatal("pure task suspended")
	}
	if got := mustOk(t, r); got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
}

func TestAdvanceStepsThroughEffects(t *testing.T) {
	tk := task.Await(inc(1), func(a int) task.Task[int, string] {
		return task.Map(inc(a), func(b int) int { return a + b })
	})

	_, s := task.Advance(tk)
	if s == nil {
		t.Fatal("expected suspension at first effect")
	}
	op, ok := s.Op().(Inc)
	if !ok || op.N != 1 {
		t.Fatalf("first op: got %#v", s.Op())
	}

	_, s = s.Resume(task.Resolve(100))
	if s == nil {
		t.Fatal("expected suspension at second effect")
	}
	if op, ok := s.Op().(Inc); !ok || op.N != 100 {
		t.Fatalf("second op: got %#v", s.Op())
	}

	r, s := s.Resume(task.Resolve(5))
	if s != nil {
		t.Fatal("expected completion")
	}
	if got := mustOk(t, r); got != 105 {
		t.Fatalf("got %d, want 105", got)
	}
}

func TestAdvanceReject(t *testing.T) {
	_, s := task.Advance(inc(0))
	r, next := s.Resume(task.Reject("host down"))
	if next != nil {
		t.Fatal("expected completion")
	}
	if got := mustErr(t, r); got != "host down" {
		t.Fatalf("got %q, want %q", got, "host down")
	}
}

func TestAdvanceMatchesRun(t *testing.T) {
	build := func() task.Task[[]int, string] {
		return task.Sequence([]task.Task[int, string]{inc(1), inc(2), inc(3)})
	}
	r, s := task.Advance(build())
	for s != nil {
		r, s = s.Resume(calc(s.Op()))
	}
	got := mustOk(t, r)
	want := mustOk(t, task.Run(build(), calcHost))
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSuspensionResumeTwicePanics(t *testing.T) {
	_, s := task.Advance(inc(0))
	s.Resume(task.Resolve(1))
	defer func() {
		r := recover()
		if msg, ok := r.(string); !ok || msg != "task: suspension resumed twice" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	s.Resume(task.Resolve(2))
	t.Fatal("expected panic")
}

func TestSuspensionTryResume(t *testing.T) {
	_, s := task.Advance(inc(0))
	r, next, ok := s.TryResume(task.Resolve(9))
	if !ok || next != nil {
		t.Fatalf("first TryResume: ok=%v next=%v", ok, next)
	}
	if got := mustOk(t, r); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
	if _, _, ok := s.TryResume(task.Resolve(10)); ok {
		t.Fatal("second TryResume succeeded")
	}
}

func TestSuspensionDiscard(t *testing.T) {
	_, s := task.Advance(inc(0))
	s.Discard()
	if _, _, ok := s.TryResume(task.Resolve(1)); ok {
		t.Fatal("TryResume succeeded after Discard")
	}
}
