// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"code.hybscloud.com/task"
)

func TestAffineResume(t *testing.T) {
	var got int
	aff := task.Once(func(x int) { got = x })
	aff.Resume(42)
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if aff.TryResume(0) {
		t.Fatal("expected TryResume to fail after Resume")
	}
}

func TestAffinePanicOnReuse(t *testing.T) {
	aff := task.Once(func(int) {})
	aff.Resume(10)
	defer func() {
		r := recover()
		if s, ok := r.(string); !ok || s != "task: resumed twice" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()
	aff.Resume(20)
}

func TestAffineTryResume(t *testing.T) {
	calls := 0
	aff := task.Once(func(int) { calls++ })
	if !aff.TryResume(1) {
		t.Fatal("expected first TryResume to succeed")
	}
	if aff.TryResume(2) {
		t.Fatal("expected second TryResume to fail")
	}
	if calls != 1 {
		t.Fatalf("continuation ran %d times, want 1", calls)
	}
}

func TestAffineDiscard(t *testing.T) {
	aff := task.Once(func(int) { t.Fatal("discarded continuation ran") })
	aff.Discard()
	if aff.TryResume(1) {
		t.Fatal("expected TryResume to fail after Discard")
	}
}

func TestAffineConcurrentTryResume(t *testing.T) {
	var calls atomic.Int32
	aff := task.Once(func(int) { calls.Add(1) })
	var wg sync.WaitGroup
	var wins atomic.Int32
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if aff.TryResume(i) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	if wins.Load() != 1 || calls.Load() != 1 {
		t.Fatalf("wins=%d calls=%d, want 1 and 1", wins.Load(), calls.Load())
	}
}
