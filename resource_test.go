// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/task"
)

type handle struct {
	id int
}

func bracketHarness(r *recorder, releaseErr string) (task.Task[*handle, string], func(*handle) task.Task[struct{}, string]) {
	acquire := task.Defer(func() task.Task[*handle, string] {
		r.log = append(r.log, "acquire")
		return task.Ok[*handle, string](&handle{id: 7})
	})
	release := func(h *handle) task.Task[struct{}, string] {
		return task.Defer(func() task.Task[struct{}, string] {
			r.log = append(r.log, "release")
			if releaseErr != "" {
				return task.Err[struct{}](releaseErr)
			}
			return task.Ok[struct{}, string](struct{}{})
		})
	}
	return acquire, release
}

func TestBracketSuccess(t *testing.T) {
	var r recorder
	acquire, release := bracketHarness(&r, "")
	use := func(h *handle) task.Task[int, string] {
		r.log = append(r.log, "use")
		return inc(h.id)
	}
	if got := mustOk(t, task.Run(task.Bracket(acquire, release, use), calcHost)); got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
	if !slices.Equal(r.log, []string{"acquire", "use", "release"}) {
		t.Fatalf("order: got %v", r.log)
	}
}

func TestBracketReleasesOnFailure(t *testing.T) {
	var r recorder
	acquire, release := bracketHarness(&r, "")
	use := func(*handle) task.Task[int, string] { return boom("use failed") }
	if got := mustErr(t, task.Run(task.Bracket(acquire, release, use), calcHost)); got != "use failed" {
		t.Fatalf("got %q, want %q", got, "use failed")
	}
	if !slices.Equal(r.log, []string{"acquire", "release"}) {
		t.Fatalf("order: got %v", r.log)
	}
}

func TestBracketUseErrorWins(t *testing.T) {
	var r recorder
	acquire, release := bracketHarness(&r, "release failed")
	use := func(*handle) task.Task[int, string] { return boom("use failed") }
	if got := mustErr(t, task.Run(task.Bracket(acquire, release, use), calcHost)); got != "use failed" {
		t.Fatalf("got %q, want %q", got, "use failed")
	}
}

func TestBracketReleaseErrorAfterSuccess(t *testing.T) {
	var r recorder
	acquire, release := bracketHarness(&r, "release failed")
	use := func(h *handle) task.Task[int, string] { return inc(h.id) }
	if got := mustErr(t, task.Run(task.Bracket(acquire, release, use), calcHost)); got != "release failed" {
		t.Fatalf("got %q, want %q", got, "release failed")
	}
}

func TestBracketAcquireFailureSkipsRelease(t *testing.T) {
	var r recorder
	_, release := bracketHarness(&r, "")
	acquire := task.Err[*handle]("no handle")
	use := func(*handle) task.Task[int, string] {
		t.Fatal("use ran without a resource")
		return task.Ok[int, string](0)
	}
	if got := mustErr(t, task.Run(task.Bracket(acquire, release, use), calcHost)); got != "no handle" {
		t.Fatalf("got %q, want %q", got, "no handle")
	}
	if len(r.log) != 0 {
		t.Fatalf("release ran: %v", r.log)
	}
}

func TestEnsure(t *testing.T) {
	var r recorder
	finalizer := task.Map(r.ok("finally", 0), func(int) struct{} { return struct{}{} })

	if got := mustOk(t, task.Run(task.Ensure(inc(1), finalizer), calcHost)); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	if got := mustErr(t, task.Run(task.Ensure(boom("body"), finalizer), calcHost)); got != "body" {
		t.Fatalf("got %q, want %q", got, "body")
	}
	if !slices.Equal(r.log, []string{"finally", "finally"}) {
		t.Fatalf("finalizer runs: got %v", r.log)
	}
}

func TestEnsureIgnoresFinalizerFailure(t *testing.T) {
	finalizer := task.Err[struct{}]("cleanup failed")
	if got := mustOk(t, task.Run(task.Ensure(inc(4), finalizer), calcHost)); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}
