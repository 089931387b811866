// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"sync/atomic"
)

// Affine wraps a callback with one-shot enforcement.
// The callback can be invoked at most once; subsequent attempts panic
// (Resume) or return false (TryResume).
//
// Run hands every host an Affine resume, so a host that resumes the same
// effect twice is caught at the second call rather than corrupting the
// evaluation.
type Affine[A any] struct {
	used   atomic.Uintptr
	resume func(A)
}

// Once creates an affine callback from k.
func Once[A any](k func(A)) *Affine[A] {
	return &Affine[A]{resume: k}
}

// Resume invokes the callback with v.
// Panics if the callback has already been used.
func (a *Affine[A]) Resume(v A) {
	if a.used.Add(1) != 1 {
		panic("task: resumed twice")
	}
	a.resume(v)
}

// TryResume attempts to invoke the callback.
// Returns true on success, or false if already used.
func (a *Affine[A]) TryResume(v A) bool {
	if a.used.Add(1) != 1 {
		return false
	}
	a.resume(v)
	return true
}

// Discard marks the callback as used without invoking it.
func (a *Affine[A]) Discard() {
	a.used.Store(1)
}
