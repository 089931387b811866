// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// Host adapters. They change how an effect is carried out (inline, on a
// goroutine, observed) without touching the combinators above them.

// asyncHost performs each operation on its own goroutine.
type asyncHost struct {
	h HostFunc
}

func (a asyncHost) Submit(op Operation, resume func(Outcome)) {
	go func() {
		resume(a.h(op))
	}()
}

// Async returns a Host that performs each operation of h on a new
// goroutine and resumes by callback. Effects of one Task still run one at
// a time and in program order.
func Async(h HostFunc) Host {
	return asyncHost{h: h}
}

// traceHost reports every submission and outcome through logf.
type traceHost struct {
	h    Host
	logf func(format string, args ...any)
}

func (t traceHost) Submit(op Operation, resume func(Outcome)) {
	t.logf("task: submit %T", op)
	t.h.Submit(op, func(o Outcome) {
		if o.ok {
			t.logf("task: %T ok", op)
		} else {
			t.logf("task: %T failed: %v", op, o.err)
		}
		resume(o)
	})
}

// Trace wraps h so that every submitted operation and its outcome are
// reported through logf. log.Printf satisfies logf.
func Trace(h Host, logf func(format string, args ...any)) Host {
	return traceHost{h: h, logf: logf}
}
