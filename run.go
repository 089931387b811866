// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// Run drives t to completion, submitting every effect to h in program
// order and waiting for each one to resume before continuing.
//
// Example:
//
//	r := task.Run(file.ReadUtf8(p), file.NewHost(osfs.Default()))
//	if s, ok := r.Get(); ok {
//	    fmt.Println(s)
//	}
func Run[A, E any](t Task[A, E], h Host) Result[A, E] {
	m := acquireMachine()
	defer releaseMachine(m)

	o, pending := m.eval(t.n)
	for pending != nil {
		o, pending = m.resume(submit(h, pending.op))
	}
	return narrow[A, E](o)
}

// submit hands op to h and blocks until h resumes.
func submit(h Host, op Operation) Outcome {
	if f, ok := h.(HostFunc); ok {
		return f(op)
	}
	done := make(chan Outcome, 1)
	k := Once(func(o Outcome) { done <- o })
	h.Submit(op, k.Resume)
	return <-done
}
