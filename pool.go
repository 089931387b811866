// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import "sync"

// Continuation stacks for Run. A stack is owned by one evaluation and
// returned to the pool when Run finishes. Advance hands its stack to the
// caller through Suspension and never pools it.

const maxPooledStack = 1 << 10

var stackPool = sync.Pool{New: func() any { return new(machine) }}

func acquireMachine() *machine {
	return stackPool.Get().(*machine)
}

// releaseMachine clears m and returns it to the pool. Oversized stacks are
// dropped so that one deep evaluation does not pin memory.
func releaseMachine(m *machine) {
	if cap(m.stack) > maxPooledStack {
		return
	}
	clear(m.stack)
	m.stack = m.stack[:0]
	stackPool.Put(m)
}
