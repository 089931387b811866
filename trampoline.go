// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// machine is the iterative evaluator for the node graph.
//
// Pending continuations live on an explicit stack instead of the Go call
// stack, so Loop, Forever and long Await chains run in constant Go stack
// depth. The only suspension point is an effectNode.
type machine struct {
	stack []func(Outcome) node
}

func (m *machine) push(k func(Outcome) node) {
	m.stack = append(m.stack, k)
}

func (m *machine) pop() func(Outcome) node {
	i := len(m.stack) - 1
	k := m.stack[i]
	m.stack[i] = nil
	m.stack = m.stack[:i]
	return k
}

// eval drives n until it completes or reaches an effect.
// Returns (outcome, nil) on completion, or the pending effect node.
func (m *machine) eval(n node) (Outcome, *effectNode) {
	for {
		var o Outcome
		switch x := n.(type) {
		case nil:
			o = Resolve(nil)
		case *pureNode:
			o = Resolve(x.value)
		case *failNode:
			o = Reject(x.err)
		case *afterNode:
			m.push(x.next)
			n = x.src
			continue
		case *deferNode:
			n = x.build()
			continue
		case *effectNode:
			return Outcome{}, x
		default:
			panic("task: unknown node type")
		}
		if len(m.stack) == 0 {
			return o, nil
		}
		n = m.pop()(o)
	}
}

// resume delivers the host's outcome to the innermost pending
// continuation and keeps evaluating.
func (m *machine) resume(o Outcome) (Outcome, *effectNode) {
	if len(m.stack) == 0 {
		return o, nil
	}
	return m.eval(m.pop()(o))
}
