// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// erased represents a type-erased value in the node graph.
// Concrete types are recovered by narrow at continuation boundaries.
type erased = any

// node is a defunctionalized Task. The evaluator dispatches on the
// concrete type with a type switch; node is a pure marker interface.
type node interface {
	node() // unexported marker method
}

// pureNode completes successfully with value.
type pureNode struct {
	value erased
}

func (*pureNode) node() {}

// failNode completes with err.
type failNode struct {
	err erased
}

func (*failNode) node() {}

// effectNode suspends the evaluator on op until the host resumes it.
type effectNode struct {
	op Operation
}

func (*effectNode) node() {}

// afterNode runs src, then hands its outcome to next to obtain the
// node to continue with.
type afterNode struct {
	src  node
	next func(Outcome) node
}

func (*afterNode) node() {}

// deferNode builds its node when the evaluator reaches it.
type deferNode struct {
	build func() node
}

func (*deferNode) node() {}
