// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import "fmt"

// UnhandledEffectError is the panic value raised when a host built by
// [Dispatch] receives an operation it does not interpret.
// It signals a wiring mistake, never an ordinary failure.
type UnhandledEffectError struct {
	Host string
	Op   Operation
}

func (e *UnhandledEffectError) Error() string {
	return fmt.Sprintf("task: unhandled effect %T in %s", e.Op, e.Host)
}
