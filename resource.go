// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// Bracket acquires a resource, uses it, and releases it on every path.
//
// release runs after use whether use succeeded or failed. A failure of use
// is reported even if release also fails; a failure of release after a
// successful use fails the Task. If acquire fails, neither use nor release
// runs.
func Bracket[R, A, E any](
	acquire Task[R, E],
	release func(R) Task[struct{}, E],
	use func(R) Task[A, E],
) Task[A, E] {
	return Await(acquire, func(resource R) Task[A, E] {
		return Attempt(use(resource), func(used Result[A, E]) Task[A, E] {
			return Attempt(release(resource), func(released Result[struct{}, E]) Task[A, E] {
				if used.ok {
					if e, failed := released.GetErr(); failed {
						return Err[A](e)
					}
				}
				return FromResult(used)
			})
		})
	})
}

// Ensure runs finalizer after t on both paths and keeps t's outcome.
// A failing finalizer is ignored.
func Ensure[A, E any](t Task[A, E], finalizer Task[struct{}, E]) Task[A, E] {
	return Attempt(t, func(r Result[A, E]) Task[A, E] {
		return Attempt(finalizer, func(Result[struct{}, E]) Task[A, E] {
			return FromResult(r)
		})
	})
}
