// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows)

package file

// classifyErrno has no error-number table on this platform; the io/fs
// sentinels in ClassifyWrite still apply.
func classifyErrno(error) (WriteErr, bool) {
	return WriteUnrecognized, false
}
