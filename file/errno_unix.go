// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package file

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// classifyErrno maps a POSIX error number found in err's chain.
func classifyErrno(err error) (WriteErr, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return WriteUnrecognized, false
	}
	if errno == unix.ENOTSUP || errno == unix.EOPNOTSUPP || errno == unix.ENOSYS {
		return WriteUnsupported, true
	}
	switch errno {
	case unix.ENOENT, unix.ENOTDIR:
		return WriteNotFound, true
	case unix.EINTR:
		return WriteInterrupted, true
	case unix.ENAMETOOLONG, unix.EINVAL, unix.EILSEQ:
		return WriteInvalidFilename, true
	case unix.EACCES, unix.EPERM:
		return WritePermissionDenied, true
	case unix.ELOOP:
		return WriteTooManySymlinks, true
	case unix.EMLINK:
		return WriteTooManyHardlinks, true
	case unix.ETIMEDOUT:
		return WriteTimedOut, true
	case unix.ESTALE:
		return WriteStaleNetworkFileHandle, true
	case unix.ENOMEM:
		return WriteOutOfMemory, true
	case unix.EROFS:
		return WriteReadOnlyFilesystem, true
	case unix.EEXIST:
		return WriteAlreadyExists, true
	case unix.EISDIR:
		return WriteWasADirectory, true
	case unix.ENOSPC:
		return WriteStorageFull, true
	case unix.EDQUOT:
		return WriteFilesystemQuotaExceeded, true
	case unix.EFBIG:
		return WriteFileTooLarge, true
	case unix.EBUSY:
		return WriteResourceBusy, true
	case unix.ETXTBSY:
		return WriteExecutableFileBusy, true
	}
	return WriteUnrecognized, true
}
