// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build windows

package file

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// classifyErrno maps a Win32 error code found in err's chain.
func classifyErrno(err error) (WriteErr, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return WriteUnrecognized, false
	}
	switch errno {
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
		return WriteNotFound, true
	case windows.ERROR_INVALID_NAME, windows.ERROR_FILENAME_EXCED_RANGE:
		return WriteInvalidFilename, true
	case windows.ERROR_ACCESS_DENIED:
		return WritePermissionDenied, true
	case windows.ERROR_NOT_ENOUGH_MEMORY, windows.ERROR_OUTOFMEMORY:
		return WriteOutOfMemory, true
	case windows.ERROR_NOT_SUPPORTED:
		return WriteUnsupported, true
	case windows.ERROR_WRITE_PROTECT:
		return WriteReadOnlyFilesystem, true
	case windows.ERROR_FILE_EXISTS, windows.ERROR_ALREADY_EXISTS:
		return WriteAlreadyExists, true
	case windows.ERROR_DIRECTORY:
		return WriteWasADirectory, true
	case windows.ERROR_DISK_FULL, windows.ERROR_HANDLE_DISK_FULL:
		return WriteStorageFull, true
	case windows.ERROR_DISK_QUOTA_EXCEEDED:
		return WriteFilesystemQuotaExceeded, true
	case windows.ERROR_FILE_TOO_LARGE:
		return WriteFileTooLarge, true
	case windows.ERROR_SHARING_VIOLATION, windows.ERROR_LOCK_VIOLATION, windows.ERROR_BUSY:
		return WriteResourceBusy, true
	case windows.ERROR_TIMEOUT:
		return WriteTimedOut, true
	}
	return WriteUnrecognized, true
}
